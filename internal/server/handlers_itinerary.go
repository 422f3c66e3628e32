package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tripcomposer/internal/routes"
)

type stopView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

type dayView struct {
	Stops []stopView `json:"stops"`
}

func (s *Server) getItinerary(c *gin.Context) {
	snap, version := s.store.Snapshot()

	days := make([]dayView, len(snap.Days))
	for i, d := range snap.Days {
		days[i].Stops = make([]stopView, len(d.Stops))
		for j, st := range d.Stops {
			days[i].Stops[j] = stopView{
				ID:       st.ID,
				Text:     st.Text,
				ImageURL: s.images.Lookup(c.Request.Context(), st.Text),
			}
		}
	}

	c.JSON(200, gin.H{"days": days, "version": version})
}

type addStopRequest struct {
	Text string `json:"text"`
}

func (s *Server) addStop(c *gin.Context) {
	var req addStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	stop, ok := s.store.AddStop(req.Text)
	if !ok {
		c.JSON(400, gin.H{"error": "Stop text must not be empty"})
		return
	}

	s.recomputeRoutes()
	c.JSON(201, stop)
}

func (s *Server) addDay(c *gin.Context) {
	s.store.AddDay()
	s.recomputeRoutes()
	c.JSON(201, gin.H{"message": "Day added"})
}

func (s *Server) removeStop(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid day index"})
		return
	}
	stopIndex, err := strconv.Atoi(c.Param("stop"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid stop index"})
		return
	}

	// out-of-range indices are a silent no-op
	s.store.RemoveStop(dayIndex, stopIndex)
	s.recomputeRoutes()
	c.JSON(200, gin.H{"message": "Stop removed"})
}

type reorderRequest struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

func (s *Server) reorderStops(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid day index"})
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	s.store.ReorderStops(dayIndex, req.FromID, req.ToID)
	s.recomputeRoutes()
	c.JSON(200, gin.H{"message": "Stops reordered"})
}

func (s *Server) getRoutes(c *gin.Context) {
	if s.deriver == nil {
		c.JSON(200, gin.H{"routes": []*routes.Route{}})
		return
	}
	c.JSON(200, gin.H{"routes": s.deriver.Routes()})
}

func (s *Server) getCenter(c *gin.Context) {
	if s.geocoder == nil {
		c.JSON(200, routes.DefaultCenter)
		return
	}
	snap, _ := s.store.Snapshot()
	c.JSON(200, s.geocoder.Center(c.Request.Context(), snap))
}
