// Package server wires the composition core behind a gin HTTP API.
package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"tripcomposer/internal/conversation"
	"tripcomposer/internal/itinerary"
	"tripcomposer/internal/routes"
)

// ImageLookup is the cosmetic image boundary. *images.Service satisfies it.
type ImageLookup interface {
	Lookup(ctx context.Context, stopText string) string
}

type Server struct {
	log      *zap.Logger
	store    *itinerary.Store
	sessions *conversation.Manager
	gen      conversation.Generator
	deriver  *routes.Deriver  // nil without a Maps API key
	geocoder *routes.Geocoder // nil without a Maps API key
	images   ImageLookup
}

func New(
	log *zap.Logger,
	store *itinerary.Store,
	sessions *conversation.Manager,
	gen conversation.Generator,
	deriver *routes.Deriver,
	geocoder *routes.Geocoder,
	images ImageLookup,
) *Server {
	s := &Server{
		log:      log,
		store:    store,
		sessions: sessions,
		gen:      gen,
		deriver:  deriver,
		geocoder: geocoder,
		images:   images,
	}

	// Seed the route table so it has one slot per day from the start.
	// The initial itinerary has no routable day, so this issues no
	// directions requests and returns immediately.
	if s.deriver != nil {
		snap, _ := s.store.Snapshot()
		s.deriver.Recompute(context.Background(), snap)
	}
	return s
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(s.log), gin.Recovery())

	// CORS 設定 - 允許前端跨域請求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(r)

	api := r.Group("/api")
	{
		api.POST("/sessions", s.startSession)
		api.GET("/sessions/:id", s.getSession)
		api.POST("/sessions/:id/answers", s.answerSession)

		api.GET("/itinerary", s.getItinerary)
		api.POST("/itinerary/stops", s.addStop)
		api.POST("/itinerary/days", s.addDay)
		api.DELETE("/itinerary/days/:day/stops/:stop", s.removeStop)
		api.POST("/itinerary/days/:day/reorder", s.reorderStops)

		api.GET("/itinerary/routes", s.getRoutes)
		api.GET("/itinerary/center", s.getCenter)

		api.GET("/images", s.getImage)

		api.POST("/carbon-report", s.carbonReport)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok", "time": time.Now()})
		})
	}

	return r
}

// recomputeRoutes re-derives all day routes off the request path. Route
// results are best effort, so the handler that triggered the change never
// waits for them.
func (s *Server) recomputeRoutes() {
	if s.deriver == nil {
		return
	}
	snap, version := s.store.Snapshot()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.deriver.Recompute(ctx, snap)
		s.log.Debug("routes recomputed", zap.Uint64("itinerary_version", version))
	}()
}
