package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getImage proxies one Unsplash search, served from the session cache when
// possible.
func (s *Server) getImage(c *gin.Context) {
	q := c.Query("query")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	c.JSON(200, gin.H{"url": s.images.Lookup(c.Request.Context(), q)})
}
