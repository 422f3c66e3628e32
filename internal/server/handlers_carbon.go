package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcomposer/internal/gemini"
)

// carbonReport asks Gemini for a narrative CO₂ estimate of the current
// itinerary. The reply is plain text for display; nothing is parsed.
func (s *Server) carbonReport(c *gin.Context) {
	snap, _ := s.store.Snapshot()
	days := make([][]string, len(snap.Days))
	for i, d := range snap.Days {
		days[i] = d.StopTexts()
	}

	report, err := s.gen.Generate(c.Request.Context(), gemini.CarbonReportPrompt(days))
	if err != nil {
		s.log.Warn("carbon report generation failed", zap.Error(err))
		c.JSON(502, gin.H{"error": "Failed to fetch carbon report. Please try again."})
		return
	}

	c.JSON(200, gin.H{"report": report})
}
