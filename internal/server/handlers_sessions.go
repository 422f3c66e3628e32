package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tripcomposer/internal/conversation"
)

func (s *Server) startSession(c *gin.Context) {
	v := s.sessions.Start()
	c.JSON(201, v)
}

func (s *Server) getSession(c *gin.Context) {
	v, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(200, v)
}

type answerRequest struct {
	Text string `json:"text"`
}

func (s *Server) answerSession(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	v, err := s.sessions.Answer(c.Request.Context(), c.Param("id"), req.Text)
	switch {
	case errors.Is(err, conversation.ErrEmptyAnswer):
		c.JSON(400, gin.H{"error": "Answer must not be empty"})
		return
	case errors.Is(err, conversation.ErrSessionNotFound):
		c.JSON(404, gin.H{"error": "Session not found"})
		return
	case errors.Is(err, conversation.ErrSessionClosed):
		c.JSON(409, gin.H{"error": "Session already finished"})
		return
	case err != nil:
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	// a completed session just imported a fresh itinerary
	if v.State == conversation.StateComplete.String() {
		s.recomputeRoutes()
	}
	c.JSON(200, v)
}
