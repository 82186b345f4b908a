package server

import (
	"context"
	"net/http"
	"time"

	"civicflow/backend/server/api"
	"civicflow/backend/version"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func (s *Server) Root(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, api.StatusResponse{
		Status:  "System Online",
		Message: "CivicFlow AI Backend is Running",
	})
}

// Health pings the store.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		log.Warnf("Health check failed: %v", err)
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
		})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

func Version(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Get(serviceName))
}
