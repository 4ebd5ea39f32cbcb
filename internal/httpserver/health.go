package httpserver

import (
	"github.com/gin-gonic/gin"

	"search-agent-system/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Search Agent System With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "search-agent-system"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
