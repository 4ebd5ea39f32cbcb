package http

import (
	"github.com/gin-gonic/gin"

	"search-agent-system/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RequestID(), mw.RateLimit(), h.Query)
}
