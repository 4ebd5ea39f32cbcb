package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "search-agent-system/internal/assistant/delivery/http"
	"search-agent-system/internal/middleware"
	"search-agent-system/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	api := srv.gin.Group("/api/v1")

	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Query route registered at POST /api/v1/query")
	return nil
}
