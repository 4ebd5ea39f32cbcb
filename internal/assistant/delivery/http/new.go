package http

import (
	"github.com/gin-gonic/gin"

	"search-agent-system/internal/assistant"
	"search-agent-system/pkg/log"
)

// Handler is the public interface for the query HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the query surface.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
