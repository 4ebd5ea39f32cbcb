package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"search-agent-system/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the request context so every log
// line of the turn carries it. An incoming X-Request-ID is honored,
// otherwise a new one is generated.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
