package middleware

import (
	"search-agent-system/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates a Middleware with a per-client rate limiter allowing
// requestsPerMin requests per minute per source IP.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
