package dispatcher

import (
	"context"

	"search-agent-system/internal/agents"
	"search-agent-system/internal/router"
	"search-agent-system/internal/summary"
	"search-agent-system/pkg/log"
)

// Dispatcher turns a parsed query into the final display text
type Dispatcher interface {
	Route(ctx context.Context, routed router.RoutedQuery) string
}

// QueryDispatcher validates the parsed intent, cleans the sub-query and
// invokes the matching agent. It holds no state between turns.
type QueryDispatcher struct {
	l          log.Logger
	crypto     agents.Agent
	stock      agents.Agent
	weather    agents.Agent
	web        agents.SearchAgent
	summarizer summary.Summarizer
}

// Ensure QueryDispatcher implements Dispatcher interface
var _ Dispatcher = (*QueryDispatcher)(nil)

// New creates a new QueryDispatcher
func New(l log.Logger, crypto, stock, weather agents.Agent, web agents.SearchAgent, summarizer summary.Summarizer) *QueryDispatcher {
	return &QueryDispatcher{
		l:          l,
		crypto:     crypto,
		stock:      stock,
		weather:    weather,
		web:        web,
		summarizer: summarizer,
	}
}
