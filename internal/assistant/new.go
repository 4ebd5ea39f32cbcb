package assistant

import (
	"context"

	"search-agent-system/internal/dispatcher"
	"search-agent-system/internal/router"
	"search-agent-system/pkg/log"
)

// UseCase runs one conversational turn
type UseCase interface {
	Respond(ctx context.Context, input string) string
}

// Assistant glues the pipeline: classify -> parse -> route. It keeps no
// state between turns.
type Assistant struct {
	l          log.Logger
	classifier router.Router
	dispatcher dispatcher.Dispatcher
}

// Ensure Assistant implements UseCase interface
var _ UseCase = (*Assistant)(nil)

// New creates a new Assistant
func New(l log.Logger, classifier router.Router, d dispatcher.Dispatcher) *Assistant {
	return &Assistant{
		l:          l,
		classifier: classifier,
		dispatcher: d,
	}
}
