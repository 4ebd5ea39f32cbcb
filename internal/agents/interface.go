package agents

import (
	"context"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/websearch"
)

// Agent answers a cleaned query for one intent. Failures never escape as
// errors: they fold into a category-tagged display string at this boundary.
type Agent interface {
	// Intent returns the routing category this agent serves.
	Intent() router.Intent

	// Answer turns a cleaned query into a single display string.
	Answer(ctx context.Context, query string) string
}

// SearchAgent returns structured results instead of a single string; the
// dispatcher formats them and decides on summarization. A returned error
// carries the user-facing message.
type SearchAgent interface {
	Search(ctx context.Context, query string) ([]websearch.Result, error)
}
