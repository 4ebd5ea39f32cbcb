package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/log"
)

// Respond runs a single turn and always yields exactly one displayable
// string. All expected failures arrive as tagged messages from the layers
// below; the recover here is the outermost per-turn boundary for anything
// truly unanticipated, so one bad turn never kills the loop.
func (a *Assistant) Respond(ctx context.Context, input string) (out string) {
	if log.RequestIDFromContext(ctx) == "" {
		ctx = log.ContextWithRequestID(ctx, uuid.NewString())
	}

	defer func() {
		if v := recover(); v != nil {
			a.l.Errorf(ctx, "%s: panic: %v", LogPrefixRespond, v)
			out = fmt.Sprintf(MsgUnexpectedFmt, v)
		}
	}()

	raw, err := a.classifier.Classify(ctx, input)
	if err != nil {
		// Error strings are for display only; never parse them further.
		return fmt.Sprintf(MsgLLMErrorFmt, err)
	}

	return a.dispatcher.Route(ctx, router.Parse(raw))
}
