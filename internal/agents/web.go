package agents

import (
	"context"
	"errors"
	"fmt"

	"search-agent-system/pkg/log"
	"search-agent-system/pkg/websearch"
)

// WebAgent runs general web searches via Google Programmable Search.
// A nil client means the credentials were never configured.
type WebAgent struct {
	client *websearch.Client
	l      log.Logger
}

// Ensure WebAgent implements SearchAgent interface
var _ SearchAgent = (*WebAgent)(nil)

// NewWebAgent creates a new WebAgent
func NewWebAgent(client *websearch.Client, l log.Logger) *WebAgent {
	return &WebAgent{
		client: client,
		l:      l,
	}
}

// Search returns up to 3 results in API order. The error message, when
// set, is the exact text shown to the user.
func (a *WebAgent) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	if a.client == nil {
		return nil, errors.New(MsgWebMissingKey)
	}

	results, err := a.client.Search(ctx, query)
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixWeb, err)
		return nil, fmt.Errorf("Web Search Error: %v", err)
	}

	return results, nil
}
