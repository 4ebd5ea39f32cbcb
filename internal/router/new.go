package router

import (
	"context"

	"search-agent-system/pkg/lmstudio"
	"search-agent-system/pkg/log"
)

// Router is the interface for model-backed intent classification
type Router interface {
	Classify(ctx context.Context, utterance string) (string, error)
}

// Classifier asks the local model to label a user utterance with the
// routing grammar. It returns the raw model text; Parse turns that into
// a RoutedQuery.
type Classifier struct {
	llm lmstudio.ILMStudio
	l   log.Logger
}

// Ensure Classifier implements Router interface
var _ Router = (*Classifier)(nil)

// New creates a new Classifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm lmstudio.ILMStudio, l log.Logger) *Classifier {
	return &Classifier{
		llm: llm,
		l:   l,
	}
}
