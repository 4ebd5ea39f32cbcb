package summary

import (
	"context"

	"search-agent-system/pkg/lmstudio"
	"search-agent-system/pkg/log"
	"search-agent-system/pkg/websearch"
)

// Summarizer condenses web search results into a short answer
type Summarizer interface {
	Summarize(ctx context.Context, topic string, results []websearch.Result) (string, error)
}

// LLMSummarizer implements Summarizer on the local model.
type LLMSummarizer struct {
	llm lmstudio.ILMStudio
	l   log.Logger
}

// Ensure LLMSummarizer implements Summarizer interface
var _ Summarizer = (*LLMSummarizer)(nil)

// New creates a new LLMSummarizer
func New(llm lmstudio.ILMStudio, l log.Logger) *LLMSummarizer {
	return &LLMSummarizer{
		llm: llm,
		l:   l,
	}
}
