package summary

import (
	"context"
	"fmt"
	"strings"

	"search-agent-system/pkg/lmstudio"
	"search-agent-system/pkg/websearch"
)

// Summarize asks the model for a 3-point digest of the search results.
// The user message is the concatenated "title: snippet" lines.
func (s *LLMSummarizer) Summarize(ctx context.Context, topic string, results []websearch.Result) (string, error) {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Title, r.Snippet))
	}

	content, err := s.llm.ChatCompletion(ctx, &lmstudio.Request{
		Messages: []lmstudio.Message{
			{Role: lmstudio.RoleSystem, Content: fmt.Sprintf(PromptSummarizeSystem, topic)},
			{Role: lmstudio.RoleUser, Content: strings.Join(lines, "\n")},
		},
		Temperature: SummarizeTemperature,
		MaxTokens:   SummarizeMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: LLM call failed: %w", LogPrefixSummarize, err)
	}

	s.l.Infof(ctx, "%s: summarized %d results about %q", LogPrefixSummarize, len(results), topic)
	return content, nil
}
