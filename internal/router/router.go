package router

import (
	"context"
	"fmt"

	"search-agent-system/pkg/lmstudio"
)

// Classify sends the routing prompt plus the user utterance to the model
// and returns the raw response text, unmodified. The caller must treat an
// error as a displayable failure, not as parsable model output.
func (r *Classifier) Classify(ctx context.Context, utterance string) (string, error) {
	content, err := r.llm.ChatCompletion(ctx, &lmstudio.Request{
		Messages: []lmstudio.Message{
			{Role: lmstudio.RoleSystem, Content: PromptRouterSystem},
			{Role: lmstudio.RoleUser, Content: utterance},
		},
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	r.l.Infof(ctx, "%s: model replied %q", LogPrefixClassify, content)
	return content, nil
}
