package lmstudio

import "context"

// ILMStudio defines the interface for the LM Studio chat completion client.
// Implementations are safe for concurrent use.
type ILMStudio interface {
	// ChatCompletion sends a chat completion request and returns the
	// assistant's text content from the first choice.
	ChatCompletion(ctx context.Context, req *Request) (string, error)
}

// New creates a new LM Studio client with the given configuration
func New(cfg Config) (ILMStudio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  cfg.HTTPClient,
	}, nil
}
