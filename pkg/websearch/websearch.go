package websearch

import (
	"context"
	"fmt"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// MaxResults caps how many items a search returns.
const MaxResults = 3

// Result is one web search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Client wraps the Google Programmable Search API.
type Client struct {
	service  *customsearch.Service
	engineID string
}

// NewClient creates a Programmable Search client authenticated by API key.
// Extra options (custom endpoint, HTTP client) are for tests.
func NewClient(ctx context.Context, apiKey, engineID string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Client{service: svc, engineID: engineID}, nil
}

// Search runs a query and returns up to MaxResults hits in API order.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	resp, err := c.service.Cse.List().
		Q(query).
		Cx(c.engineID).
		Num(MaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to call customsearch API: %w", err)
	}

	results := make([]Result, 0, MaxResults)
	for _, item := range resp.Items {
		if len(results) == MaxResults {
			break
		}
		r := Result{Title: item.Title, Link: item.Link, Snippet: item.Snippet}
		if r.Title == "" {
			r.Title = "No Title"
		}
		if r.Link == "" {
			r.Link = "No Link"
		}
		results = append(results, r)
	}

	return results, nil
}
