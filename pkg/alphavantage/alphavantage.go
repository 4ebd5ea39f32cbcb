package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the Alpha Vantage API endpoint
	DefaultBaseURL = "https://www.alphavantage.co"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)

// Client is the Alpha Vantage stock quote client.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Alpha Vantage client.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// GlobalQuote fetches the latest quote for a ticker symbol. Returns nil
// (without error) when the API has no data for the symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*GlobalQuote, error) {
	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call alphavantage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage API error %d", resp.StatusCode)
	}

	var envelope quoteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode alphavantage response: %w", err)
	}

	if envelope.GlobalQuote == nil || envelope.GlobalQuote.Price == "" {
		return nil, nil
	}

	return envelope.GlobalQuote, nil
}
