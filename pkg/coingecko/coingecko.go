package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

// Client is the CoinGecko public API client.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new CoinGecko client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(rateEvery), rateBurst),
	}
}

// SimplePrice fetches USD prices for the given coin id.
func (c *Client) SimplePrice(ctx context.Context, coinID string) (Prices, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL, url.QueryEscape(coinID), VsCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call coingecko API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		message := "Unknown error"
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			message = body.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	var prices Prices
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("failed to decode coingecko response: %w", err)
	}

	return prices, nil
}
