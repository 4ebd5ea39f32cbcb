package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the OpenWeather current weather endpoint
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)

// Client is the OpenWeather current-weather client.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new OpenWeather client.
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

// Current fetches the current weather for a free-text location, metric units.
func (c *Client) Current(ctx context.Context, location string) (*CurrentWeather, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call openweather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		message := "Unknown error"
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			message = body.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	var current CurrentWeather
	if err := json.NewDecoder(resp.Body).Decode(&current); err != nil {
		return nil, fmt.Errorf("failed to decode openweather response: %w", err)
	}

	return &current, nil
}
