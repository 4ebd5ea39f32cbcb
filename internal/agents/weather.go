package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/log"
	"search-agent-system/pkg/openweather"
)

// WeatherAgent answers weather queries via OpenWeather.
type WeatherAgent struct {
	apiKey string
	client *openweather.Client
	l      log.Logger
}

// Ensure WeatherAgent implements Agent interface
var _ Agent = (*WeatherAgent)(nil)

// NewWeatherAgent creates a new WeatherAgent
func NewWeatherAgent(apiKey string, client *openweather.Client, l log.Logger) *WeatherAgent {
	return &WeatherAgent{
		apiKey: apiKey,
		client: client,
		l:      l,
	}
}

func (a *WeatherAgent) Intent() router.Intent { return router.IntentWeather }

// Answer reports current conditions for a free-text location.
func (a *WeatherAgent) Answer(ctx context.Context, query string) string {
	location := strings.TrimSpace(query)
	if a.apiKey == "" {
		return MsgWeatherMissingKey
	}

	current, err := a.client.Current(ctx, location)
	if err != nil {
		var apiErr *openweather.APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("Weather Error: %s", apiErr.Message)
		}
		a.l.Errorf(ctx, "%s: %v", LogPrefixWeather, err)
		return fmt.Sprintf("Weather Error: %v", err)
	}

	var description string
	if len(current.Weather) > 0 {
		description = capitalize(current.Weather[0].Description)
	}
	if current.Main.Temp == nil || description == "" {
		return MsgIncompleteWeather
	}

	city := current.Name
	if city == "" {
		city = location
	}
	return fmt.Sprintf("%s: %v°C, %s", city, *current.Main.Temp, description)
}
