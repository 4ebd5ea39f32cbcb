package openweather

import "fmt"

// CurrentWeather is the subset of the current-weather response we use.
type CurrentWeather struct {
	Name    string `json:"name"`
	Main    Main   `json:"main"`
	Weather []Item `json:"weather"`
}

// Main holds the measured values.
type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  int      `json:"humidity"`
}

// Item is one weather condition entry.
type Item struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// APIError is a non-200 response carrying the API's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather API error %d: %s", e.StatusCode, e.Message)
}

// errorBody is the JSON error envelope the API returns on failure.
type errorBody struct {
	Message string `json:"message"`
}
