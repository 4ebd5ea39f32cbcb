package coingecko

import "fmt"

// Prices maps coin id -> currency -> price. Null prices decode to nil.
type Prices map[string]map[string]*float64

// APIError is a non-200 response carrying the API's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coingecko API error %d: %s", e.StatusCode, e.Message)
}

// errorBody is the JSON error envelope the API returns on failure.
type errorBody struct {
	Error string `json:"error"`
}
