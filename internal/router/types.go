package router

// Intent represents one of the recognized routing categories.
type Intent string

const (
	IntentCrypto  Intent = "crypto_asset"
	IntentStock   Intent = "stock_asset"
	IntentWeather Intent = "weather_asset"
	IntentWeb     Intent = "web_asset"

	// IntentNone marks model output with no recognizable intent.
	// The raw text is shown to the user as a general answer.
	IntentNone Intent = ""
)

// RoutedQuery is the parser output consumed by the dispatcher.
// RawQuery carries the extracted sub-query, or the full model text
// when Intent is IntentNone.
type RoutedQuery struct {
	Intent   Intent
	RawQuery string
}
