package coingecko

import "time"

const (
	// DefaultBaseURL is the public CoinGecko API endpoint
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// VsCurrency is the quote currency for price lookups
	VsCurrency = "usd"
)

// The public API allows roughly 30 calls/minute; one request every
// two seconds with a small burst stays inside that.
const (
	rateEvery = 2 * time.Second
	rateBurst = 3
)
