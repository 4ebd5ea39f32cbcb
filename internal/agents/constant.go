package agents

// Log prefixes
const (
	LogPrefixCrypto  = "internal.agents.Crypto"
	LogPrefixStock   = "internal.agents.Stock"
	LogPrefixWeather = "internal.agents.Weather"
	LogPrefixWeb     = "internal.agents.Web"
)

// User-facing messages
const (
	MsgInvalidCryptoFormat = "Invalid cryptocurrency format - use names like 'bitcoin' not symbols."
	MsgStockMissingKey     = "Stock API Error: Missing API key."
	MsgWeatherMissingKey   = "Weather Error: Missing API key."
	MsgWebMissingKey       = "Web Search Error: Missing Google API key or Search Engine ID."
	MsgIncompleteWeather   = "Incomplete weather data received."
)
