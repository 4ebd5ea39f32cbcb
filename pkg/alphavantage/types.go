package alphavantage

// GlobalQuote is the quote block of a GLOBAL_QUOTE response. Alpha Vantage
// returns an empty object here for unknown symbols instead of an error.
type GlobalQuote struct {
	Symbol        string `json:"01. symbol"`
	Open          string `json:"02. open"`
	High          string `json:"03. high"`
	Low           string `json:"04. low"`
	Price         string `json:"05. price"`
	Volume        string `json:"06. volume"`
	LatestDay     string `json:"07. latest trading day"`
	PreviousClose string `json:"08. previous close"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"`
}

// quoteEnvelope wraps the quote under its spaced field name.
type quoteEnvelope struct {
	GlobalQuote *GlobalQuote `json:"Global Quote"`
}
