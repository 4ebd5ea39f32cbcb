package agents

import (
	"context"
	"fmt"
	"strings"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/alphavantage"
	"search-agent-system/pkg/log"
)

// StockAgent answers stock quote queries via Alpha Vantage.
type StockAgent struct {
	apiKey string
	client *alphavantage.Client
	cache  *quoteCache
	l      log.Logger
}

// Ensure StockAgent implements Agent interface
var _ Agent = (*StockAgent)(nil)

// NewStockAgent creates a new StockAgent
func NewStockAgent(apiKey string, client *alphavantage.Client, l log.Logger) *StockAgent {
	return &StockAgent{
		apiKey: apiKey,
		client: client,
		cache:  newQuoteCache(),
		l:      l,
	}
}

func (a *StockAgent) Intent() router.Intent { return router.IntentStock }

// Answer looks up the latest quote for an upper-cased ticker.
func (a *StockAgent) Answer(ctx context.Context, query string) string {
	symbol := strings.ToUpper(strings.TrimSpace(query))
	if a.apiKey == "" {
		return MsgStockMissingKey
	}

	if cached, ok := a.cache.Get(symbol); ok {
		return cached
	}

	quote, err := a.client.GlobalQuote(ctx, symbol)
	if err != nil {
		a.l.Errorf(ctx, "%s: %v", LogPrefixStock, err)
		return fmt.Sprintf("Stock API Error: %v", err)
	}
	if quote == nil {
		return fmt.Sprintf("Stock data not available for %s.", symbol)
	}

	answer := fmt.Sprintf("%s: $%s", symbol, quote.Price)
	a.cache.Set(symbol, answer)
	return answer
}
