package agents

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/coingecko"
	"search-agent-system/pkg/log"
)

// Coin ids are lower-case hyphenated names ("bitcoin-cash"), never symbols.
var coinIDPattern = regexp.MustCompile(`^[a-z-]+$`)

// CryptoAgent answers cryptocurrency price queries via CoinGecko.
type CryptoAgent struct {
	client *coingecko.Client
	cache  *quoteCache
	l      log.Logger
}

// Ensure CryptoAgent implements Agent interface
var _ Agent = (*CryptoAgent)(nil)

// NewCryptoAgent creates a new CryptoAgent
func NewCryptoAgent(client *coingecko.Client, l log.Logger) *CryptoAgent {
	return &CryptoAgent{
		client: client,
		cache:  newQuoteCache(),
		l:      l,
	}
}

func (a *CryptoAgent) Intent() router.Intent { return router.IntentCrypto }

// Answer looks up the USD price for a coin id. Invalid ids, including
// upper-cased symbols like "BTC", are rejected before any network call.
func (a *CryptoAgent) Answer(ctx context.Context, query string) string {
	coinID := strings.TrimSpace(query)
	if !coinIDPattern.MatchString(coinID) {
		return MsgInvalidCryptoFormat
	}

	if cached, ok := a.cache.Get(coinID); ok {
		return cached
	}

	prices, err := a.client.SimplePrice(ctx, coinID)
	if err != nil {
		var apiErr *coingecko.APIError
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("Crypto API Error: %s", apiErr.Message)
		}
		a.l.Errorf(ctx, "%s: %v", LogPrefixCrypto, err)
		return fmt.Sprintf("Crypto Error: %v", err)
	}

	entry, ok := prices[coinID]
	if !ok {
		return fmt.Sprintf("Unknown cryptocurrency: %s", coinID)
	}
	price := entry[coingecko.VsCurrency]
	if price == nil {
		return fmt.Sprintf("Price data not available for %s", coinID)
	}

	answer := fmt.Sprintf("%s: $%v", capitalize(coinID), *price)
	a.cache.Set(coinID, answer)
	return answer
}

// capitalize upper-cases the first byte and lower-cases the rest, so an
// all-caps upstream value still renders as a sentence word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
