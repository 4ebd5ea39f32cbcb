package agents

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	quoteCacheSize = 128
	quoteCacheTTL  = 30 * time.Second
)

// quoteCache keeps recent market answers for a short TTL so repeated
// identical quotes do not hit the upstream API again within the window.
type quoteCache struct {
	lru *expirable.LRU[string, string]
}

func newQuoteCache() *quoteCache {
	return &quoteCache{
		lru: expirable.NewLRU[string, string](quoteCacheSize, nil, quoteCacheTTL),
	}
}

func (c *quoteCache) Get(key string) (string, bool) {
	return c.lru.Get(key)
}

func (c *quoteCache) Set(key, value string) {
	c.lru.Add(key, value)
}
