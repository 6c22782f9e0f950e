// Package cache provides the advisory memoization layer for aggregation
// results. Entries are keyed by the full normalized input tuple and expire
// after a short TTL, so repeated identical requests skip the provider
// round-trip. The cache is purely a performance optimization: a miss always
// re-derives an equivalent result from a fresh fetch.
package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/guttosm/stockdash/internal/aggregator"
	"github.com/guttosm/stockdash/internal/domain/models"
)

// Entry is one memoized aggregation outcome: the table plus the per-ticker
// warnings produced while building it.
type Entry struct {
	Table    *models.PriceTable
	Warnings []aggregator.Warning
}

// Cache is the injectable memoization contract. Implementations must be safe
// for concurrent use.
type Cache interface {
	Get(key string) (*Entry, bool)
	Add(key string, e *Entry)
}

// Key derives the cache key from an aggregation request. The request is
// normalized first so that equivalent ticker spellings share an entry.
func Key(req aggregator.Request) string {
	req = req.Normalize()
	return fmt.Sprintf("%s|%s|%s|ma=%t|w=%d",
		strings.Join(req.Tickers, ","),
		req.Start.Format("2006-01-02"),
		req.End.Format("2006-01-02"),
		req.ComputeMA,
		req.MAWindow,
	)
}

// TTLCache bounds entries by count and age on top of an expirable LRU.
type TTLCache struct {
	lru *expirable.LRU[string, *Entry]
}

// NewTTL creates a cache holding at most maxEntries tuples, each valid for
// ttl after insertion.
func NewTTL(maxEntries int, ttl time.Duration) *TTLCache {
	return &TTLCache{lru: expirable.NewLRU[string, *Entry](maxEntries, nil, ttl)}
}

func (c *TTLCache) Get(key string) (*Entry, bool) {
	return c.lru.Get(key)
}

func (c *TTLCache) Add(key string, e *Entry) {
	c.lru.Add(key, e)
}

// Noop never stores anything. It substitutes the real cache in tests so
// every call exercises a fresh fetch.
type Noop struct{}

func (Noop) Get(string) (*Entry, bool) { return nil, false }
func (Noop) Add(string, *Entry)        {}
