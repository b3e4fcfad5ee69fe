package pricing

import (
	"sort"
	"sync"
	"time"
)

type cacheEntry struct {
	data     PriceData
	storedAt time.Time
}

// priceCache is a TTL map keyed by "symbol-type".
type priceCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func newPriceCache(ttl time.Duration) *priceCache {
	return &priceCache{ttl: ttl, entries: make(map[string]cacheEntry), now: time.Now}
}

func cacheKey(symbol string, assetType AssetType) string {
	return symbol + "-" + string(assetType)
}

func (c *priceCache) get(key string) (*PriceData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	data := e.data
	return &data, true
}

func (c *priceCache) set(key string, data PriceData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, storedAt: c.now()}
}

func (c *priceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *priceCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
