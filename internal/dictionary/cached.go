package dictionary

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/cache"
)

// CachedClient wraps a Client with a read-through cache. Only successful
// lookups are cached; not-found and upstream failures always hit the API so
// newly added words show up without waiting for a TTL.
type CachedClient struct {
	inner Client
	store cache.Store
	ttl   time.Duration
}

// NewCachedClient creates a new CachedClient.
func NewCachedClient(inner Client, store cache.Store, ttl time.Duration) *CachedClient {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedClient{inner: inner, store: store, ttl: ttl}
}

// Lookup returns cached entries when present, otherwise delegates to the
// wrapped client and caches the result. Cache failures are ignored; the
// cache is an optimization, not a source of truth.
func (c *CachedClient) Lookup(ctx context.Context, word string) ([]Entry, error) {
	key := strings.ToLower(strings.TrimSpace(word))

	if data, err := c.store.Get(ctx, key); err == nil {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := c.inner.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	// Empty answers are not cached, for the same reason not-found isn't.
	if len(entries) == 0 {
		return entries, nil
	}

	if data, err := json.Marshal(entries); err == nil {
		_ = c.store.Set(ctx, key, data, c.ttl)
	}

	return entries, nil
}
