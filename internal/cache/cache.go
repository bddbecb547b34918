// Package cache provides a small TTL cache for dictionary lookups.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCacheMiss is returned when a key is not present in the cache.
var ErrCacheMiss = errors.New("cache miss")

// Store is an interface for caching serialized lookup results.
type Store interface {
	// Get retrieves the value for a key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value under a key for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Close releases any resources held by the store.
	Close() error
}

// maxMemoryEntries bounds the in-process cache. When a Set would grow the
// map past this, expired entries are swept first and, if that is not
// enough, arbitrary entries are evicted.
const maxMemoryEntries = 1024

// MemoryStore is an in-process Store used when no Redis address is
// configured. Expired entries are dropped lazily on read and swept when
// the store fills up, so the map never grows past maxMemoryEntries.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Get retrieves the value for a key, or ErrCacheMiss.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// Set stores a value under a key for the given TTL.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= maxMemoryEntries {
		s.sweepLocked()
	}
	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// sweepLocked drops expired entries, then evicts arbitrary live ones until
// the map is under the cap. Callers must hold the write lock.
func (s *MemoryStore) sweepLocked() {
	now := time.Now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	for key := range s.entries {
		if len(s.entries) < maxMemoryEntries {
			break
		}
		delete(s.entries, key)
	}
}

// Close is a no-op for the in-process store.
func (s *MemoryStore) Close() error { return nil }
