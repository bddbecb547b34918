package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("miss", func(t *testing.T) {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set and get", func(t *testing.T) {
		assert.NoError(t, store.Set(ctx, "word", []byte(`["data"]`), time.Minute))

		got, err := store.Get(ctx, "word")
		assert.NoError(t, err)
		assert.Equal(t, []byte(`["data"]`), got)
	})

	t.Run("expiry", func(t *testing.T) {
		assert.NoError(t, store.Set(ctx, "ttl", []byte("x"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := store.Get(ctx, "ttl")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("overwrite", func(t *testing.T) {
		assert.NoError(t, store.Set(ctx, "word", []byte("v2"), time.Minute))

		got, err := store.Get(ctx, "word")
		assert.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Fill the store with entries that expire immediately and are never
	// read again, then trigger the sweep with one more Set.
	for i := 0; i < maxMemoryEntries; i++ {
		assert.NoError(t, store.Set(ctx, fmt.Sprintf("stale-%d", i), []byte("x"), time.Nanosecond))
	}
	time.Sleep(time.Millisecond)

	assert.NoError(t, store.Set(ctx, "fresh", []byte("y"), time.Minute))

	store.mu.RLock()
	size := len(store.entries)
	store.mu.RUnlock()
	assert.Equal(t, 1, size, "expired entries should have been swept")

	got, err := store.Get(ctx, "fresh")
	assert.NoError(t, err)
	assert.Equal(t, []byte("y"), got)
}

func TestMemoryStore_Bounded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < maxMemoryEntries*2; i++ {
		assert.NoError(t, store.Set(ctx, fmt.Sprintf("live-%d", i), []byte("x"), time.Hour))
	}

	store.mu.RLock()
	size := len(store.entries)
	store.mu.RUnlock()
	assert.LessOrEqual(t, size, maxMemoryEntries)
}
