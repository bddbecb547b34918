package repository

import (
	"context"
	"time"
)

// Lookup is a single recorded dictionary lookup.
type Lookup struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	UserID    string    `json:"user_id"`
	ChannelID string    `json:"channel_id"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// WordCount is a word with the number of times it was looked up.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LookupStore is an interface for recording and querying lookup history.
type LookupStore interface {
	// Record saves a lookup to the store.
	Record(ctx context.Context, lookup *Lookup) error
	// Recent returns the most recent lookups, newest first.
	Recent(ctx context.Context, limit int) ([]*Lookup, error)
	// Popular returns the most looked-up words since the given time.
	Popular(ctx context.Context, limit int, since time.Time) ([]*WordCount, error)
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}

// NoopLookupStore discards all history. It is used when no database is
// configured.
type NoopLookupStore struct{}

// NewNoopLookupStore creates a new NoopLookupStore.
func NewNoopLookupStore() *NoopLookupStore { return &NoopLookupStore{} }

func (s *NoopLookupStore) Record(ctx context.Context, lookup *Lookup) error { return nil }

func (s *NoopLookupStore) Recent(ctx context.Context, limit int) ([]*Lookup, error) {
	return []*Lookup{}, nil
}

func (s *NoopLookupStore) Popular(ctx context.Context, limit int, since time.Time) ([]*WordCount, error) {
	return []*WordCount{}, nil
}

func (s *NoopLookupStore) Ping(ctx context.Context) error { return nil }
