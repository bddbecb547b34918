package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLookupStore is a PostgreSQL implementation of the LookupStore
// interface.
type PostgresLookupStore struct {
	db *pgxpool.Pool
}

// NewPostgresLookupStore creates a new PostgresLookupStore.
func NewPostgresLookupStore(db *pgxpool.Pool) *PostgresLookupStore {
	return &PostgresLookupStore{db: db}
}

// Record saves a lookup to the store.
func (s *PostgresLookupStore) Record(ctx context.Context, lookup *Lookup) error {
	_, err := s.db.Exec(ctx,
		"INSERT INTO lookups (id, word, user_id, channel_id, outcome, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		lookup.ID, strings.ToLower(lookup.Word), lookup.UserID, lookup.ChannelID, lookup.Outcome, lookup.CreatedAt)
	return err
}

// Recent returns the most recent lookups, newest first.
func (s *PostgresLookupStore) Recent(ctx context.Context, limit int) ([]*Lookup, error) {
	rows, err := s.db.Query(ctx,
		"SELECT id, word, user_id, channel_id, outcome, created_at FROM lookups ORDER BY created_at DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lookups := make([]*Lookup, 0, limit)
	for rows.Next() {
		var lookup Lookup
		err := rows.Scan(&lookup.ID, &lookup.Word, &lookup.UserID, &lookup.ChannelID, &lookup.Outcome, &lookup.CreatedAt)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, &lookup)
	}

	return lookups, rows.Err()
}

// Popular returns the most looked-up words since the given time. Only
// successful lookups count.
func (s *PostgresLookupStore) Popular(ctx context.Context, limit int, since time.Time) ([]*WordCount, error) {
	rows, err := s.db.Query(ctx,
		"SELECT word, COUNT(*) AS count FROM lookups WHERE outcome = 'found' AND created_at >= $1 GROUP BY word ORDER BY count DESC, word ASC LIMIT $2",
		since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*WordCount, 0, limit)
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, &wc)
	}

	return counts, rows.Err()
}

// Ping verifies the database is reachable.
func (s *PostgresLookupStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
