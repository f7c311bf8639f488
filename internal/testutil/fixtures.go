package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
)

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// StepClock returns a clock that starts at start and advances by step on
// every call.
func StepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// EntryOption customizes a fixture history entry.
type EntryOption func(*domain.HistoryEntry)

func WithType(t domain.ChallengeType) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.ChallengeType = t
	}
}

func WithChallenge(text string) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Challenge = text
	}
}

func Failed() EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Outcome = domain.OutcomeFailed
	}
}

// NewTestEntry returns a completed consumption entry at the given time.
func NewTestEntry(at time.Time, opts ...EntryOption) domain.HistoryEntry {
	e := domain.NewHistoryEntry(
		domain.DefaultCatalog().Prompts(domain.ChallengeConsumption)[0],
		domain.ChallengeConsumption,
		domain.OutcomeCompleted,
		at,
	)
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// SetRawKey writes a raw value into kv_store, bypassing the repositories.
// Used to seed malformed persisted data.
func SetRawKey(t *testing.T, database *sql.DB, key, value string) {
	t.Helper()
	_, err := database.ExecContext(context.Background(),
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, '2025-06-15T10:00:00Z')
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		t.Fatalf("seeding key %q: %v", key, err)
	}
}

// CountKeys returns the number of rows in kv_store.
func CountKeys(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	if err := database.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM kv_store`).Scan(&n); err != nil {
		t.Fatalf("counting keys: %v", err)
	}
	return n
}
