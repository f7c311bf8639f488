package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/ecoquest/internal/domain"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("not found")

// Persisted key names. The tracker owns every key in the store; Clear erases
// all of them.
const (
	KeyCompleted        = "completed"
	KeyFailed           = "failed"
	KeyHistory          = "history"
	KeyChallengeType    = "challengeType"
	KeyCurrentChallenge = "currentChallenge"
)

// KVRepo is a durable string key-value store.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// ProgressRepo reads and writes the tracker's persisted state.
// Load methods report malformed values with ErrMalformed so callers can fall
// back to defaults.
type ProgressRepo interface {
	LoadStats(ctx context.Context) (domain.Stats, error)
	LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error)
	LoadSession(ctx context.Context) (domain.Session, error)
	SaveProgress(ctx context.Context, stats domain.Stats, history []domain.HistoryEntry) error
	SaveSession(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
