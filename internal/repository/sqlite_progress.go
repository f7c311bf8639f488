package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/ecoquest/internal/db"
	"github.com/alexanderramin/ecoquest/internal/domain"
)

// historyRecord is the persisted shape of a domain.HistoryEntry.
type historyRecord struct {
	Challenge     string `json:"challenge"`
	ChallengeType string `json:"challengeType"`
	Status        string `json:"status"`
	Date          string `json:"date"`
}

// KVProgressRepo implements ProgressRepo on top of a KVRepo.
type KVProgressRepo struct {
	kv KVRepo
}

// NewKVProgressRepo wraps an existing key-value store.
func NewKVProgressRepo(kv KVRepo) *KVProgressRepo {
	return &KVProgressRepo{kv: kv}
}

// NewSQLiteProgressRepo creates a ProgressRepo over a database handle or
// transaction.
func NewSQLiteProgressRepo(conn db.DBTX) *KVProgressRepo {
	return NewKVProgressRepo(NewSQLiteKVRepo(conn))
}

func (r *KVProgressRepo) LoadStats(ctx context.Context) (domain.Stats, error) {
	completed, err := r.loadCount(ctx, KeyCompleted)
	if err != nil {
		return domain.Stats{}, err
	}
	failed, err := r.loadCount(ctx, KeyFailed)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{Completed: completed, Failed: failed}, nil
}

func (r *KVProgressRepo) loadCount(ctx context.Context, key string) (int, error) {
	raw, found, err := r.get(ctx, key)
	if err != nil || !found {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("key %q value %q: %w", key, raw, ErrMalformed)
	}
	return n, nil
}

func (r *KVProgressRepo) LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, found, err := r.get(ctx, KeyHistory)
	if err != nil || !found {
		return nil, err
	}

	var records []historyRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decoding history: %w: %v", ErrMalformed, err)
	}

	history := make([]domain.HistoryEntry, 0, len(records))
	for i, rec := range records {
		e, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		history = append(history, e)
	}
	return history, nil
}

func (rec historyRecord) toDomain() (domain.HistoryEntry, error) {
	t := domain.ChallengeType(rec.ChallengeType)
	if !t.Valid() {
		return domain.HistoryEntry{}, fmt.Errorf("challenge type %q: %w", rec.ChallengeType, ErrMalformed)
	}
	o := domain.Outcome(rec.Status)
	if !o.Valid() {
		return domain.HistoryEntry{}, fmt.Errorf("status %q: %w", rec.Status, ErrMalformed)
	}
	at, err := parseTimestamp(rec.Date)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("date %q: %w", rec.Date, ErrMalformed)
	}
	return domain.HistoryEntry{
		Challenge:     rec.Challenge,
		ChallengeType: t,
		Outcome:       o,
		Date:          at.UTC(),
	}, nil
}

func (r *KVProgressRepo) LoadSession(ctx context.Context) (domain.Session, error) {
	session := domain.Session{ActiveType: domain.DefaultChallengeType}

	rawType, found, err := r.get(ctx, KeyChallengeType)
	if err != nil {
		return session, err
	}
	if found {
		t := domain.ChallengeType(rawType)
		if !t.Valid() {
			return session, fmt.Errorf("challenge type %q: %w", rawType, ErrMalformed)
		}
		session.ActiveType = t
	}

	current, found, err := r.get(ctx, KeyCurrentChallenge)
	if err != nil {
		return session, err
	}
	if found && current != "" {
		session.CurrentChallenge = &current
	}
	return session, nil
}

func (r *KVProgressRepo) SaveProgress(ctx context.Context, stats domain.Stats, history []domain.HistoryEntry) error {
	records := make([]historyRecord, 0, len(history))
	for _, e := range history {
		records = append(records, historyRecord{
			Challenge:     e.Challenge,
			ChallengeType: string(e.ChallengeType),
			Status:        string(e.Outcome),
			Date:          formatTimestamp(e.Date),
		})
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	if err := r.kv.Set(ctx, KeyCompleted, strconv.Itoa(stats.Completed)); err != nil {
		return err
	}
	if err := r.kv.Set(ctx, KeyFailed, strconv.Itoa(stats.Failed)); err != nil {
		return err
	}
	return r.kv.Set(ctx, KeyHistory, string(encoded))
}

func (r *KVProgressRepo) SaveSession(ctx context.Context, session domain.Session) error {
	if err := r.kv.Set(ctx, KeyChallengeType, string(session.ActiveType)); err != nil {
		return err
	}
	if !session.HasActiveChallenge() {
		return r.kv.Delete(ctx, KeyCurrentChallenge)
	}
	return r.kv.Set(ctx, KeyCurrentChallenge, *session.CurrentChallenge)
}

func (r *KVProgressRepo) Clear(ctx context.Context) error {
	return r.kv.Clear(ctx)
}

// get returns the raw value for key; found is false when the key is absent.
func (r *KVProgressRepo) get(ctx context.Context, key string) (value string, found bool, err error) {
	value, err = r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}
