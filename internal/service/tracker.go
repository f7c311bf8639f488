package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/ecoquest/internal/db"
	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/repository"
	"github.com/alexanderramin/ecoquest/internal/stats"
)

// Tracker owns the challenge state for one user session. Every mutation
// updates memory first and then writes through to storage in a single
// transaction. Storage failures are logged and swallowed; the in-memory
// state stays authoritative for the rest of the process.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	catalog  domain.Catalog

	now      func() time.Time
	rng      *rand.Rand
	policy   stats.StreakPolicy
	logger   *slog.Logger
	observer UseCaseObserver

	stats   domain.Stats
	history []domain.HistoryEntry
	session domain.Session
}

// TrackerOption customizes a Tracker.
type TrackerOption func(*Tracker)

// WithClock overrides the time source used for timestamps and derived stats.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithRand sets the random source used to draw challenges.
func WithRand(r *rand.Rand) TrackerOption {
	return func(t *Tracker) {
		t.rng = r
	}
}

// WithStreakPolicy selects how failed-only days affect the streak.
func WithStreakPolicy(p stats.StreakPolicy) TrackerOption {
	return func(t *Tracker) {
		if p != "" {
			t.policy = p
		}
	}
}

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) TrackerOption {
	return func(t *Tracker) {
		if o != nil {
			t.observer = o
		}
	}
}

// OpenTracker builds a Tracker from persisted state. Absent or malformed
// values fall back to empty defaults; only an unusable catalog is an error.
func OpenTracker(ctx context.Context, progress repository.ProgressRepo, uow db.UnitOfWork, catalog domain.Catalog, opts ...TrackerOption) (*Tracker, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("opening tracker: %w", err)
	}

	t := &Tracker{
		progress: progress,
		uow:      uow,
		catalog:  catalog,
		now:      time.Now,
		policy:   stats.SkipFailedDays,
		logger:   discardLogger(),
		observer: NoopUseCaseObserver{},
		session:  domain.Session{ActiveType: domain.DefaultChallengeType},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.load(ctx)
	return t, nil
}

func (t *Tracker) load(ctx context.Context) {
	startedAt := time.Now()
	fields := map[string]any{}

	s, err := t.progress.LoadStats(ctx)
	if err != nil {
		t.warnLoad(ctx, "stats", err)
		fields["stats_recovered"] = true
		s = domain.Stats{}
	}

	history, err := t.progress.LoadHistory(ctx)
	if err != nil {
		t.warnLoad(ctx, "history", err)
		fields["history_recovered"] = true
		history = nil
	}

	if s.Total() != len(history) {
		t.logger.WarnContext(ctx, "persisted stats disagree with history; rebuilding from history",
			"completed", s.Completed, "failed", s.Failed, "history_len", len(history))
		fields["stats_rebuilt"] = true
		s = domain.StatsFromHistory(history)
	}

	session, err := t.progress.LoadSession(ctx)
	if err != nil {
		t.warnLoad(ctx, "session", err)
		session = domain.Session{ActiveType: domain.DefaultChallengeType}
	}

	t.stats = s
	t.history = history
	t.session = session

	fields["history_len"] = len(history)
	t.observe(ctx, "load", startedAt, nil, fields)
}

func (t *Tracker) warnLoad(ctx context.Context, what string, err error) {
	kind := "storage read failed"
	if errors.Is(err, repository.ErrMalformed) {
		kind = "malformed persisted data"
	}
	t.logger.WarnContext(ctx, kind+"; using defaults", "value", what, "error", err)
}

// ── Read accessors ──────────────────────────────────────────────────────────

// CurrentChallenge returns the challenge awaiting an outcome, if any.
func (t *Tracker) CurrentChallenge() (string, bool) {
	if !t.session.HasActiveChallenge() {
		return "", false
	}
	return *t.session.CurrentChallenge, true
}

// ChallengeType returns the active challenge type.
func (t *Tracker) ChallengeType() domain.ChallengeType {
	return t.session.ActiveType
}

// Stats returns the completed/failed counters.
func (t *Tracker) Stats() domain.Stats {
	return t.stats
}

// History returns a copy of the history log in recording order.
func (t *Tracker) History() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(t.history))
	copy(out, t.history)
	return out
}

// StreakCount derives the current streak from the history log.
func (t *Tracker) StreakCount() int {
	return stats.ComputeStreakWithPolicy(t.history, t.now(), t.policy)
}

// TallyByType derives per-type outcome counts.
func (t *Tracker) TallyByType() map[domain.ChallengeType]stats.TypeTally {
	return stats.TallyByType(t.history)
}

// Trend derives the daily trend for the last windowDays days.
func (t *Tracker) Trend(windowDays int) []stats.TrendBucket {
	return stats.TrendSeries(t.history, t.now(), windowDays)
}

// Catalog returns the prompt catalog.
func (t *Tracker) Catalog() domain.Catalog {
	return t.catalog
}

// Snapshot is everything a view needs to render, derived at one instant.
type Snapshot struct {
	Now              time.Time
	ChallengeType    domain.ChallengeType
	CurrentChallenge string
	HasChallenge     bool
	Stats            domain.Stats
	CompletionRate   float64
	Streak           int
	Tally            map[domain.ChallengeType]stats.TypeTally
	TrendWindow      int
	Trend            []stats.TrendBucket
	History          []domain.HistoryEntry
}

// Snapshot derives a consistent view of the state using a single clock read.
func (t *Tracker) Snapshot(windowDays int) Snapshot {
	now := t.now()
	current, ok := t.CurrentChallenge()
	windowDays = stats.ClampTrendWindow(windowDays)
	return Snapshot{
		Now:              now,
		ChallengeType:    t.session.ActiveType,
		CurrentChallenge: current,
		HasChallenge:     ok,
		Stats:            t.stats,
		CompletionRate:   stats.CompletionRate(t.stats),
		Streak:           stats.ComputeStreakWithPolicy(t.history, now, t.policy),
		Tally:            stats.TallyByType(t.history),
		TrendWindow:      windowDays,
		Trend:            stats.TrendSeries(t.history, now, windowDays),
		History:          t.History(),
	}
}

// ── Mutators ────────────────────────────────────────────────────────────────

// SelectChallengeType sets the active type. Switching to a different type
// discards a pending challenge drawn from the previous type, so recorded
// entries always carry the type their prompt came from.
func (t *Tracker) SelectChallengeType(ctx context.Context, ct domain.ChallengeType) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"challenge_type": string(ct)}
	defer func() { t.observe(ctx, "select-challenge-type", startedAt, err, fields) }()

	if !ct.Valid() {
		return fmt.Errorf("selecting %q: %w", ct, domain.ErrUnknownChallengeType)
	}
	if ct == t.session.ActiveType {
		return nil
	}
	if t.session.HasActiveChallenge() {
		fields["discarded_challenge"] = true
	}
	t.session = domain.Session{ActiveType: ct}

	fields["persisted"] = t.persist(ctx, "select-challenge-type", func(ctx context.Context, repo repository.ProgressRepo) error {
		return repo.SaveSession(ctx, t.session)
	})
	return nil
}

// GenerateChallenge draws a prompt for the active type uniformly at random
// and makes it the current challenge. Repeats are allowed.
func (t *Tracker) GenerateChallenge(ctx context.Context) (challenge string, err error) {
	startedAt := time.Now()
	fields := map[string]any{"challenge_type": string(t.session.ActiveType)}
	defer func() { t.observe(ctx, "generate-challenge", startedAt, err, fields) }()

	n := t.catalog.Len(t.session.ActiveType)
	if n == 0 {
		return "", fmt.Errorf("generating %s challenge: %w", t.session.ActiveType, domain.ErrEmptyCatalog)
	}
	challenge, _ = t.catalog.Prompt(t.session.ActiveType, t.intN(n))
	t.session.CurrentChallenge = &challenge

	fields["persisted"] = t.persist(ctx, "generate-challenge", func(ctx context.Context, repo repository.ProgressRepo) error {
		return repo.SaveSession(ctx, t.session)
	})
	return challenge, nil
}

// RecordOutcome closes the current challenge with outcome. It fails with
// domain.ErrNoActiveChallenge, leaving all state untouched, when no
// challenge is pending.
func (t *Tracker) RecordOutcome(ctx context.Context, outcome domain.Outcome) (entry domain.HistoryEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"outcome": string(outcome)}
	defer func() { t.observe(ctx, "record-outcome", startedAt, err, fields) }()

	if !outcome.Valid() {
		return domain.HistoryEntry{}, fmt.Errorf("recording %q: %w", outcome, domain.ErrUnknownOutcome)
	}
	current, ok := t.CurrentChallenge()
	if !ok {
		return domain.HistoryEntry{}, domain.ErrNoActiveChallenge
	}

	entry = domain.NewHistoryEntry(current, t.session.ActiveType, outcome, t.now())
	t.history = append(t.history, entry)
	t.stats.Record(outcome)
	t.session.CurrentChallenge = nil
	fields["challenge_type"] = string(entry.ChallengeType)
	fields["history_len"] = len(t.history)

	fields["persisted"] = t.persist(ctx, "record-outcome", func(ctx context.Context, repo repository.ProgressRepo) error {
		if err := repo.SaveProgress(ctx, t.stats, t.history); err != nil {
			return err
		}
		return repo.SaveSession(ctx, t.session)
	})
	return entry, nil
}

// Reset wipes stats, history, the current challenge and every persisted key
// once confirm approves. A declined or failed confirmation leaves
// everything untouched and returns domain.ErrResetNotConfirmed.
func (t *Tracker) Reset(ctx context.Context, confirm Confirmer) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"history_len": len(t.history)}
	defer func() { t.observe(ctx, "reset", startedAt, err, fields) }()

	if confirm == nil {
		return domain.ErrResetNotConfirmed
	}
	ok, err := confirm.Confirm(ctx, ResetPrompt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrResetNotConfirmed, err)
	}
	if !ok {
		return domain.ErrResetNotConfirmed
	}

	t.stats = domain.Stats{}
	t.history = nil
	t.session.CurrentChallenge = nil

	fields["persisted"] = t.persist(ctx, "reset", func(ctx context.Context, repo repository.ProgressRepo) error {
		return repo.Clear(ctx)
	})
	return nil
}

// persist runs fn in one transaction and reports whether it committed.
func (t *Tracker) persist(ctx context.Context, useCase string, fn func(ctx context.Context, repo repository.ProgressRepo) error) bool {
	err := t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, repository.NewSQLiteProgressRepo(tx))
	})
	if err != nil {
		t.logger.WarnContext(ctx, "storage unavailable; keeping in-memory state",
			"use_case", useCase, "error", err)
		return false
	}
	return true
}

func (t *Tracker) intN(n int) int {
	if t.rng != nil {
		return t.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (t *Tracker) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	t.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
