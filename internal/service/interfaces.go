package service

import (
	"context"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/stats"
)

// ChallengeTracker is the contract the presentation layer consumes: read
// accessors over the current state plus the four mutators.
type ChallengeTracker interface {
	CurrentChallenge() (string, bool)
	ChallengeType() domain.ChallengeType
	Stats() domain.Stats
	History() []domain.HistoryEntry
	StreakCount() int
	TallyByType() map[domain.ChallengeType]stats.TypeTally
	Trend(windowDays int) []stats.TrendBucket
	Snapshot(windowDays int) Snapshot
	Catalog() domain.Catalog

	SelectChallengeType(ctx context.Context, t domain.ChallengeType) error
	GenerateChallenge(ctx context.Context) (string, error)
	RecordOutcome(ctx context.Context, outcome domain.Outcome) (domain.HistoryEntry, error)
	Reset(ctx context.Context, confirm Confirmer) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm approves without asking.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// ResetPrompt is the question shown before wiping progress.
const ResetPrompt = "Reset all progress? Your whole eco-challenge history will be lost."

var _ ChallengeTracker = (*Tracker)(nil)
