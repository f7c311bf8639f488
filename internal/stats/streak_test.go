package stats

import (
	"testing"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func entry(t domain.ChallengeType, o domain.Outcome, at time.Time) domain.HistoryEntry {
	return domain.NewHistoryEntry("prompt", t, o, at)
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestComputeStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil, testNow))
}

func TestComputeStreak_ConsecutiveCompletedDays(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(2)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(0)),
		entry(domain.ChallengeFuel, domain.OutcomeCompleted, daysAgo(1)),
	}
	assert.Equal(t, 3, ComputeStreak(history, testNow))
}

func TestComputeStreak_NothingTodayIsZero(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(1)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(2)),
	}
	assert.Equal(t, 0, ComputeStreak(history, testNow))
}

func TestComputeStreak_GapStopsWalk(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(0)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(1)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(3)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(4)),
	}
	assert.Equal(t, 2, ComputeStreak(history, testNow))
}

func TestComputeStreak_SkipsFailedOnlyDays(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(0)),
		entry(domain.ChallengeWaste, domain.OutcomeFailed, daysAgo(1)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(2)),
	}
	assert.Equal(t, 2, ComputeStreak(history, testNow))
}

func TestComputeStreakWithPolicy_ResetOnFailure(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(0)),
		entry(domain.ChallengeWaste, domain.OutcomeFailed, daysAgo(1)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, daysAgo(2)),
	}
	assert.Equal(t, 1, ComputeStreakWithPolicy(history, testNow, ResetOnFailure))
}

func TestComputeStreak_MultipleEntriesSameDayCountOnce(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, testNow.Add(-time.Hour)),
		entry(domain.ChallengeFuel, domain.OutcomeCompleted, testNow.Add(-2*time.Hour)),
		entry(domain.ChallengeFuel, domain.OutcomeFailed, testNow.Add(-3*time.Hour)),
		entry(domain.ChallengeFuel, domain.OutcomeCompleted, daysAgo(1)),
	}
	assert.Equal(t, 2, ComputeStreak(history, testNow))
}

func TestComputeStreak_UsesLocalCalendarOfNow(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, loc) // 2025-06-14 22:00 UTC

	history := []domain.HistoryEntry{
		// 2025-06-14 21:00 UTC is 2025-06-15 07:00 local: today.
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)),
		// 2025-06-14 01:00 UTC is 2025-06-14 11:00 local: yesterday.
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, time.Date(2025, 6, 14, 1, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, 2, ComputeStreak(history, now))
}

func TestComputeStreak_FutureEntriesIgnored(t *testing.T) {
	history := []domain.HistoryEntry{
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, testNow.AddDate(0, 0, 2)),
		entry(domain.ChallengeWaste, domain.OutcomeCompleted, testNow),
	}
	assert.Equal(t, 1, ComputeStreak(history, testNow))
}

func TestParseStreakPolicy(t *testing.T) {
	p, err := ParseStreakPolicy("Reset")
	require.NoError(t, err)
	assert.Equal(t, ResetOnFailure, p)

	p, err = ParseStreakPolicy("skip")
	require.NoError(t, err)
	assert.Equal(t, SkipFailedDays, p)

	_, err = ParseStreakPolicy("forgive")
	assert.Error(t, err)
}
