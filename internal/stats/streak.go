package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
)

// StreakPolicy controls how a day holding only failed entries affects the
// streak walk.
type StreakPolicy string

const (
	// SkipFailedDays walks past failed-only days without counting them.
	SkipFailedDays StreakPolicy = "skip"
	// ResetOnFailure ends the walk at the first failed-only day.
	ResetOnFailure StreakPolicy = "reset"
)

// ParseStreakPolicy accepts "skip" or "reset" in any case.
func ParseStreakPolicy(s string) (StreakPolicy, error) {
	switch p := StreakPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case SkipFailedDays, ResetOnFailure:
		return p, nil
	default:
		return "", fmt.Errorf("unknown streak policy %q", s)
	}
}

type dayActivity struct {
	completed bool
	failed    bool
}

// ComputeStreak counts consecutive calendar days, walking backward from now,
// that hold a completed entry. Failed-only days are skipped.
func ComputeStreak(history []domain.HistoryEntry, now time.Time) int {
	return ComputeStreakWithPolicy(history, now, SkipFailedDays)
}

// ComputeStreakWithPolicy walks backward one calendar day at a time starting
// at now's day. A day without entries ends the walk. A day with at least one
// completed entry adds one to the streak. A failed-only day is handled per
// policy. Several entries on one day count as that single day; an
// entry-by-entry walk would instead stop at the second entry of a day.
func ComputeStreakWithPolicy(history []domain.HistoryEntry, now time.Time, policy StreakPolicy) int {
	if len(history) == 0 {
		return 0
	}
	loc := locationOf(now)

	activity := make(map[day]dayActivity, len(history))
	for _, e := range history {
		d := dayOf(e.Date, loc)
		a := activity[d]
		if e.Completed() {
			a.completed = true
		} else {
			a.failed = true
		}
		activity[d] = a
	}

	streak := 0
	for d, seen := dayOf(now, loc), 0; seen < len(activity); d = d.prev(loc) {
		a, ok := activity[d]
		if !ok {
			break
		}
		seen++
		if a.completed {
			streak++
			continue
		}
		if policy == ResetOnFailure {
			break
		}
	}
	return streak
}
