package domain

import "time"

// HistoryEntry is one recorded challenge attempt. Entries are immutable once
// appended to the history log.
type HistoryEntry struct {
	Challenge     string
	ChallengeType ChallengeType
	Outcome       Outcome
	Date          time.Time
}

// NewHistoryEntry stamps an outcome for the given challenge at now.
func NewHistoryEntry(challenge string, t ChallengeType, outcome Outcome, now time.Time) HistoryEntry {
	return HistoryEntry{
		Challenge:     challenge,
		ChallengeType: t,
		Outcome:       outcome,
		Date:          now.UTC().Truncate(time.Millisecond),
	}
}

// Completed reports whether the entry records a completed challenge.
func (e HistoryEntry) Completed() bool {
	return e.Outcome == OutcomeCompleted
}

// Stats holds the running completed/failed counters.
type Stats struct {
	Completed int
	Failed    int
}

// Total returns the number of recorded outcomes.
func (s Stats) Total() int {
	return s.Completed + s.Failed
}

// Record increments the counter matching outcome.
func (s *Stats) Record(outcome Outcome) {
	if outcome == OutcomeCompleted {
		s.Completed++
		return
	}
	s.Failed++
}

// StatsFromHistory rebuilds counters from the history log.
func StatsFromHistory(history []HistoryEntry) Stats {
	var s Stats
	for _, e := range history {
		s.Record(e.Outcome)
	}
	return s
}

// Session is the transient selection state of the tracker.
// CurrentChallenge is nil when no challenge is awaiting an outcome.
type Session struct {
	ActiveType       ChallengeType
	CurrentChallenge *string
}

// HasActiveChallenge reports whether an outcome can be recorded.
func (s Session) HasActiveChallenge() bool {
	return s.CurrentChallenge != nil && *s.CurrentChallenge != ""
}
