package stats

import "github.com/alexanderramin/ecoquest/internal/domain"

// TypeTally is the completed/failed count for one challenge type.
type TypeTally struct {
	Completed int
	Failed    int
}

// Total returns completed plus failed.
func (t TypeTally) Total() int {
	return t.Completed + t.Failed
}

// TallyByType counts outcomes per challenge type. Every known type is present
// in the result, with zero counts when it has no entries.
func TallyByType(history []domain.HistoryEntry) map[domain.ChallengeType]TypeTally {
	out := make(map[domain.ChallengeType]TypeTally, len(domain.AllChallengeTypes))
	for _, t := range domain.AllChallengeTypes {
		out[t] = TypeTally{}
	}
	for _, e := range history {
		tally := out[e.ChallengeType]
		if e.Completed() {
			tally.Completed++
		} else {
			tally.Failed++
		}
		out[e.ChallengeType] = tally
	}
	return out
}

// CompletionRate returns the completed share of all outcomes in [0, 1].
func CompletionRate(s domain.Stats) float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total())
}
