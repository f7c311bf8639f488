package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestParseChallengeType(t *testing.T) {
	cases := []struct {
		in   string
		want ChallengeType
	}{
		{"consumption", ChallengeConsumption},
		{"Waste", ChallengeWaste},
		{" ELECTRICITY ", ChallengeElectricity},
		{"fuel", ChallengeFuel},
	}
	for _, tc := range cases {
		got, err := ParseChallengeType(tc.in)
		require.NoError(t, err, "input=%q", tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseChallengeType("water")
	assert.ErrorIs(t, err, ErrUnknownChallengeType)
}

func TestChallengeType_Label(t *testing.T) {
	assert.Equal(t, "Electricity", ChallengeElectricity.Label())
	assert.Equal(t, "", ChallengeType("").Label())
}

func TestStats_RecordAndTotal(t *testing.T) {
	var s Stats
	s.Record(OutcomeCompleted)
	s.Record(OutcomeFailed)
	s.Record(OutcomeCompleted)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 3, s.Total())
}

func TestStatsFromHistory(t *testing.T) {
	history := []HistoryEntry{
		NewHistoryEntry("a", ChallengeWaste, OutcomeCompleted, testNow),
		NewHistoryEntry("b", ChallengeFuel, OutcomeFailed, testNow),
		NewHistoryEntry("c", ChallengeFuel, OutcomeFailed, testNow),
	}
	s := StatsFromHistory(history)
	assert.Equal(t, Stats{Completed: 1, Failed: 2}, s)
	assert.Equal(t, len(history), s.Total())
}

func TestNewHistoryEntry_TruncatesToMillisecondsUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2025, 6, 15, 10, 0, 0, 123456789, loc)
	e := NewHistoryEntry("x", ChallengeWaste, OutcomeCompleted, at)
	assert.Equal(t, time.UTC, e.Date.Location())
	assert.Equal(t, 123000000, e.Date.Nanosecond())
	assert.True(t, e.Date.Equal(at.Truncate(time.Millisecond)))
	assert.True(t, e.Completed())
}

func TestSession_HasActiveChallenge(t *testing.T) {
	assert.False(t, Session{}.HasActiveChallenge())
	empty := ""
	assert.False(t, Session{CurrentChallenge: &empty}.HasActiveChallenge())
	text := "Take public transport today"
	assert.True(t, Session{CurrentChallenge: &text}.HasActiveChallenge())
}

func TestDefaultCatalog_Valid(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	for _, ct := range AllChallengeTypes {
		assert.Equal(t, 5, c.Len(ct), "type=%s", ct)
	}
}

func TestCatalog_PromptsReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	prompts := c.Prompts(ChallengeFuel)
	prompts[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Prompts(ChallengeFuel)[0])
	assert.False(t, c.Contains(ChallengeFuel, "mutated"))
}

func TestCatalog_Prompt(t *testing.T) {
	c := NewCatalog(map[ChallengeType][]string{ChallengeWaste: {"  one ", "", "two"}})
	p, ok := c.Prompt(ChallengeWaste, 0)
	require.True(t, ok)
	assert.Equal(t, "one", p)
	assert.Equal(t, 2, c.Len(ChallengeWaste))

	_, ok = c.Prompt(ChallengeWaste, 2)
	assert.False(t, ok)
	_, ok = c.Prompt(ChallengeFuel, 0)
	assert.False(t, ok)
}

func TestCatalog_Validate(t *testing.T) {
	missing := NewCatalog(map[ChallengeType][]string{ChallengeWaste: {"one"}})
	assert.ErrorIs(t, missing.Validate(), ErrEmptyCatalog)

	unknown := NewCatalog(map[ChallengeType][]string{
		ChallengeConsumption: {"a"},
		ChallengeWaste:       {"b"},
		ChallengeElectricity: {"c"},
		ChallengeFuel:        {"d"},
		"water":              {"e"},
	})
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownChallengeType)
}
