package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/stats"
	"github.com/stretchr/testify/assert"
)

func sampleHistory() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		domain.NewHistoryEntry("Buy local", domain.ChallengeConsumption, domain.OutcomeCompleted, fmtNow.AddDate(0, 0, -2)),
		domain.NewHistoryEntry("Share a ride", domain.ChallengeFuel, domain.OutcomeFailed, fmtNow.AddDate(0, 0, -1)),
		domain.NewHistoryEntry("Unplug devices", domain.ChallengeElectricity, domain.OutcomeCompleted, fmtNow.Add(-10*time.Minute)),
	}
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(domain.Stats{Completed: 3, Failed: 1}, 0.75, 2))
	assert.Contains(t, out, "3 completed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "2 days")
}

func TestFormatStreak(t *testing.T) {
	assert.Equal(t, "0 days", stripANSI(FormatStreak(0)))
	assert.Contains(t, stripANSI(FormatStreak(1)), "1 day")
	assert.NotContains(t, stripANSI(FormatStreak(1)), "days")
}

func TestFormatTally_ListsEveryType(t *testing.T) {
	out := stripANSI(FormatTally(stats.TallyByType(sampleHistory())))
	for _, ct := range domain.AllChallengeTypes {
		assert.Contains(t, out, ct.Label())
	}
	assert.Contains(t, out, "COMPLETED")
}

func TestFormatTrend(t *testing.T) {
	assert.Contains(t, stripANSI(FormatTrend(nil)), "No trend data.")

	quiet := stats.TrendSeries(nil, fmtNow, 7)
	assert.Contains(t, stripANSI(FormatTrend(quiet)), "No challenges recorded in this window.")

	out := stripANSI(FormatTrend(stats.TrendSeries(sampleHistory(), fmtNow, 7)))
	assert.Contains(t, out, "8 Jun")
	assert.Contains(t, out, "15 Jun")
	assert.Contains(t, out, "14 Jun")
	assert.NotContains(t, out, "No challenges recorded")
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, stripANSI(FormatHistory(nil, fmtNow, 0)), "No challenges recorded yet.")

	out := stripANSI(FormatHistory(sampleHistory(), fmtNow, 2))
	assert.Contains(t, out, "Unplug devices")
	assert.Contains(t, out, "Share a ride")
	assert.NotContains(t, out, "Buy local")
	assert.Contains(t, out, "1 older entries")
	assert.Contains(t, out, "10m ago")

	all := stripANSI(FormatHistory(sampleHistory(), fmtNow, 0))
	assert.Contains(t, all, "Buy local")
	assert.NotContains(t, all, "older entries")
}

func TestFormatChallenge(t *testing.T) {
	out := stripANSI(FormatChallenge(domain.ChallengeWaste, "Compost today", true))
	assert.Contains(t, out, "Waste")
	assert.Contains(t, out, "Compost today")

	idle := stripANSI(FormatChallenge(domain.ChallengeWaste, "", false))
	assert.Contains(t, idle, "No active challenge")
}

func TestFormatRecorded(t *testing.T) {
	done := domain.NewHistoryEntry("Compost", domain.ChallengeWaste, domain.OutcomeCompleted, fmtNow)
	assert.Contains(t, stripANSI(FormatRecorded(done, 3)), "Completed: Compost")
	assert.Contains(t, stripANSI(FormatRecorded(done, 3)), "3 days")

	failed := domain.NewHistoryEntry("Compost", domain.ChallengeWaste, domain.OutcomeFailed, fmtNow)
	assert.Contains(t, stripANSI(FormatRecorded(failed, 0)), "Not completed: Compost")
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog(domain.DefaultCatalog()))
	assert.Contains(t, out, "CONSUMPTION")
	assert.Contains(t, out, "FUEL")
	assert.Contains(t, out, " 1. Be a planet hero! Buy local, seasonal produce")
}
