package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
)

// FormatChallenge renders the current challenge card.
func FormatChallenge(t domain.ChallengeType, challenge string, ok bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Type  %s\n\n", TypeBadge(t))
	if !ok {
		b.WriteString(Dim("No active challenge. Generate one to start.") + "\n")
		return RenderBox("Challenge", b.String())
	}
	b.WriteString(Bold(challenge) + "\n")
	return RenderBox("Challenge", b.String())
}

// FormatRecorded renders the confirmation line after an outcome is saved.
func FormatRecorded(e domain.HistoryEntry, streak int) string {
	if e.Completed() {
		return fmt.Sprintf("%s %s  %s\n", StyleCompleted.Render("✔ Completed:"), e.Challenge, FormatStreak(streak))
	}
	return fmt.Sprintf("%s %s\n", StyleFailed.Render("✖ Not completed:"), e.Challenge)
}

// FormatHistory renders the newest limit entries first. A limit of zero or
// less shows everything.
func FormatHistory(history []domain.HistoryEntry, now time.Time, limit int) string {
	if len(history) == 0 {
		return Dim("No challenges recorded yet.") + "\n"
	}

	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}

	rows := make([][]string, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		e := history[i]
		rows = append(rows, []string{
			HumanTimestamp(e.Date, now),
			TypeBadge(e.ChallengeType),
			OutcomePill(e.Outcome),
			Truncate(e.Challenge, 60),
		})
	}

	out := RenderTable([]string{"WHEN", "TYPE", "OUTCOME", "CHALLENGE"}, rows)
	if n < len(history) {
		out += Dim(fmt.Sprintf("… %d older entries", len(history)-n)) + "\n"
	}
	return out
}

// FormatCatalog lists every prompt grouped by type.
func FormatCatalog(c domain.Catalog) string {
	var b strings.Builder
	for i, t := range domain.AllChallengeTypes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(t.Label()) + "\n")
		for j, p := range c.Prompts(t) {
			fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%2d.", j+1)), p)
		}
	}
	return b.String()
}
