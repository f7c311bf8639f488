package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/alexanderramin/ecoquest/internal/service"
	"github.com/alexanderramin/ecoquest/internal/stats"
)

const barWidth = 24

// FormatSummary renders the totals block: counts, completion rate, streak.
func FormatSummary(s domain.Stats, rate float64, streak int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleCompleted.Render(fmt.Sprintf("✔ %d completed", s.Completed)),
		StyleFailed.Render(fmt.Sprintf("✖ %d failed", s.Failed)))
	fmt.Fprintf(&b, "Completion  %s\n", RenderProgress(rate, barWidth))
	fmt.Fprintf(&b, "Streak      %s\n", FormatStreak(streak))
	return b.String()
}

// FormatStreak renders the streak count with a unit.
func FormatStreak(streak int) string {
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	text := fmt.Sprintf("%d %s", streak, unit)
	if streak == 0 {
		return Dim(text)
	}
	return StyleYellow.Render("🔥 " + text)
}

// FormatTally renders the per-type breakdown in catalog order.
func FormatTally(tally map[domain.ChallengeType]stats.TypeTally) string {
	peak := 0
	for _, v := range tally {
		peak = max(peak, v.Total())
	}

	headers := []string{"TYPE", "COMPLETED", "FAILED", ""}
	rows := make([][]string, 0, len(domain.AllChallengeTypes))
	for _, t := range domain.AllChallengeTypes {
		v := tally[t]
		rows = append(rows, []string{
			TypeBadge(t),
			StyleCompleted.Render(fmt.Sprintf("%d", v.Completed)),
			StyleFailed.Render(fmt.Sprintf("%d", v.Failed)),
			RenderSplitBar(v.Completed, v.Failed, peak, barWidth),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTrend renders the trend as a sparkline followed by the non-empty
// days, newest first.
func FormatTrend(buckets []stats.TrendBucket) string {
	if len(buckets) == 0 {
		return Dim("No trend data.") + "\n"
	}

	completed := make([]int, len(buckets))
	failed := make([]int, len(buckets))
	for i, bk := range buckets {
		completed[i] = bk.Completed
		failed[i] = bk.Failed
	}

	var b strings.Builder
	first, last := buckets[0].Date, buckets[len(buckets)-1].Date
	fmt.Fprintf(&b, "%s %s %s\n", Dim(ShortDay(first)), Dim("→"), Dim(ShortDay(last)))
	fmt.Fprintf(&b, "%s %s\n", StyleCompleted.Render(Sparkline(completed)), Dim("completed"))
	fmt.Fprintf(&b, "%s %s\n", StyleFailed.Render(Sparkline(failed)), Dim("failed"))

	var rows [][]string
	for i := len(buckets) - 1; i >= 0; i-- {
		bk := buckets[i]
		if bk.Total() == 0 {
			continue
		}
		rows = append(rows, []string{
			ShortDay(bk.Date),
			StyleCompleted.Render(fmt.Sprintf("%d", bk.Completed)),
			StyleFailed.Render(fmt.Sprintf("%d", bk.Failed)),
		})
	}
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(Dim("No challenges recorded in this window.") + "\n")
		return b.String()
	}
	b.WriteString(RenderTable([]string{"DAY", "COMPLETED", "FAILED"}, rows))
	return b.String()
}

// FormatStats renders the full statistics report for a snapshot.
func FormatStats(s service.Snapshot) string {
	var b strings.Builder
	b.WriteString(RenderBox("Progress", FormatSummary(s.Stats, s.CompletionRate, s.Streak)))
	b.WriteString(RenderBox("By type", FormatTally(s.Tally)))
	b.WriteString(RenderBox(fmt.Sprintf("Last %d days", s.TrendWindow), FormatTrend(s.Trend)))
	return b.String()
}
