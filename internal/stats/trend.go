package stats

import (
	"time"

	"github.com/alexanderramin/ecoquest/internal/domain"
)

// DefaultTrendWindow is the trend range shown when none is chosen.
const DefaultTrendWindow = 30

// MaxTrendWindow is the largest window TrendSeries will bucket. Larger
// windows are clamped to it.
const MaxTrendWindow = 3650

// TrendWindows are the selectable trend ranges, in days.
var TrendWindows = []int{7, 14, 30, 90}

// TrendBucket aggregates one calendar day of outcomes.
type TrendBucket struct {
	Date      time.Time
	Completed int
	Failed    int
}

// Total returns completed plus failed.
func (b TrendBucket) Total() int {
	return b.Completed + b.Failed
}

// TrendSeries returns windowDays+1 daily buckets covering
// [now-windowDays, now], oldest first. Days without entries are zero buckets.
// A negative window is treated as zero and windows above MaxTrendWindow are
// clamped.
func TrendSeries(history []domain.HistoryEntry, now time.Time, windowDays int) []TrendBucket {
	windowDays = ClampTrendWindow(windowDays)
	loc := locationOf(now)

	buckets := make([]TrendBucket, windowDays+1)
	index := make(map[day]int, len(buckets))
	d := dayOf(now, loc)
	for i := windowDays; i >= 0; i-- {
		buckets[i] = TrendBucket{Date: d.midnight(loc)}
		index[d] = i
		d = d.prev(loc)
	}

	for _, e := range history {
		i, ok := index[dayOf(e.Date, loc)]
		if !ok {
			continue
		}
		if e.Completed() {
			buckets[i].Completed++
		} else {
			buckets[i].Failed++
		}
	}
	return buckets
}

// ClampTrendWindow bounds windowDays to [0, MaxTrendWindow].
func ClampTrendWindow(windowDays int) int {
	return min(max(windowDays, 0), MaxTrendWindow)
}

// NextTrendWindow returns the selectable window after current, wrapping
// around. Unknown values restart at the first window.
func NextTrendWindow(current int) int {
	for i, w := range TrendWindows {
		if w == current {
			return TrendWindows[(i+1)%len(TrendWindows)]
		}
	}
	return TrendWindows[0]
}

// PrevTrendWindow returns the selectable window before current, wrapping
// around.
func PrevTrendWindow(current int) int {
	for i, w := range TrendWindows {
		if w == current {
			return TrendWindows[(i-1+len(TrendWindows))%len(TrendWindows)]
		}
	}
	return TrendWindows[len(TrendWindows)-1]
}
