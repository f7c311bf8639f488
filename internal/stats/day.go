package stats

import "time"

// day identifies a calendar date independent of time of day.
type day struct {
	year  int
	month time.Month
	date  int
}

// dayOf returns the calendar day of t as observed in loc.
func dayOf(t time.Time, loc *time.Location) day {
	y, m, d := t.In(loc).Date()
	return day{year: y, month: m, date: d}
}

// midnight returns the start of d in loc.
func (d day) midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.date, 0, 0, 0, 0, loc)
}

// prev returns the calendar day before d.
func (d day) prev(loc *time.Location) day {
	return dayOf(d.midnight(loc).AddDate(0, 0, -1), loc)
}

func locationOf(now time.Time) *time.Location {
	if loc := now.Location(); loc != nil {
		return loc
	}
	return time.Local
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	loc := locationOf(t)
	return dayOf(t, loc).midnight(loc)
}
