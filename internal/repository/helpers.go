package repository

import (
	"errors"
	"time"
)

// ErrMalformed marks a stored value that cannot be parsed.
var ErrMalformed = errors.New("malformed persisted data")

// timestampLayout renders history dates as ISO-8601 UTC instants with
// millisecond precision, e.g. 2025-06-15T10:00:00.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp accepts any RFC 3339 instant, with or without fractional
// seconds.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
