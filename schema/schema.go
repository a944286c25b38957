// Package schema has configs, models and shared constants for all parts of workwell.
package schema

import (
	"strings"
	"time"
)

// Fields is the free-form field mapping of a questionnaire submission.
// Values arrive from JSON decoding and may be booleans, strings, numbers,
// or arrays of strings. Callers must treat every field as possibly absent
// or malformed.
type Fields map[string]any

// Entry represents one timestamped questionnaire submission for a domain.
type Entry struct {
	Timestamp string `json:"timestamp"`  // ISO-8601 date-time string
	UserInput Fields `json:"user_input"` // Opaque field mapping from the collector
}

// History is an ordered sequence of entries for one domain, oldest to newest.
// The core never mutates or reorders a history; order carries the recency
// information used by windowed aggregation and trend detection.
type History []Entry

// timestampLayouts are tried in order when parsing entry timestamps.
// The collector writes Python-style isoformat strings which carry no zone
// and a variable number of fractional digits.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses the entry timestamp. The second return value is false when
// the timestamp is absent or does not match any supported layout; callers
// treat such entries as undated rather than failing.
func (e Entry) Time() (time.Time, bool) {
	s := strings.TrimSpace(e.Timestamp)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Tail returns the last n entries of the history, oldest to newest.
// It returns the whole history when it holds fewer than n entries.
func (h History) Tail(n int) History {
	if n <= 0 || len(h) == 0 {
		return nil
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// Latest returns the most recent entry, or false for an empty history.
func (h History) Latest() (Entry, bool) {
	if len(h) == 0 {
		return Entry{}, false
	}
	return h[len(h)-1], true
}

// Between returns the entries whose timestamp t satisfies start <= t < end.
// Entries with unparseable timestamps are skipped.
func (h History) Between(start, end time.Time) History {
	var out History
	for _, e := range h {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if !t.Before(start) && t.Before(end) {
			out = append(out, e)
		}
	}
	return out
}
