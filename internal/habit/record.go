// Package habit provides the completion record model shared by the
// analytics engine and its callers.
package habit

import (
	"time"
)

// CompletionRecord is one observation for one scheduled day of one habit.
//
// Completion is carried in two places for historical reasons: newer data
// sets IsCompleted explicitly, older data only has Status. Completed is
// the single place that resolves the two; nothing else should read the
// raw fields.
type CompletionRecord struct {
	// HabitID identifies the habit this record belongs to.
	HabitID string `json:"habit_id,omitempty"`

	// DateKey is the scheduled calendar day, formatted 2006-01-02.
	DateKey string `json:"date_key"`

	// CompletedAt is the timestamp of actual completion, when known.
	// Only the time-of-day analyses read it.
	CompletedAt string `json:"completed_at,omitempty"`

	// IsCompleted is the explicit completion flag. Nil means the flag
	// was never set and Status decides.
	IsCompleted *bool `json:"is_completed,omitempty"`

	// Status is the legacy completion marker: "" and "done" count as
	// completed, anything else does not.
	Status string `json:"status,omitempty"`

	// Progress is an optional magnitude for count/duration habits.
	Progress *float64 `json:"progress,omitempty"`
}

// Completed resolves the dual completion representation: IsCompleted
// wins when present, otherwise an empty or "done" Status counts.
func (r CompletionRecord) Completed() bool {
	if r.IsCompleted != nil {
		return *r.IsCompleted
	}
	return r.Status == "" || r.Status == "done"
}

// Day parses the record's DateKey. It returns the zero time for
// malformed keys; aggregations skip those records rather than fail.
func (r CompletionRecord) Day() time.Time {
	return ParseDay(r.DateKey)
}

// CompletionHour returns the local hour (0-23) the record was completed
// at. The second result is false when there is no resolvable timestamp.
func (r CompletionRecord) CompletionHour() (int, bool) {
	t := ParseTimestamp(r.CompletedAt)
	if t.IsZero() {
		return 0, false
	}
	return t.Hour(), true
}

// ParseDay parses a date-only key (2006-01-02). Returns the zero time
// on failure.
func ParseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseTimestamp parses a completion timestamp, accepting RFC3339 with
// or without sub-second precision. Returns the zero time on failure.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			// Fallback for datetime strings without a timezone suffix.
			t, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return time.Time{}
			}
		}
	}
	return t
}

// DayKey formats a time as a DateKey.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
