package types

import "strings"

// LogEntry is one dated, tagged block of free text in the memory log.
//
// Entries appear in document order, which is what Position reflects. The
// log file may accumulate new entries at the top or the bottom depending on
// user preference, so document order is not chronological order.
type LogEntry struct {
	// Position is the zero-based line index of the entry header in the
	// source document. It lets a caller navigate back to the entry; it is
	// never used for scoring.
	Position int `json:"position"`

	// Timestamp is the header timestamp exactly as written: "YYYY-MM-DD"
	// or "YYYY-MM-DD HH:mm". Local wall-clock, no timezone.
	Timestamp string `json:"timestamp"`

	// Tags holds the #-prefixed tokens from the header line in the order
	// they were written. Duplicates within one entry are preserved.
	Tags []string `json:"tags"`

	// Body is the free text below the header, newline-joined, excluding
	// the document title line.
	Body string `json:"body"`

	// ReminderDate is an optional embedded @YYYY-MM-DD due date found in
	// the header or body. Empty when the entry carries no reminder.
	ReminderDate string `json:"reminderDate,omitempty"`
}

// HasTag reports whether the entry carries the given tag. The comparison
// is case-insensitive and tolerates a missing leading hash on the argument.
func (e LogEntry) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	for _, t := range e.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}
