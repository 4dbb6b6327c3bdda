package searcher

import (
	"sort"
	"strings"
	"time"

	"github.com/memolab/memlog-mcp/pkg/types"
)

// FilterOptions narrows an exact-substring scan over entries. Every
// provided field must match; zero fields means no filtering.
type FilterOptions struct {
	// Tag matches entries carrying the tag exactly (leading # optional).
	Tag string
	// Date matches entries whose timestamp contains the string.
	Date string
	// Keyword matches entries whose body contains the string,
	// case-insensitively.
	Keyword string
}

// Filter returns the entries satisfying all provided filters, in document
// order.
func Filter(entries []types.LogEntry, opts FilterOptions) []types.LogEntry {
	keyword := strings.ToLower(opts.Keyword)
	var out []types.LogEntry
	for _, e := range entries {
		if opts.Tag != "" && !e.HasTag(opts.Tag) {
			continue
		}
		if opts.Date != "" && !strings.Contains(e.Timestamp, opts.Date) {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(e.Body), keyword) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Recent returns the n entries with the greatest timestamps, newest first.
func Recent(entries []types.LogEntry, n int) []types.LogEntry {
	sorted := make([]types.LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// WithTag returns all entries carrying the tag, in document order.
func WithTag(entries []types.LogEntry, tag string) []types.LogEntry {
	return Filter(entries, FilterOptions{Tag: tag})
}

// Reminder pairs a due date with its entry, body shown without the
// embedded @date token.
type Reminder struct {
	Due   string         `json:"due"`
	Entry types.LogEntry `json:"entry"`
}

// RemindersDue returns entries whose reminder date falls between today and
// today+withinDays, inclusive on both ends, sorted by due date ascending.
func RemindersDue(entries []types.LogEntry, withinDays int, now time.Time) []Reminder {
	if withinDays < 0 {
		withinDays = 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, withinDays)

	var due []Reminder
	for _, e := range entries {
		if e.ReminderDate == "" {
			continue
		}
		d, err := time.ParseInLocation("2006-01-02", e.ReminderDate, now.Location())
		if err != nil {
			continue
		}
		if d.Before(today) || d.After(horizon) {
			continue
		}
		stripped := e
		stripped.Body = strings.TrimSpace(strings.ReplaceAll(e.Body, "@"+e.ReminderDate, ""))
		due = append(due, Reminder{Due: e.ReminderDate, Entry: stripped})
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Due < due[j].Due
	})
	return due
}

// Tags returns every distinct tag across the entries, case-sensitive,
// sorted lexicographically.
func Tags(entries []types.LogEntry) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, e := range entries {
		for _, t := range e.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
