package parser

import (
	"regexp"
	"strings"

	"github.com/memolab/memlog-mcp/pkg/types"
)

var (
	// headerRe matches an entry header: "## YYYY-MM-DD" with an optional
	// " HH:mm" clock, followed by arbitrary trailing text (tags, reminder).
	headerRe = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2}(?: \d{2}:\d{2})?)(.*)$`)

	// tagRe matches a #tag token. Letters are matched as Unicode so that
	// tags like #経費 work alongside #todo.
	tagRe = regexp.MustCompile(`#[\p{L}\p{N}_-]+`)

	// reminderRe matches an embedded @YYYY-MM-DD due-date token.
	reminderRe = regexp.MustCompile(`@\d{4}-\d{2}-\d{2}`)

	// titleRe matches the document title line ("# ..." with a single hash).
	titleRe = regexp.MustCompile(`^#(\s.*)?$`)
)

// Parse splits raw log text into entries in document order.
//
// A line matching the header pattern starts a new entry, flushing any entry
// already open. Non-blank lines that neither start an entry nor match the
// document title line become body text of the open entry. Text before the
// first header is dropped; malformed headers simply fail the pattern and
// fall through as body text. Parse never returns an error: a document with
// no headers yields an empty slice.
func Parse(text string) []types.LogEntry {
	var (
		entries []types.LogEntry
		open    *types.LogEntry
		body    []string
	)

	flush := func() {
		if open == nil {
			return
		}
		open.Body = strings.Join(body, "\n")
		entries = append(entries, *open)
		open, body = nil, nil
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			flush()
			open = &types.LogEntry{
				Position:  i,
				Timestamp: m[1],
				Tags:      tagRe.FindAllString(m[2], -1),
			}
			if rem := reminderRe.FindString(m[2]); rem != "" {
				open.ReminderDate = strings.TrimPrefix(rem, "@")
			}
			continue
		}
		if open == nil {
			// Text before the first header is not an entry.
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if titleRe.MatchString(line) {
			continue
		}
		if open.ReminderDate == "" {
			if rem := reminderRe.FindString(line); rem != "" {
				open.ReminderDate = strings.TrimPrefix(rem, "@")
			}
		}
		body = append(body, line)
	}
	flush()

	return entries
}
