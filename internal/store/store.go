package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/memolab/memlog-mcp/pkg/types"
)

// InsertPosition selects where an appended entry block lands in the file.
type InsertPosition string

const (
	// InsertBottom appends new entries at the end of the file.
	InsertBottom InsertPosition = "bottom"
	// InsertTop inserts new entries immediately after the document title.
	InsertTop InsertPosition = "top"
)

// DefaultTitle is the document header written by Init when none is given.
const DefaultTitle = "Memory Log"

var titleRe = regexp.MustCompile(`^#(\s.*)?$`)

// Store is the flat-file memory log. It is the only writer the design
// assumes; readers always get a consistent snapshot because Load reads the
// whole file in one call.
type Store struct {
	path string
	pos  InsertPosition
}

// New creates a Store for the log file at path. An empty path is a
// configuration error surfaced as types.ErrNoNotesPath.
func New(path string, pos InsertPosition) (*Store, error) {
	if path == "" {
		return nil, types.ErrNoNotesPath
	}
	switch pos {
	case InsertTop, InsertBottom:
	case "":
		pos = InsertBottom
	default:
		return nil, fmt.Errorf("invalid insert position %q", pos)
	}
	return &Store{path: path, pos: pos}, nil
}

// Path returns the log file location.
func (s *Store) Path() string { return s.path }

// Load returns the raw log text. A log that does not yet exist behaves
// identically to an empty log.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read memory log: %w", err)
	}
	return string(data), nil
}

// Init creates the log file with a "# <title>" header line. It is a no-op
// when the file already exists.
func (s *Store) Init(title string) error {
	if title == "" {
		title = DefaultTitle
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat memory log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	content := fmt.Sprintf("# %s\n", title)
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("create memory log: %w", err)
	}
	return nil
}

// Draft is a new entry before formatting.
type Draft struct {
	// Timestamp becomes the entry header time; zero means time.Now().
	Timestamp time.Time
	// Tags may be given with or without the leading hash.
	Tags []string
	// Body is the entry text.
	Body string
	// Reminder is an optional YYYY-MM-DD due date.
	Reminder string
}

// Append formats the draft as an entry block and inserts it per the
// configured position policy: at the end of the file, or immediately after
// the document title line when inserting at the top.
func (s *Store) Append(d Draft) error {
	text, err := s.Load()
	if err != nil {
		return err
	}

	block := formatBlock(d)
	var out string
	if s.pos == InsertTop {
		out = insertAfterTitle(text, block)
	} else {
		out = text
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		if out != "" {
			out += "\n"
		}
		out += block
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write memory log: %w", err)
	}
	return nil
}

func formatBlock(d Draft) string {
	ts := d.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	var header strings.Builder
	header.WriteString("## ")
	header.WriteString(ts.Format("2006-01-02 15:04"))
	for _, tag := range d.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		header.WriteString(" ")
		header.WriteString(tag)
	}
	if d.Reminder != "" {
		header.WriteString(" @")
		header.WriteString(d.Reminder)
	}

	block := header.String() + "\n"
	if body := strings.TrimRight(d.Body, "\n"); strings.TrimSpace(body) != "" {
		block += body + "\n"
	}
	return block
}

// insertAfterTitle places the block after the document title line, or at
// the very top when the document has no title.
func insertAfterTitle(text, block string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if titleRe.MatchString(line) {
			head := strings.Join(lines[:i+1], "\n")
			tail := strings.Join(lines[i+1:], "\n")
			out := head + "\n\n" + block
			if strings.TrimSpace(tail) != "" {
				out += "\n" + strings.TrimLeft(tail, "\n")
			}
			return out
		}
	}
	if strings.TrimSpace(text) == "" {
		return block
	}
	return block + "\n" + strings.TrimLeft(text, "\n")
}
