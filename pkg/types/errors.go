package types

import "errors"

// Domain errors shared across components
var (
	// ErrEmptyQuery distinguishes "no query" from "query matched nothing".
	ErrEmptyQuery = errors.New("query is empty")

	// ErrNoNotesPath signals that no memory log location is configured.
	// Hosts surface it as a message, not a failure.
	ErrNoNotesPath = errors.New("notes path is not configured")
)
