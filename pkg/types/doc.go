// Package types provides shared type definitions for the memlog MCP server.
//
// The package defines the domain types that flow between the parser, the
// scorer, the searcher, and the MCP/CLI hosts:
//
// LogEntry is one dated, tagged block of free text parsed out of the
// memory log document:
//
//	entry := types.LogEntry{
//	    Timestamp: "2026-02-01 09:30",
//	    Tags:      []string{"#todo", "#errand"},
//	    Body:      "Buy milk",
//	}
//
// SearchWeights is the resolved scoring policy: one weight per match
// signal (tag-exact, date, month, tag-partial, content) plus the
// multi-token and all-tokens bonuses.
//
// ScoredResult carries the outcome of scoring one entry against one query,
// including the human-readable reason trail that explains the match.
//
// Entries are value types derived fresh from the log text on every
// invocation; nothing in this package holds mutable shared state.
package types
