// Package parser converts raw memory-log text into structured entries.
//
// The log document is a single flat text file with one optional title line
// and any number of entry blocks:
//
//	# Memory Log
//
//	## 2026-02-01 09:30 #todo #errand @2026-02-03
//	Buy milk before the weekend
//
//	## 2026-01-15 #meeting
//	Discuss roadmap with the platform team
//
// Each "## <timestamp>" line starts an entry; the rest of the header line
// is scanned for #tags (order preserved) and an optional @YYYY-MM-DD
// reminder date. Following non-blank lines form the entry body.
//
// # Error Handling
//
// Parse is total: malformed headers are treated as body text, text before
// the first header is dropped, and a document without headers yields an
// empty slice. Entries are re-derived from the source text on every
// invocation; there is no persisted index.
package parser
