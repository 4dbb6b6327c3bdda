// Package searcher ranks memory-log entries against free-text queries.
//
// The Searcher runs the full retrieval pipeline in one synchronous pass:
//
//	parse -> tokenize -> expand synonyms -> resolve weights -> score -> rank
//
// # Basic Usage
//
//	s := searcher.New(searcher.Options{
//	    Synonyms:     cfg.Synonyms,
//	    Weights:      cfg.Weights,
//	    MaxResults:   cfg.MaxResults,
//	    RecencyBonus: true,
//	})
//
//	resp, err := s.Search(logText, searcher.Request{
//	    Query: "経費 2026-02",
//	    Limit: 10,
//	})
//
//	for _, r := range resp.Results {
//	    fmt.Printf("%3d  %s  %v\n", r.Score, r.Entry.Timestamp, r.Reasons)
//	}
//
// Entries are filtered to score > 0, sorted by score descending with the
// greater timestamp winning ties, and truncated to the clamped limit. The
// response also reports the tokenized and expanded query so programmatic
// callers can explain their results.
//
// There is no index and no cache: the log is a flat file of at most a few
// thousand entries, and a linear scan per query completes in well under a
// second at that size. Each call parses its own immutable snapshot, so
// concurrent searches need no locking.
//
// # Auxiliary Queries
//
// The package also provides the read-only shapes built on the entry model
// alone: Filter (exact-substring by tag/date/keyword), Recent, WithTag,
// RemindersDue, and Tags.
package searcher
