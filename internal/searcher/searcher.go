package searcher

import (
	"sort"
	"time"

	"github.com/memolab/memlog-mcp/internal/parser"
	"github.com/memolab/memlog-mcp/internal/query"
	"github.com/memolab/memlog-mcp/internal/scorer"
	"github.com/memolab/memlog-mcp/pkg/types"
)

// DefaultLimit is the per-call result limit when the caller leaves it unset.
const DefaultLimit = 10

// Options carries the configured (host-level) search policy. Per-call
// request values overlay these.
type Options struct {
	// Synonyms are custom "key:syn1,syn2" rules merged into the built-in
	// synonym table.
	Synonyms []string
	// Weights are configured weight overrides.
	Weights *scorer.Overrides
	// MaxResults is the configured result ceiling, clamped to [10,200].
	MaxResults int
	// RecencyBonus enables the recency bonus unless a request disables it.
	RecencyBonus bool
}

// Searcher orchestrates tokenization, synonym expansion, weight resolution,
// per-entry scoring, and ranking. It holds configuration only; every call
// operates on its own freshly parsed snapshot of entries, so concurrent
// searches are safe without locking.
type Searcher struct {
	opts Options
}

// New creates a Searcher with the given configured policy.
func New(opts Options) *Searcher {
	opts.MaxResults = scorer.ClampMaxResults(opts.MaxResults)
	return &Searcher{opts: opts}
}

// Request contains parameters for one search call.
type Request struct {
	Query string
	// Limit is clamped to [1,200]; zero means DefaultLimit.
	Limit int
	// RecencyBonus overrides the configured toggle when non-nil.
	RecencyBonus *bool
	// Synonyms are extra "key:syn1,syn2" rules for this call only.
	Synonyms []string
	// Weights are per-call overrides; they win over configured overrides
	// field by field.
	Weights *scorer.Overrides
	// Now anchors the recency bonus; zero means time.Now(). Tests pin it.
	Now time.Time
}

// Response is the ranked result list plus the query breakdown, so
// programmatic callers can explain how results were produced.
type Response struct {
	Query          string               `json:"query"`
	QueryTokens    []string             `json:"queryTokens"`
	ExpandedTokens []string             `json:"expandedTokens"`
	TotalMatches   int                  `json:"totalMatches"`
	Results        []types.ScoredResult `json:"results"`
}

// Search runs the full pipeline over the given log text. It rejects empty
// queries with types.ErrEmptyQuery, scores every parsed entry, keeps those
// with score > 0, sorts by score descending with the lexicographically
// greater timestamp first on ties, and truncates to the clamped limit.
// Pure given (log text, request, configuration); inputs are not mutated.
func (s *Searcher) Search(logText string, req Request) (*Response, error) {
	tokens := query.Tokenize(req.Query)
	if len(tokens) == 0 {
		return nil, types.ErrEmptyQuery
	}

	entries := parser.Parse(logText)

	rules := make([]string, 0, len(s.opts.Synonyms)+len(req.Synonyms))
	rules = append(rules, s.opts.Synonyms...)
	rules = append(rules, req.Synonyms...)
	expanded := query.NewSynonymMap(rules).Expand(tokens)

	w := scorer.Resolve(scorer.Merge(s.opts.Weights, req.Weights))

	recencyBonus := s.opts.RecencyBonus
	if req.RecencyBonus != nil {
		recencyBonus = *req.RecencyBonus
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	var results []types.ScoredResult
	for _, e := range entries {
		if r := scorer.Score(e, expanded, w, recencyBonus, now); r.Score > 0 {
			results = append(results, r)
		}
	}

	// Lexicographic timestamp comparison is chronologically correct for
	// the fixed-width format.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.Timestamp > results[j].Entry.Timestamp
	})

	total := len(results)
	limit := scorer.ClampLimit(req.Limit, DefaultLimit)
	if limit > s.opts.MaxResults {
		limit = s.opts.MaxResults
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return &Response{
		Query:          req.Query,
		QueryTokens:    tokens,
		ExpandedTokens: expanded,
		TotalMatches:   total,
		Results:        results,
	}, nil
}
