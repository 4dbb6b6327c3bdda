package scorer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/memolab/memlog-mcp/pkg/types"
)

// Recency bonus tiers: entries younger than the cutoff (in days) earn the
// paired bonus. Tested in order; older entries earn nothing.
var recencyTiers = []struct {
	maxAgeDays float64
	bonus      int
}{
	{7, 4},
	{30, 3},
	{90, 2},
	{180, 1},
}

// Score evaluates one entry against the expanded token set under the
// resolved weights, producing the score, the matched-token count, and a
// deduplicated reason trail.
//
// Per token the signals are tested in fixed order: an exact tag match
// short-circuits the remaining checks for that token; otherwise the date,
// month, partial-tag, and content signals are tested independently and all
// that apply contribute. Matching is substring based: queries are short and
// often partial (month prefixes, partial tag names), so recall wins over
// precision and the bonuses push well-matched entries up.
func Score(entry types.LogEntry, tokens []string, w types.SearchWeights, recencyBonus bool, now time.Time) types.ScoredResult {
	ts := strings.ToLower(entry.Timestamp)
	month := ts
	if len(month) > 7 {
		month = month[:7]
	}
	lowTags := make([]string, len(entry.Tags))
	for i, t := range entry.Tags {
		lowTags[i] = strings.ToLower(t)
	}
	tagLine := strings.Join(lowTags, " ")
	body := strings.ToLower(entry.Body)

	res := types.ScoredResult{Entry: entry}
	var reasons []string

	for _, tok := range tokens {
		tagTok := tok
		if !strings.HasPrefix(tagTok, "#") {
			tagTok = "#" + tagTok
		}
		if slices.Contains(lowTags, tagTok) {
			res.Score += w.TagExact
			reasons = append(reasons, fmt.Sprintf("exact tag %s", tagTok))
			res.MatchedTokenCount++
			continue
		}

		matched := false
		if strings.Contains(ts, tok) {
			res.Score += w.DateMatch
			reasons = append(reasons, fmt.Sprintf("date contains %q", tok))
			matched = true
		}
		if strings.Contains(month, tok) {
			res.Score += w.MonthMatch
			reasons = append(reasons, fmt.Sprintf("month contains %q", tok))
			matched = true
		}
		if strings.Contains(tagLine, tok) {
			res.Score += w.TagPartial
			reasons = append(reasons, fmt.Sprintf("partial tag match %q", tok))
			matched = true
		}
		if strings.Contains(body, tok) {
			res.Score += w.ContentMatch
			reasons = append(reasons, fmt.Sprintf("content contains %q", tok))
			matched = true
		}
		if matched {
			res.MatchedTokenCount++
		}
	}

	if res.MatchedTokenCount >= 2 {
		res.Score += w.MultiTokenBonus
		reasons = append(reasons, "multiple tokens matched")
	}
	// The all-tokens bonus counts against the expanded token set: a match
	// on a synonym alone satisfies its originating token.
	if len(tokens) > 0 && res.MatchedTokenCount == len(tokens) {
		res.Score += w.AllTokensBonus
		reasons = append(reasons, "all tokens matched")
	}

	if recencyBonus {
		if b := recency(entry.Timestamp, now); b > 0 {
			res.Score += b
			reasons = append(reasons, fmt.Sprintf("recent entry (+%d)", b))
		}
	}

	res.Reasons = dedupReasons(reasons)
	return res
}

// recency maps the entry age to its bonus tier. Unparseable timestamps
// earn 0 without error.
func recency(timestamp string, now time.Time) int {
	t, err := time.ParseInLocation("2006-01-02 15:04", timestamp, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("2006-01-02", timestamp, time.Local)
	}
	if err != nil {
		return 0
	}
	ageDays := now.Sub(t).Hours() / 24
	for _, tier := range recencyTiers {
		if ageDays <= tier.maxAgeDays {
			return tier.bonus
		}
	}
	return 0
}

func dedupReasons(reasons []string) []string {
	if len(reasons) == 0 {
		return nil
	}
	out := make([]string, 0, len(reasons))
	seen := make(map[string]bool, len(reasons))
	for _, r := range reasons {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
