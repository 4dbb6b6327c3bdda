package scorer

import (
	"math"

	"github.com/memolab/memlog-mcp/pkg/types"
)

// Default weights per signal. Required signals clamp to [1,20], bonuses to
// [0,20]; out-of-range overrides snap to the nearest bound rather than
// being rejected.
const (
	DefaultTagExact        = 6
	DefaultDateMatch       = 4
	DefaultMonthMatch      = 3
	DefaultTagPartial      = 3
	DefaultContentMatch    = 2
	DefaultMultiTokenBonus = 3
	DefaultAllTokensBonus  = 4

	maxWeight = 20

	// DefaultMaxResults is the configured result ceiling when unset.
	DefaultMaxResults = 50
)

// Overrides carries optional per-signal weight overrides. A nil field, or a
// non-finite value arriving from a loosely-typed caller, falls back to the
// default for that field rather than to zero.
type Overrides struct {
	TagExact        *float64 `json:"tagExact,omitempty" toml:"tag_exact"`
	DateMatch       *float64 `json:"dateMatch,omitempty" toml:"date_match"`
	MonthMatch      *float64 `json:"monthMatch,omitempty" toml:"month_match"`
	TagPartial      *float64 `json:"tagPartial,omitempty" toml:"tag_partial"`
	ContentMatch    *float64 `json:"contentMatch,omitempty" toml:"content_match"`
	MultiTokenBonus *float64 `json:"multiTokenBonus,omitempty" toml:"multi_token_bonus"`
	AllTokensBonus  *float64 `json:"allTokensBonus,omitempty" toml:"all_tokens_bonus"`
}

// Merge overlays o with call-level overrides, field by field. Either side
// may be nil.
func Merge(base, call *Overrides) *Overrides {
	if base == nil {
		return call
	}
	if call == nil {
		return base
	}
	merged := *base
	if call.TagExact != nil {
		merged.TagExact = call.TagExact
	}
	if call.DateMatch != nil {
		merged.DateMatch = call.DateMatch
	}
	if call.MonthMatch != nil {
		merged.MonthMatch = call.MonthMatch
	}
	if call.TagPartial != nil {
		merged.TagPartial = call.TagPartial
	}
	if call.ContentMatch != nil {
		merged.ContentMatch = call.ContentMatch
	}
	if call.MultiTokenBonus != nil {
		merged.MultiTokenBonus = call.MultiTokenBonus
	}
	if call.AllTokensBonus != nil {
		merged.AllTokensBonus = call.AllTokensBonus
	}
	return &merged
}

// Resolve produces a complete weight set from the defaults overlaid with o.
// Every field ends up an integer clamped into its valid range.
func Resolve(o *Overrides) types.SearchWeights {
	w := types.SearchWeights{
		TagExact:        DefaultTagExact,
		DateMatch:       DefaultDateMatch,
		MonthMatch:      DefaultMonthMatch,
		TagPartial:      DefaultTagPartial,
		ContentMatch:    DefaultContentMatch,
		MultiTokenBonus: DefaultMultiTokenBonus,
		AllTokensBonus:  DefaultAllTokensBonus,
	}
	if o == nil {
		return w
	}
	w.TagExact = resolveWeight(o.TagExact, w.TagExact, 1)
	w.DateMatch = resolveWeight(o.DateMatch, w.DateMatch, 1)
	w.MonthMatch = resolveWeight(o.MonthMatch, w.MonthMatch, 1)
	w.TagPartial = resolveWeight(o.TagPartial, w.TagPartial, 1)
	w.ContentMatch = resolveWeight(o.ContentMatch, w.ContentMatch, 1)
	w.MultiTokenBonus = resolveWeight(o.MultiTokenBonus, w.MultiTokenBonus, 0)
	w.AllTokensBonus = resolveWeight(o.AllTokensBonus, w.AllTokensBonus, 0)
	return w
}

func resolveWeight(v *float64, def, min int) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	n := int(*v)
	if n < min {
		return min
	}
	if n > maxWeight {
		return maxWeight
	}
	return n
}

// ClampMaxResults bounds the configured result-count ceiling to [10,200].
// Zero means unset and resolves to DefaultMaxResults.
func ClampMaxResults(n int) int {
	switch {
	case n == 0:
		return DefaultMaxResults
	case n < 10:
		return 10
	case n > 200:
		return 200
	}
	return n
}

// ClampLimit bounds a per-call result limit to [1,200]. Zero means unset
// and resolves to def, which varies by call site.
func ClampLimit(n, def int) int {
	switch {
	case n == 0:
		return def
	case n < 1:
		return 1
	case n > 200:
		return 200
	}
	return n
}
