package types

// SearchWeights is the scoring policy for one query: a weight per match
// signal plus two bonuses. Callers never construct it directly; the scorer
// resolves it from defaults overlaid with optional overrides, clamping each
// field into its valid range.
type SearchWeights struct {
	TagExact        int `json:"tagExact"`
	DateMatch       int `json:"dateMatch"`
	MonthMatch      int `json:"monthMatch"`
	TagPartial      int `json:"tagPartial"`
	ContentMatch    int `json:"contentMatch"`
	MultiTokenBonus int `json:"multiTokenBonus"`
	AllTokensBonus  int `json:"allTokensBonus"`
}
