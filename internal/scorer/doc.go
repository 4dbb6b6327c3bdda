// Package scorer implements the multi-signal relevance scorer and its
// weight resolver.
//
// One entry is scored against the expanded query tokens under a resolved
// SearchWeights policy:
//
//	w := scorer.Resolve(overrides)
//	result := scorer.Score(entry, expandedTokens, w, true, time.Now())
//
// # Signals
//
// Per token, in fixed order:
//
//   - Tag-exact: the #-prefixed token equals one of the entry's tags.
//     Short-circuits the remaining signals for that token.
//   - Date match: token is a substring of the timestamp.
//   - Month match: token is a substring of the YYYY-MM prefix.
//   - Tag-partial: token is a substring of the space-joined tag list.
//   - Content match: token is a substring of the body text.
//
// After all tokens, the multi-token bonus applies when at least two tokens
// matched and the all-tokens bonus when every token matched. An optional
// recency bonus favors young entries: +4 within 7 days, +3 within 30,
// +2 within 90, +1 within 180.
//
// # Weight Resolution
//
// Resolve overlays caller overrides onto documented defaults and clamps
// every field into its range ([1,20] for signals, [0,20] for bonuses).
// Missing or non-finite overrides fall back to the default, never to zero.
package scorer
