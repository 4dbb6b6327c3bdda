package types

// ScoredResult pairs a log entry with the relevance evidence collected for
// one query: the summed signal score, how many query tokens matched at
// least one signal, and a deduplicated list of human-readable reasons.
type ScoredResult struct {
	Score             int      `json:"score"`
	MatchedTokenCount int      `json:"matchedTokenCount"`
	Reasons           []string `json:"reasons"`
	Entry             LogEntry `json:"entry"`
}
