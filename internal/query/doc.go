// Package query normalizes free-text queries for the scorer.
//
// Tokenize lowercases and whitespace-splits the query; SynonymMap expands
// the resulting tokens with configured equivalent terms before scoring:
//
//	tokens := query.Tokenize("経費 2026-02")
//	expanded := query.NewSynonymMap(cfg.Synonyms).Expand(tokens)
//
// Expansion maps query vocabulary to entry vocabulary, never the reverse:
// querying "経費" also matches entries mentioning "精算", but querying
// "精算" does not reach entries tagged #経費.
package query
