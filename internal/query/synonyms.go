package query

import (
	"slices"
	"strings"
)

// builtinSynonyms is the fixed synonym table shipped with the tool. Keys
// and values are lowercase bare terms (no # prefix). User-supplied rules
// merge into these sets rather than replacing them.
var builtinSynonyms = map[string][]string{
	"todo":    {"task", "pending", "やること"},
	"task":    {"todo", "pending"},
	"meeting": {"mtg", "sync", "standup", "打ち合わせ"},
	"mtg":     {"meeting", "sync"},
	"idea":    {"thought", "brainstorm", "アイデア"},
	"bug":     {"issue", "defect", "不具合"},
	"buy":     {"purchase", "order", "購入"},
	"done":    {"finished", "completed", "完了"},
	"会議":      {"ミーティング", "打ち合わせ", "mtg"},
	"経費":      {"精算", "交通費", "出張費"},
	"買い物":     {"購入", "ショッピング"},
	"メモ":      {"note", "memo"},
}

// SynonymMap maps a normalized key term to its equivalent terms. Values
// behave as a set (merging collapses duplicates) but keep first-seen order
// so expansion output is stable.
type SynonymMap map[string][]string

// NewSynonymMap builds a synonym map from the built-in table merged with
// caller-supplied rules in "key:syn1,syn2" form. Keys and values are
// lowercased and trimmed; malformed rows (missing key or empty value list)
// are silently skipped.
func NewSynonymMap(rules []string) SynonymMap {
	m := make(SynonymMap, len(builtinSynonyms)+len(rules))
	for key, syns := range builtinSynonyms {
		m.add(key, syns)
	}
	for _, rule := range rules {
		key, rest, ok := strings.Cut(rule, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		var syns []string
		for _, v := range strings.Split(rest, ",") {
			if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
				syns = append(syns, v)
			}
		}
		if len(syns) == 0 {
			continue
		}
		m.add(key, syns)
	}
	return m
}

func (m SynonymMap) add(key string, syns []string) {
	set := m[key]
	for _, s := range syns {
		if !slices.Contains(set, s) {
			set = append(set, s)
		}
	}
	m[key] = set
}

// Expand returns the original tokens plus, for each token (after stripping
// a leading #), the synonyms registered under that bare term. The result is
// deduplicated with first-seen order. Lookup is single hop: a synonym's own
// synonyms are not pulled in.
func (m SynonymMap) Expand(tokens []string) []string {
	expanded := make([]string, 0, len(tokens)*2)
	seen := make(map[string]bool, len(tokens)*2)
	push := func(t string) {
		if !seen[t] {
			seen[t] = true
			expanded = append(expanded, t)
		}
	}
	for _, tok := range tokens {
		push(tok)
		for _, syn := range m[strings.TrimPrefix(tok, "#")] {
			push(syn)
		}
	}
	return expanded
}
