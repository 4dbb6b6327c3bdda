package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `# Memory Log

## 2026-02-01 #todo
Buy milk

## 2026-01-15 10:30 #meeting #work @2026-01-20
Discuss roadmap
Bring slides
`

func TestParse_BasicDocument(t *testing.T) {
	entries := Parse(sampleLog)
	require.Len(t, entries, 2)

	assert.Equal(t, "2026-02-01", entries[0].Timestamp)
	assert.Equal(t, []string{"#todo"}, entries[0].Tags)
	assert.Equal(t, "Buy milk", entries[0].Body)
	assert.Empty(t, entries[0].ReminderDate)
	assert.Equal(t, 2, entries[0].Position)

	assert.Equal(t, "2026-01-15 10:30", entries[1].Timestamp)
	assert.Equal(t, []string{"#meeting", "#work"}, entries[1].Tags)
	assert.Equal(t, "Discuss roadmap\nBring slides", entries[1].Body)
	assert.Equal(t, "2026-01-20", entries[1].ReminderDate)
}

func TestParse_NoHeaders(t *testing.T) {
	assert.Empty(t, Parse("just some text\nwithout any headers\n"))
	assert.Empty(t, Parse(""))
}

func TestParse_LeadingTextDropped(t *testing.T) {
	entries := Parse("stray line\nanother stray\n## 2026-03-01 #x\nbody\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "body", entries[0].Body)
}

func TestParse_MalformedHeaderBecomesBody(t *testing.T) {
	entries := Parse("## 2026-03-01\nfine\n## 2026-3-1 bad date\nmore\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "fine\n## 2026-3-1 bad date\nmore", entries[0].Body)
}

func TestParse_TitleLineExcludedFromBody(t *testing.T) {
	entries := Parse("## 2026-03-01\nbefore\n# Stray Title\nafter\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "before\nafter", entries[0].Body)
}

func TestParse_DuplicateTagsPreserved(t *testing.T) {
	entries := Parse("## 2026-03-01 #a #b #a\n")
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"#a", "#b", "#a"}, entries[0].Tags)
}

func TestParse_UnicodeTags(t *testing.T) {
	entries := Parse("## 2026-03-01 #経費 #out-of-pocket\n精算した\n")
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"#経費", "#out-of-pocket"}, entries[0].Tags)
}

func TestParse_ReminderInBody(t *testing.T) {
	entries := Parse("## 2026-03-01 #todo\nSubmit report @2026-03-05\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-03-05", entries[0].ReminderDate)
	// Body keeps the token; reminder views strip it for display.
	assert.Equal(t, "Submit report @2026-03-05", entries[0].Body)
}

func TestParse_HeaderReminderWinsOverBody(t *testing.T) {
	entries := Parse("## 2026-03-01 @2026-03-02\nalso @2026-04-01 here\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-03-02", entries[0].ReminderDate)
}

func TestParse_CRLFInput(t *testing.T) {
	entries := Parse("## 2026-03-01 #a\r\nline one\r\nline two\r\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "line one\nline two", entries[0].Body)
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	entries := Parse("## 2026-03-01\n\none\n\n\ntwo\n")
	require.Len(t, entries, 1)
	assert.Equal(t, "one\ntwo", entries[0].Body)
}

func TestParse_EntryWithoutBody(t *testing.T) {
	entries := Parse("## 2026-03-01 #only-tags\n## 2026-03-02\n")
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].Body)
	assert.Empty(t, entries[1].Body)
}
