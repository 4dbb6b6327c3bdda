package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/memolab/memlog-mcp/internal/searcher"
	"github.com/memolab/memlog-mcp/pkg/types"
)

var (
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	remindStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

func renderQueryInfo(resp *searcher.Response) string {
	return dimStyle.Render(fmt.Sprintf("tokens: %s | expanded: %s | matches: %d",
		strings.Join(resp.QueryTokens, " "),
		strings.Join(resp.ExpandedTokens, " "),
		resp.TotalMatches))
}

func renderResult(r types.ScoredResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s", scoreStyle.Render(fmt.Sprintf("%3d", r.Score)), renderHeader(r.Entry)))
	if body := strings.TrimSpace(r.Entry.Body); body != "" {
		b.WriteString("\n     " + firstLine(body))
	}
	b.WriteString("\n     " + dimStyle.Render(strings.Join(r.Reasons, "; ")))
	return b.String()
}

func renderEntry(e types.LogEntry) string {
	out := "  " + renderHeader(e)
	if body := strings.TrimSpace(e.Body); body != "" {
		out += "\n     " + firstLine(body)
	}
	return out
}

func renderHeader(e types.LogEntry) string {
	parts := []string{dateStyle.Render(e.Timestamp)}
	if len(e.Tags) > 0 {
		parts = append(parts, tagStyle.Render(strings.Join(e.Tags, " ")))
	}
	if e.ReminderDate != "" {
		parts = append(parts, remindStyle.Render("@"+e.ReminderDate))
	}
	return strings.Join(parts, "  ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
