package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/memolab/memlog-mcp/internal/parser"
	"github.com/memolab/memlog-mcp/internal/scorer"
	"github.com/memolab/memlog-mcp/internal/searcher"
	"github.com/memolab/memlog-mcp/internal/store"
	"github.com/memolab/memlog-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNotConfigured = -32001 // No memory log location configured
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

var reminderDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// handleSearchMemory handles the search_memory tool invocation
func (s *Server) handleSearchMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	queryText, ok := args["query"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing",
		})
	}

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	text, err := s.store.Load()
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load memory log", map[string]interface{}{
			"error": err.Error(),
		})
	}

	recency := getBoolDefault(args, "include_recency_bonus", true)
	resp, err := s.searcher.Search(text, searcher.Request{
		Query:        queryText,
		Limit:        getIntDefault(args, "limit", 10),
		RecencyBonus: &recency,
		Synonyms:     getStringSlice(args, "synonyms"),
		Weights:      parseWeightOverrides(args["weights"]),
	})
	if errors.Is(err, types.ErrEmptyQuery) {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query is empty", map[string]interface{}{
			"param":  "query",
			"reason": "empty or whitespace only",
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(resp)), nil
}

// handleAddMemory handles the add_memory tool invocation
func (s *Server) handleAddMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	content, ok := args["content"].(string)
	if !ok || content == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "content parameter is required", map[string]interface{}{
			"param":  "content",
			"reason": "missing or empty",
		})
	}

	reminder := getStringDefault(args, "reminder_date", "")
	if reminder != "" && !reminderDateRe.MatchString(reminder) {
		return nil, newMCPError(ErrorCodeInvalidParams, "reminder_date must be YYYY-MM-DD", map[string]interface{}{
			"param": "reminder_date",
			"value": reminder,
		})
	}

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	draft := store.Draft{
		Timestamp: time.Now(),
		Tags:      getStringSlice(args, "tags"),
		Body:      content,
		Reminder:  reminder,
	}
	if err := s.store.Append(draft); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to append entry", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"added":     true,
		"timestamp": draft.Timestamp.Format("2006-01-02 15:04"),
		"path":      s.store.Path(),
	})), nil
}

// handleFindEntries handles the find_entries tool invocation
func (s *Server) handleFindEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	entries, mcpErr := s.loadEntries()
	if mcpErr != nil {
		return nil, mcpErr
	}

	found := searcher.Filter(entries, searcher.FilterOptions{
		Tag:     getStringDefault(args, "tag", ""),
		Date:    getStringDefault(args, "date", ""),
		Keyword: getStringDefault(args, "keyword", ""),
	})
	limit := scorer.ClampLimit(getIntDefault(args, "limit", 20), 20)
	if len(found) > limit {
		found = found[:limit]
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total":   len(found),
		"entries": found,
	})), nil
}

// handleListRecent handles the list_recent tool invocation
func (s *Server) handleListRecent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	entries, mcpErr := s.loadEntries()
	if mcpErr != nil {
		return nil, mcpErr
	}

	limit := scorer.ClampLimit(getIntDefault(args, "limit", 10), 10)
	recent := searcher.Recent(entries, limit)

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total":   len(recent),
		"entries": recent,
	})), nil
}

// handleListTags handles the list_tags tool invocation
func (s *Server) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, mcpErr := s.loadEntries()
	if mcpErr != nil {
		return nil, mcpErr
	}

	tags := searcher.Tags(entries)

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total": len(tags),
		"tags":  tags,
	})), nil
}

// handleListReminders handles the list_reminders tool invocation
func (s *Server) handleListReminders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	entries, mcpErr := s.loadEntries()
	if mcpErr != nil {
		return nil, mcpErr
	}

	days := getIntDefault(args, "days", 7)
	if days < 0 {
		days = 0
	}
	due := searcher.RemindersDue(entries, days, time.Now())

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total":     len(due),
		"reminders": due,
	})), nil
}

// requireStore guards tools that touch the log file when no location is
// configured.
func (s *Server) requireStore() error {
	if s.store == nil {
		return newMCPError(ErrorCodeNotConfigured, "no memory log location configured", map[string]interface{}{
			"hint": "set notes_path in ~/.memlog/config.toml",
		})
	}
	return nil
}

// loadEntries reads and parses the memory log for the entry-model tools.
func (s *Server) loadEntries() ([]types.LogEntry, error) {
	if err := s.requireStore(); err != nil {
		return nil, err
	}
	text, err := s.store.Load()
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load memory log", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return parser.Parse(text), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a value as indented JSON
func formatJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter, skipping non-strings
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseWeightOverrides converts a loosely-typed weights object into typed
// overrides. Unknown keys and non-numeric values are ignored; range
// enforcement happens in the resolver.
func parseWeightOverrides(raw interface{}) *scorer.Overrides {
	obj, ok := raw.(map[string]interface{})
	if !ok || len(obj) == 0 {
		return nil
	}
	o := &scorer.Overrides{}
	set := false
	assign := func(key string, dst **float64) {
		if v, ok := obj[key].(float64); ok {
			val := v
			*dst = &val
			set = true
		}
	}
	assign("tagExact", &o.TagExact)
	assign("dateMatch", &o.DateMatch)
	assign("monthMatch", &o.MonthMatch)
	assign("tagPartial", &o.TagPartial)
	assign("contentMatch", &o.ContentMatch)
	assign("multiTokenBonus", &o.MultiTokenBonus)
	assign("allTokensBonus", &o.AllTokensBonus)
	if !set {
		return nil
	}
	return o
}
