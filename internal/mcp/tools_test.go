package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memolab/memlog-mcp/internal/config"
	"github.com/memolab/memlog-mcp/internal/searcher"
	"github.com/memolab/memlog-mcp/pkg/types"
)

const testLog = "# Memory Log\n\n" +
	"## 2026-02-01 #todo\nBuy milk\n\n" +
	"## 2026-01-15 #meeting @2026-02-10\nDiscuss roadmap @2026-02-10\n"

func newTestServer(t *testing.T, logContent string) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory.md")
	if logContent != "" {
		require.NoError(t, os.WriteFile(path, []byte(logContent), 0o644))
	}
	srv, err := NewServer(&config.Config{
		NotesPath:      path,
		InsertPosition: "bottom",
	})
	require.NoError(t, err)
	return srv
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestUnconfiguredPathFailsPerCall(t *testing.T) {
	srv, err := NewServer(&config.Config{NotesPath: ""})
	require.NoError(t, err)

	_, err = srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{
		"query": "milk",
	}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeNotConfigured, mcpErr.Code)

	_, err = srv.handleListTags(context.Background(), callRequest("list_tags", nil))
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeNotConfigured, mcpErr.Code)
}

func TestHandleSearchMemory(t *testing.T) {
	srv := newTestServer(t, testLog)

	result, err := srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{
		"query": "#todo",
	}))
	require.NoError(t, err)

	var resp searcher.Response
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, "#todo", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "2026-02-01", resp.Results[0].Entry.Timestamp)
}

func TestHandleSearchMemory_MissingQuery(t *testing.T) {
	srv := newTestServer(t, testLog)

	_, err := srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleSearchMemory_EmptyQuery(t *testing.T) {
	srv := newTestServer(t, testLog)

	_, err := srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{
		"query": "   ",
	}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeEmptyQuery, mcpErr.Code)
}

func TestHandleSearchMemory_WeightOverrides(t *testing.T) {
	srv := newTestServer(t, testLog)

	result, err := srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{
		"query":                 "milk",
		"include_recency_bonus": false,
		"weights": map[string]interface{}{
			"contentMatch": float64(15),
		},
	}))
	require.NoError(t, err)

	var resp searcher.Response
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Results, 1)
	// content 15 plus the all-tokens bonus for the single matched token.
	assert.Equal(t, 19, resp.Results[0].Score)
}

func TestHandleAddMemory(t *testing.T) {
	srv := newTestServer(t, "")

	result, err := srv.handleAddMemory(context.Background(), callRequest("add_memory", map[string]interface{}{
		"content": "Remember the conference talk",
		"tags":    []interface{}{"event", "#conference"},
	}))
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, true, resp["added"])

	text, err := srv.store.Load()
	require.NoError(t, err)
	assert.Contains(t, text, "#event #conference")
	assert.Contains(t, text, "Remember the conference talk")
}

func TestHandleAddMemory_MissingContent(t *testing.T) {
	srv := newTestServer(t, "")

	_, err := srv.handleAddMemory(context.Background(), callRequest("add_memory", map[string]interface{}{}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleAddMemory_BadReminderDate(t *testing.T) {
	srv := newTestServer(t, "")

	_, err := srv.handleAddMemory(context.Background(), callRequest("add_memory", map[string]interface{}{
		"content":       "x",
		"reminder_date": "next tuesday",
	}))
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestAddThenSearchRoundTrip(t *testing.T) {
	srv := newTestServer(t, "")

	_, err := srv.handleAddMemory(context.Background(), callRequest("add_memory", map[string]interface{}{
		"content": "Refactor the billing pipeline",
		"tags":    []interface{}{"work"},
	}))
	require.NoError(t, err)

	result, err := srv.handleSearchMemory(context.Background(), callRequest("search_memory", map[string]interface{}{
		"query": "billing",
	}))
	require.NoError(t, err)

	var resp searcher.Response
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Results, 1)
	assert.Contains(t, resp.Results[0].Entry.Body, "billing")
}

func TestHandleFindEntries(t *testing.T) {
	srv := newTestServer(t, testLog)

	result, err := srv.handleFindEntries(context.Background(), callRequest("find_entries", map[string]interface{}{
		"tag": "meeting",
	}))
	require.NoError(t, err)

	var resp struct {
		Total   int              `json:"total"`
		Entries []types.LogEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "2026-01-15", resp.Entries[0].Timestamp)
}

func TestHandleListRecent(t *testing.T) {
	srv := newTestServer(t, testLog)

	result, err := srv.handleListRecent(context.Background(), callRequest("list_recent", map[string]interface{}{
		"limit": float64(1),
	}))
	require.NoError(t, err)

	var resp struct {
		Total   int              `json:"total"`
		Entries []types.LogEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "2026-02-01", resp.Entries[0].Timestamp)
}

func TestHandleListTags(t *testing.T) {
	srv := newTestServer(t, testLog)

	result, err := srv.handleListTags(context.Background(), callRequest("list_tags", nil))
	require.NoError(t, err)

	var resp struct {
		Total int      `json:"total"`
		Tags  []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, []string{"#meeting", "#todo"}, resp.Tags)
}

func TestHandleListReminders(t *testing.T) {
	// The reminder in testLog is fixed at 2026-02-10; build a log with a
	// reminder relative to the wall clock instead so the window test holds.
	due := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	log := "## 2026-01-01 #todo @" + due + "\nShip the release\n"
	srv := newTestServer(t, log)

	result, err := srv.handleListReminders(context.Background(), callRequest("list_reminders", map[string]interface{}{
		"days": float64(7),
	}))
	require.NoError(t, err)

	var resp struct {
		Total     int                 `json:"total"`
		Reminders []searcher.Reminder `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, due, resp.Reminders[0].Due)
	assert.Equal(t, "Ship the release", resp.Reminders[0].Entry.Body)
}

func TestHandleListReminders_NoneDue(t *testing.T) {
	srv := newTestServer(t, "## 2026-01-01 @2020-01-01\nlong past\n")

	result, err := srv.handleListReminders(context.Background(), callRequest("list_reminders", nil))
	require.NoError(t, err)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Zero(t, resp.Total)
}

func TestParseWeightOverrides(t *testing.T) {
	o := parseWeightOverrides(map[string]interface{}{
		"tagExact":   float64(9),
		"dateMatch":  "not a number",
		"irrelevant": float64(3),
	})
	require.NotNil(t, o)
	require.NotNil(t, o.TagExact)
	assert.Equal(t, 9.0, *o.TagExact)
	assert.Nil(t, o.DateMatch)

	assert.Nil(t, parseWeightOverrides(nil))
	assert.Nil(t, parseWeightOverrides(map[string]interface{}{}))
	assert.Nil(t, parseWeightOverrides(map[string]interface{}{"bogus": float64(1)}))
	assert.Nil(t, parseWeightOverrides("weights"))
}
