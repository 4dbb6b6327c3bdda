package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// weightProperties describes the seven named weight overrides accepted by
// search_memory. Out-of-range values are clamped, not rejected.
func weightProperties() map[string]interface{} {
	props := make(map[string]interface{}, 7)
	for name, desc := range map[string]string{
		"tagExact":        "Weight for an exact tag match (default 6)",
		"dateMatch":       "Weight for a timestamp substring match (default 4)",
		"monthMatch":      "Weight for a YYYY-MM prefix match (default 3)",
		"tagPartial":      "Weight for a partial tag match (default 3)",
		"contentMatch":    "Weight for a body substring match (default 2)",
		"multiTokenBonus": "Bonus when two or more tokens match (default 3)",
		"allTokensBonus":  "Bonus when every token matches (default 4)",
	} {
		props[name] = map[string]interface{}{
			"type":        "number",
			"description": desc,
			"minimum":     0,
			"maximum":     20,
		}
	}
	return props
}

// searchMemoryTool returns the tool definition for search_memory
func searchMemoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_memory",
		Description: "Search the memory log by approximate intent: tokenized, synonym-expanded, multi-signal scored, ranked, with human-readable match reasons",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query (keywords, #tags, dates, month prefixes)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-200)",
					"default":     10,
					"minimum":     1,
					"maximum":     200,
				},
				"include_recency_bonus": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, boost recently dated entries",
					"default":     true,
				},
				"synonyms": map[string]interface{}{
					"type":        "array",
					"description": "Extra synonym rules in \"key:syn1,syn2\" form, merged into the built-in table",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"weights": map[string]interface{}{
					"type":        "object",
					"description": "Partial override of the scoring weights",
					"properties":  weightProperties(),
				},
			},
			Required: []string{"query"},
		},
	}
}

// addMemoryTool returns the tool definition for add_memory
func addMemoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "add_memory",
		Description: "Append a new dated entry to the memory log",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Entry body text",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"description": "Tags for the entry, with or without the leading #",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"reminder_date": map[string]interface{}{
					"type":        "string",
					"description": "Optional due date in YYYY-MM-DD form",
				},
			},
			Required: []string{"content"},
		},
	}
}

// findEntriesTool returns the tool definition for find_entries
func findEntriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_entries",
		Description: "Exact-substring scan of the memory log filtered by optional tag, date, and keyword",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"tag": map[string]interface{}{
					"type":        "string",
					"description": "Only entries carrying this tag exactly",
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Only entries whose timestamp contains this string (e.g. \"2026-02\")",
				},
				"keyword": map[string]interface{}{
					"type":        "string",
					"description": "Only entries whose body contains this string (case-insensitive)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of entries to return (1-200)",
					"default":     20,
					"minimum":     1,
					"maximum":     200,
				},
			},
		},
	}
}

// listRecentTool returns the tool definition for list_recent
func listRecentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_recent",
		Description: "List the most recently dated entries in the memory log",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Number of entries to return (1-200)",
					"default":     10,
					"minimum":     1,
					"maximum":     200,
				},
			},
		},
	}
}

// listTagsTool returns the tool definition for list_tags
func listTagsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_tags",
		Description: "List every distinct tag used in the memory log, sorted",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// listRemindersTool returns the tool definition for list_reminders
func listRemindersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_reminders",
		Description: "List entries with reminder dates due within the next N days",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"days": map[string]interface{}{
					"type":        "integer",
					"description": "Horizon in days from today, inclusive",
					"default":     7,
					"minimum":     0,
				},
			},
		},
	}
}
