// Package mcp implements the Model Context Protocol (MCP) server for the
// memory log.
//
// The server exposes the log to AI assistants over stdio JSON-RPC:
//   - search_memory: relevance-ranked retrieval with match explanations
//   - add_memory: append a new dated, tagged entry
//   - find_entries: exact-substring scan by tag/date/keyword
//   - list_recent: most recently dated entries
//   - list_tags: every distinct tag, sorted
//   - list_reminders: entries due within the next N days
//
// # Tool: search_memory
//
//	Request:
//	{
//	  "name": "search_memory",
//	  "arguments": {
//	    "query": "経費 2026-02",
//	    "limit": 10,
//	    "include_recency_bonus": true,
//	    "synonyms": ["経費:立替"],
//	    "weights": {"tagExact": 8}
//	  }
//	}
//
//	Response (tool text content, JSON):
//	{
//	  "query": "経費 2026-02",
//	  "queryTokens": ["経費", "2026-02"],
//	  "expandedTokens": ["経費", "精算", "交通費", "出張費", "立替", "2026-02"],
//	  "totalMatches": 3,
//	  "results": [
//	    {
//	      "score": 17,
//	      "matchedTokenCount": 2,
//	      "reasons": ["exact tag #経費", "month contains \"2026-02\"", ...],
//	      "entry": {"timestamp": "2026-02-01", "tags": ["#経費"], "body": "..."}
//	    }
//	  ]
//	}
//
// # Error Handling
//
// Handlers return JSON-RPC errors with structured data:
//   - -32602: invalid params (missing/invalid arguments)
//   - -32603: internal error (filesystem)
//   - -32001: no memory log location configured
//   - -32004: query is empty. Distinct from a query that matched nothing,
//     which is a normal result with totalMatches 0
//
// # Logging
//
// The server logs to stderr; stdout is reserved for the MCP protocol.
package mcp
