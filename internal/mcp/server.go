package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/memolab/memlog-mcp/internal/config"
	"github.com/memolab/memlog-mcp/internal/searcher"
	"github.com/memolab/memlog-mcp/internal/store"
	"github.com/memolab/memlog-mcp/pkg/types"
)

const (
	// ServerName is the MCP server name
	ServerName = "memlog-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	cfg      *config.Config
	store    *store.Store
	searcher *searcher.Searcher
}

// NewServer creates a new MCP server instance wired to the configured
// memory log. When no log location is configured the server still starts;
// tool calls then fail individually with ErrorCodeNotConfigured so MCP
// clients get a structured error instead of a dead transport.
func NewServer(cfg *config.Config) (*Server, error) {
	st, err := cfg.OpenStore()
	if errors.Is(err, types.ErrNoNotesPath) {
		st = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to open memory log: %w", err)
	}

	srch := searcher.New(searcher.Options{
		Synonyms:     cfg.Synonyms,
		Weights:      cfg.Weights,
		MaxResults:   cfg.MaxResults,
		RecencyBonus: cfg.RecencyEnabled(),
	})

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		cfg:      cfg,
		store:    st,
		searcher: srch,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// CallTool dispatches a tool request in-process, bypassing the stdio
// transport. Used by embedding hosts and integration tests.
func (s *Server) CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch request.Params.Name {
	case "search_memory":
		return s.handleSearchMemory(ctx, request)
	case "add_memory":
		return s.handleAddMemory(ctx, request)
	case "find_entries":
		return s.handleFindEntries(ctx, request)
	case "list_recent":
		return s.handleListRecent(ctx, request)
	case "list_tags":
		return s.handleListTags(ctx, request)
	case "list_reminders":
		return s.handleListReminders(ctx, request)
	default:
		return nil, newMCPError(ErrorCodeInvalidParams, fmt.Sprintf("unknown tool %q", request.Params.Name), nil)
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchMemoryTool(), s.handleSearchMemory)
	s.mcp.AddTool(addMemoryTool(), s.handleAddMemory)
	s.mcp.AddTool(findEntriesTool(), s.handleFindEntries)
	s.mcp.AddTool(listRecentTool(), s.handleListRecent)
	s.mcp.AddTool(listTagsTool(), s.handleListTags)
	s.mcp.AddTool(listRemindersTool(), s.handleListReminders)
}
