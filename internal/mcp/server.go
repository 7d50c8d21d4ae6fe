// Package mcp exposes page trees to assistants over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/domain/tree"
	"github.com/helixml/wikitree/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Navigator provides the tree views served as tools.
type Navigator interface {
	Render(ctx context.Context, ownerID, viewerID string) (tree.Navigation, error)
	RenderForest(ctx context.Context, viewerID string) ([]service.OwnerNavigation, error)
	Ordered(ctx context.Context, ownerID, viewerID string, limit int) ([]page.Page, error)
	Recent(ctx context.Context, viewerID string, limit int) ([]page.Page, error)
}

// Option configures a Server.
type Option func(*Server)

// WithViewer makes every tool answer as viewerID. Without it tools answer
// for the viewer carried by the request context (see service.WithViewer),
// and an anonymous caller sees only public pages.
func WithViewer(viewerID string) Option {
	return func(s *Server) { s.viewer = viewerID }
}

// WithRecentLimit sets the default limit of the recent_pages tool.
func WithRecentLimit(n int) Option {
	return func(s *Server) { s.recentLimit = n }
}

// Server wraps the MCP server with page tree tools.
type Server struct {
	mcpServer   *server.MCPServer
	nav         Navigator
	viewer      string
	recentLimit int
	logger      *slog.Logger
}

// NewServer creates a new MCP server.
func NewServer(nav Navigator, version string, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{nav: nav, recentLimit: config.DefaultRecentLimit, logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := server.NewMCPServer(
		"wikitree",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(mcp.NewTool("page_tree",
		mcp.WithDescription("Get the nested navigation tree of a user's wiki pages. Without an owner, returns one tree per user."),
		mcp.WithString("owner",
			mcp.Description("The owner whose tree to return"),
		),
	), s.handlePageTree)

	mcpServer.AddTool(mcp.NewTool("pages_in_tree_order",
		mcp.WithDescription("List a user's wiki pages depth first, in the order they appear in the navigation tree"),
		mcp.WithString("owner",
			mcp.Required(),
			mcp.Description("The owner whose pages to list"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of pages (default: no limit)"),
		),
	), s.handlePagesInTreeOrder)

	mcpServer.AddTool(mcp.NewTool("recent_pages",
		mcp.WithDescription("List the most recently updated wiki pages, grouped by owner in tree order"),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of pages"),
		),
	), s.handleRecentPages)
}

type pageResult struct {
	Owner       string `json:"owner"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Priority    int    `json:"priority"`
	Public      bool   `json:"public"`
	LastUpdated string `json:"last_updated"`
}

func pageResults(pages []page.Page) []pageResult {
	out := make([]pageResult, len(pages))
	for i, p := range pages {
		out[i] = pageResult{
			Owner:       p.OwnerID(),
			Slug:        p.Slug(),
			Title:       p.Title(),
			Priority:    p.Priority(),
			Public:      p.Public(),
			LastUpdated: p.LastUpdated().UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// viewerFor returns the fixed viewer, falling back to the request's.
func (s *Server) viewerFor(ctx context.Context) string {
	if s.viewer != "" {
		return s.viewer
	}
	return service.ViewerFrom(ctx)
}

func (s *Server) handlePageTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	owner := request.GetString("owner", "")
	if owner == "" {
		forest, err := s.nav.RenderForest(ctx, s.viewerFor(ctx))
		if err != nil {
			s.logger.Error("page tree failed", slog.Any("error", err))
			return mcp.NewToolResultError(fmt.Sprintf("page tree failed: %v", err)), nil
		}
		type ownerTree struct {
			Owner string `json:"owner"`
			Name  string `json:"name"`
			tree.Navigation
		}
		out := make([]ownerTree, len(forest))
		for i, on := range forest {
			out[i] = ownerTree{Owner: on.Owner.ID(), Name: on.Owner.Name(), Navigation: on.Navigation}
		}
		return jsonResult(out)
	}

	nav, err := s.nav.Render(ctx, owner, s.viewerFor(ctx))
	if err != nil {
		s.logger.Error("page tree failed", slog.String("owner", owner), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("page tree failed: %v", err)), nil
	}
	return jsonResult(nav)
}

func (s *Server) handlePagesInTreeOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	owner, err := request.RequireString("owner")
	if err != nil {
		return mcp.NewToolResultError("owner is required"), nil
	}

	pages, err := s.nav.Ordered(ctx, owner, s.viewerFor(ctx), request.GetInt("limit", tree.NoLimit))
	if err != nil {
		s.logger.Error("pages in tree order failed", slog.String("owner", owner), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("listing pages failed: %v", err)), nil
	}
	return jsonResult(pageResults(pages))
}

func (s *Server) handleRecentPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pages, err := s.nav.Recent(ctx, s.viewerFor(ctx), request.GetInt("limit", s.recentLimit))
	if err != nil {
		s.logger.Error("recent pages failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("listing recent pages failed: %v", err)), nil
	}
	return jsonResult(pageResults(pages))
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
