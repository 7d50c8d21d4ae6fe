package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/helixml/wikitree"
	"github.com/helixml/wikitree/infrastructure/api/middleware"
	v1 "github.com/helixml/wikitree/infrastructure/api/v1"
	"github.com/helixml/wikitree/internal/config"
	"github.com/helixml/wikitree/internal/log"
	mcpinternal "github.com/helixml/wikitree/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultPageBase is the front end path rendered HTML trees link into.
const DefaultPageBase = "/wiki"

// APIServer serves the v1 API and the MCP endpoint for a wikitree Client.
type APIServer struct {
	client  *wikitree.Client
	cfg     config.AppConfig
	version string
	logger  *log.Logger
	server  *Server
	router  chi.Router
}

// NewAPIServer creates a new APIServer. cfg supplies the default list limits
// and CORS origins.
func NewAPIServer(client *wikitree.Client, cfg config.AppConfig, version string) *APIServer {
	return &APIServer{
		client:  client,
		cfg:     cfg,
		version: version,
		logger:  log.FromSlog(client.Logger()),
	}
}

func (a *APIServer) mountRoutes(router chi.Router) {
	nav := a.client.Navigation
	links := v1.NewLinks(DefaultPageBase)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "version": a.version})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))
		r.Mount("/users", v1.NewUsersRouter(nav, links, a.cfg.NavLimit(), a.logger).Routes())
		v1.NewForestRouter(nav, links, a.cfg.RecentLimit(), a.logger).Register(r)
	})

	mcpSrv := mcpinternal.NewServer(nav, a.version, a.logger.Slog())
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

// Handler returns the fully routed handler, including the middleware stack,
// for use with httptest or a custom server.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		srv := NewServer("", a.logger, WithCORSOrigins(a.cfg.CORSOrigins()))
		a.mountRoutes(srv.Router())
		a.router = srv.Router()
	}
	return a.router
}

// ListenAndServe starts the HTTP server on addr.
func (a *APIServer) ListenAndServe(addr string) error {
	a.server = NewServer(addr, a.logger, WithCORSOrigins(a.cfg.CORSOrigins()))
	a.mountRoutes(a.server.Router())
	return a.server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}
