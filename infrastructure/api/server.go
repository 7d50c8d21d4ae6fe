// Package api serves page trees over HTTP and MCP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/helixml/wikitree/infrastructure/api/middleware"
	"github.com/helixml/wikitree/internal/log"
)

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithCORSOrigins allows cross-origin reads from origins. No CORS headers
// are sent when the list is empty.
func WithCORSOrigins(origins []string) ServerOption {
	return func(s *Server) { s.corsOrigins = origins }
}

// Server represents the HTTP server.
type Server struct {
	router      chi.Router
	httpServer  *http.Server
	logger      *log.Logger
	addr        string
	corsOrigins []string
}

// NewServer creates a new Server with the standard middleware stack.
func NewServer(addr string, logger *log.Logger, opts ...ServerOption) *Server {
	s := &Server{addr: addr, logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()
	// Timeout is applied per route group; the streaming MCP endpoint cannot
	// sit behind it.
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.CorrelationID)
	router.Use(middleware.Viewer)
	router.Use(middleware.Logging(logger))
	router.Use(chimiddleware.Recoverer)
	if len(s.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.ViewerIDHeader, middleware.CorrelationIDHeader},
			ExposedHeaders: []string{middleware.CorrelationIDHeader},
			MaxAge:         300,
		}))
	}

	s.router = router
	return s
}

// Router returns the chi router for registering routes.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Slog().Info("starting HTTP server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Slog().Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.addr
}
