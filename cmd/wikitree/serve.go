package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/helixml/wikitree/infrastructure/api"
	"github.com/helixml/wikitree/internal/config"
	"github.com/helixml/wikitree/internal/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the wikitree HTTP server",
		Long: `Start the wikitree HTTP server.

The server exposes page trees as JSON and HTML under /api/v1 and the same
views as MCP tools under /mcp.

Routes:
  GET /health
  GET /api/v1/users/{owner}/tree[.html]
  GET /api/v1/users/{owner}/pages?limit=N
  GET /api/v1/users/{owner}/pages/{slug}/context
  GET /api/v1/tree[.html]
  GET /api/v1/recent?limit=N

Requests are answered for the user named in the X-Viewer-ID header.

Configuration is loaded from environment variables and an optional .env file.

Environment Variables:
  HOST                  Server host to bind to (default: 0.0.0.0)
  PORT                  Server port to listen on (default: 8080)
  DATA_DIR              Data directory (default: ~/.wikitree)
  DB_URL                Database URL (default: sqlite:///{data_dir}/wikitree.db)
  LOG_LEVEL             Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT            Log format: pretty, json (default: pretty)
  NAV_LIMIT             Default cap on tree-ordered page lists, 0 for none (default: 0)
  RECENT_LIMIT          Default number of recently updated pages (default: 20)
  CORS_ORIGINS          Comma-separated origins allowed to call the API
  DB_MAX_OPEN_CONNS     PostgreSQL pool size, 0 for driver default (default: 0)
  DB_MAX_IDLE_CONNS     PostgreSQL idle connections (default: 2)
  DB_CONN_MAX_LIFETIME  Recycle connections after this duration, e.g. 30m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&host, "host", "", "Server host (overrides HOST env var)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port (overrides PORT env var)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port)

	slogger := log.Configure(cfg).Slog()

	client, err := openClient(cfg, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	apiServer := api.NewAPIServer(client, cfg, version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		slogger.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiServer.Shutdown(ctx); err != nil {
			slogger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	slogger.Info("starting server",
		slog.String("addr", cfg.Addr()),
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)
	if err := apiServer.ListenAndServe(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
