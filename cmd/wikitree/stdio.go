package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/helixml/wikitree/internal/log"
	"github.com/helixml/wikitree/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var (
		envFile string
		viewer  string
	)

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants browse wiki page trees. Without --viewer the tools
only see public pages. Logs are written to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile, viewer)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&viewer, "viewer", "", "User the tools answer as")

	return cmd
}

func runStdio(envFile, viewer string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// stdout carries the protocol.
	slogger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel()).Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := openClient(cfg, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	srv := mcp.NewServer(client.Navigation, version, slogger,
		mcp.WithViewer(viewer),
		mcp.WithRecentLimit(cfg.RecentLimit()),
	)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
