// Package main is the entry point for the wikitree CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/helixml/wikitree"
	"github.com/helixml/wikitree/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wikitree",
		Short:        "Wiki page tree server",
		Long:         `wikitree builds ordered navigation trees from slash-delimited wiki page slugs and serves them over HTTP and MCP.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(treeCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openClient prepares the data directory and opens the configured store.
func openClient(cfg config.AppConfig, logger *slog.Logger, opts ...wikitree.Option) (*wikitree.Client, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	base := []wikitree.Option{
		wikitree.WithDatabaseURL(cfg.DBURL()),
		wikitree.WithLogger(logger),
	}
	if pool := cfg.DBPool(); pool.Configured() {
		base = append(base, wikitree.WithConnectionPool(pool.MaxOpen, pool.MaxIdle, pool.MaxLifetime))
	}
	opts = append(base, opts...)

	client, err := wikitree.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}
