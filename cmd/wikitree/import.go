package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/helixml/wikitree"
	"github.com/helixml/wikitree/internal/log"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var (
		envFile    string
		uuidOwners bool
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import pages from a YAML file",
		Long: `Import owners and pages from a YAML document.

Reads from the named file, or from stdin when no file or "-" is given.
Pages that already exist for the same owner and slug are updated.

Example document:

  owners:
    - id: alice
      name: Alice
  pages:
    - owner: alice
      slug: programming/go
      title: Go
      priority: 1
      public: true`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}
			return runImport(cmd.Context(), envFile, uuidOwners, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")
	cmd.Flags().BoolVar(&uuidOwners, "uuid-owners", false, "Reject owner identifiers that are not UUIDs")

	return cmd
}

func runImport(ctx context.Context, envFile string, uuidOwners bool, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	slogger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel()).Slog()

	var opts []wikitree.Option
	if uuidOwners {
		opts = append(opts, wikitree.WithUUIDOwners())
	}
	client, err := openClient(cfg, slogger, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	result, err := client.Importer.Import(ctx, in)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	_, err = fmt.Fprintf(out, "imported %d owners and %d pages\n", result.Owners, result.Pages)
	return err
}
