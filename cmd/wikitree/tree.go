package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/wikitree/domain/tree"
	"github.com/helixml/wikitree/infrastructure/markup"
	"github.com/helixml/wikitree/internal/log"
	"github.com/spf13/cobra"
)

type treeOptions struct {
	envFile string
	viewer  string
	flat    bool
	limit   int
	html    bool
	json    bool
	prefix  string
}

func treeCmd() *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree <owner>",
		Short: "Print an owner's page tree",
		Long: `Print the navigation tree of one owner's pages.

Private pages are only shown when --viewer names the owner. With --flat the
pages are listed one per line in tree order instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runTree(ctx, args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "Path to .env file")
	cmd.Flags().StringVar(&opts.viewer, "viewer", "", "User viewing the tree")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "List pages in tree order")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum pages to list with --flat, 0 for all")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the tree as an HTML list")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the tree as JSON")
	cmd.Flags().StringVar(&opts.prefix, "link-prefix", "/wiki", "Path prefix for links in --html output")
	cmd.MarkFlagsMutuallyExclusive("flat", "html", "json")

	return cmd
}

func runTree(ctx context.Context, owner string, opts treeOptions, out io.Writer) error {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}
	slogger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel()).Slog()

	client, err := openClient(cfg, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close client", slog.Any("error", err))
		}
	}()

	if opts.flat {
		pages, err := client.Navigation.Ordered(ctx, owner, opts.viewer, opts.limit)
		if err != nil {
			return err
		}
		for _, p := range pages {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", p.Slug(), p.Title()); err != nil {
				return err
			}
		}
		return nil
	}

	nav, err := client.Navigation.Render(ctx, owner, opts.viewer)
	if err != nil {
		return err
	}

	switch {
	case opts.html:
		renderer := markup.NewRenderer(markup.WithLinkPrefix(strings.TrimSuffix(opts.prefix, "/") + "/" + owner))
		if err := renderer.Render(out, nav); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case opts.json:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(nav)
	default:
		return writeOutline(out, nav.Entries, 0)
	}
}

// writeOutline prints entries as an indented outline. Folders end in a
// slash.
func writeOutline(w io.Writer, entries []tree.Entry, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		line := indent + e.Title
		if e.Folder() {
			line += "/"
		} else {
			line += " (" + e.Path + ")"
		}
		if e.Private {
			line += " [private]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writeOutline(w, e.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}
