// Package wikitree builds navigation trees for wikis whose pages are
// identified by slash-delimited slugs.
//
// A Client opens the page store and exposes the navigation and import
// services:
//
//	client, err := wikitree.New(wikitree.WithSQLite("wiki.db"))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	nav, err := client.Navigation.Render(ctx, ownerID, viewerID)
package wikitree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/helixml/wikitree/application/service"
	"github.com/helixml/wikitree/domain/page"
	"github.com/helixml/wikitree/infrastructure/persistence"
	"github.com/helixml/wikitree/internal/database"
)

// Client errors.
var (
	ErrNoDatabase   = errors.New("wikitree: no database configured")
	ErrClientClosed = errors.New("wikitree: client is closed")
)

// Client is the entry point for embedding wikitree.
type Client struct {
	Navigation *service.Navigation
	Importer   *service.Importer
	Pages      page.Store
	Owners     page.OwnerStore

	db     database.Database
	logger *slog.Logger
	closed atomic.Bool
}

// New opens the configured database, migrates it and wires the services.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.NewDatabase(context.Background(), cfg.dbURL, database.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.pool != nil && !db.IsSQLite() {
		if err := db.ConfigurePool(cfg.pool.maxOpen, cfg.pool.maxIdle, cfg.pool.maxLifetime); err != nil {
			return nil, errors.Join(err, db.Close())
		}
	}
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	pages := persistence.NewPageStore(db)
	owners := persistence.NewOwnerStore(db)

	return &Client{
		Navigation: service.NewNavigation(pages, owners, logger),
		Importer:   service.NewImporter(pages, owners, db, logger, cfg.importerOps...),
		Pages:      pages,
		Owners:     owners,
		db:         db,
		logger:     logger,
	}, nil
}

// Close releases the database connection. Closing twice returns
// ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	return c.db.Close()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
