package wikitree

import (
	"log/slog"
	"strings"
	"time"

	"github.com/helixml/wikitree/application/service"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL       string
	logger      *slog.Logger
	importerOps []service.ImporterOption
	pool        *poolConfig
}

type poolConfig struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores pages in the SQLite database at path.
// Use ":memory:" for a throwaway database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres stores pages in PostgreSQL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL accepts either sqlite:///path or postgres:// URLs.
// A bare path is treated as a SQLite file.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		if strings.Contains(url, "://") {
			c.dbURL = url
			return
		}
		c.dbURL = "sqlite:///" + url
	}
}

// WithLogger sets the logger used by every service.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithUUIDOwners makes imports reject owner identifiers that are not UUIDs.
func WithUUIDOwners() Option {
	return func(c *clientConfig) {
		c.importerOps = append(c.importerOps, service.WithUUIDOwners())
	}
}

// WithConnectionPool sizes the PostgreSQL connection pool. SQLite always
// uses a single connection and ignores it.
func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(c *clientConfig) {
		c.pool = &poolConfig{maxOpen: maxOpen, maxIdle: maxIdle, maxLifetime: maxLifetime}
	}
}
