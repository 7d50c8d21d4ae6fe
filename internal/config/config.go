// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultNavLimit    = 0
	DefaultRecentLimit = 20
	DefaultDBFile      = "wikitree.db"
	DefaultDBMaxIdle   = 2
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	host        string
	port        int
	dataDir     string
	dbURL       string
	logLevel    string
	logFormat   LogFormat
	navLimit    int
	recentLimit int
	corsOrigins []string
	dbPool      DBPool
}

// DBPool holds PostgreSQL connection pool limits. A zero MaxOpen leaves
// the driver's pool unconfigured.
type DBPool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// Configured reports whether pool limits were requested.
func (p DBPool) Configured() bool { return p.MaxOpen > 0 }

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wikitree"
	}
	return filepath.Join(home, ".wikitree")
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		dataDir:     dataDir,
		dbURL:       "sqlite:///" + filepath.Join(dataDir, DefaultDBFile),
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		navLimit:    DefaultNavLimit,
		recentLimit: DefaultRecentLimit,
		corsOrigins: []string{},
		dbPool:      DBPool{MaxIdle: DefaultDBMaxIdle},
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// NavLimit returns the default cap on tree-ordered page listings.
// Zero means unbounded.
func (c AppConfig) NavLimit() int { return c.navLimit }

// RecentLimit returns the default number of recently updated pages to list.
func (c AppConfig) RecentLimit() int { return c.recentLimit }

// CORSOrigins returns the origins allowed to call the HTTP API.
func (c AppConfig) CORSOrigins() []string {
	origins := make([]string, len(c.corsOrigins))
	copy(origins, c.corsOrigins)
	return origins
}

// DBPool returns the database connection pool limits.
func (c AppConfig) DBPool() DBPool { return c.dbPool }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Keep the default sqlite file inside the data dir.
		if c.dbURL == "" || strings.HasSuffix(c.dbURL, DefaultDBFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithNavLimit sets the default tree-ordered listing cap.
func WithNavLimit(n int) AppConfigOption {
	return func(c *AppConfig) { c.navLimit = n }
}

// WithRecentLimit sets the default recent page count.
func WithRecentLimit(n int) AppConfigOption {
	return func(c *AppConfig) { c.recentLimit = n }
}

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		c.corsOrigins = make([]string, len(origins))
		copy(c.corsOrigins, origins)
	}
}

// WithDBPool sets the database connection pool limits.
func WithDBPool(pool DBPool) AppConfigOption {
	return func(c *AppConfig) { c.dbPool = pool }
}

// NewAppConfigWithOptions creates an AppConfig with options applied over defaults.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
