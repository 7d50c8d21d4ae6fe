package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.wikitree
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/wikitree.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// NavLimit caps tree-ordered page listings when no limit is requested.
	// Env: NAV_LIMIT (default: 0, unbounded)
	NavLimit int `envconfig:"NAV_LIMIT" default:"0"`

	// RecentLimit is the default number of recently updated pages.
	// Env: RECENT_LIMIT (default: 20)
	RecentLimit int `envconfig:"RECENT_LIMIT" default:"20"`

	// CORSOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ORIGINS
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// DBMaxOpenConns caps open PostgreSQL connections. Zero leaves the pool
	// at the driver defaults.
	// Env: DB_MAX_OPEN_CONNS (default: 0)
	DBMaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`

	// DBMaxIdleConns caps idle PostgreSQL connections.
	// Env: DB_MAX_IDLE_CONNS (default: 2)
	DBMaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// DBConnMaxLifetime recycles connections older than this, e.g. "30m".
	// Env: DB_CONN_MAX_LIFETIME (default: 0, never)
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"0"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "WIKITREE" would require WIKITREE_DB_URL instead of DB_URL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.NavLimit > 0 {
		cfg = applyOption(cfg, WithNavLimit(e.NavLimit))
	}
	if e.RecentLimit > 0 {
		cfg = applyOption(cfg, WithRecentLimit(e.RecentLimit))
	}
	if e.CORSOrigins != "" {
		cfg = applyOption(cfg, WithCORSOrigins(ParseList(e.CORSOrigins)))
	}
	cfg = applyOption(cfg, WithDBPool(DBPool{
		MaxOpen:     e.DBMaxOpenConns,
		MaxIdle:     e.DBMaxIdleConns,
		MaxLifetime: e.DBConnMaxLifetime,
	}))

	return cfg
}

func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// ParseList splits a comma-separated value, trimming blanks.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
