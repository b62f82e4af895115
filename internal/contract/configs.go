package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/devlens/devlens/schema"
)

// Default values for configuration.
const (
	DefaultCommitLimit = 50
	MaxCommitLimit     = 500
	DefaultPrecision   = 1
)

// CacheTTL is how long a cached scoring result stays fresh. Profiles move
// slowly, so a day strikes a balance between API quota and staleness.
const CacheTTL = 24 * time.Hour

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	Username    string
	InputFile   string // Profile JSON file instead of the live API
	CommitsFile string // Commit JSON file instead of the live API
	CommitLimit int
	Token       string // Please use env var as this is plaintext

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	RefreshCache   bool

	UseColors bool // Enable colored labels in table output
	LogLevel  string
}

// Clone returns a copy of the configuration. Handlers that override
// per-request fields work on a clone so the base config stays untouched.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	UsernameStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	InputFile      string `mapstructure:"input-file"`
	CommitsFile    string `mapstructure:"commits-file"`
	CommitLimit    int    `mapstructure:"commit-limit"`
	Token          string `mapstructure:"token"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RefreshCache   bool   `mapstructure:"refresh-cache"`
	Color          string `mapstructure:"color"`
	LogLevel       string `mapstructure:"log-level"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Username = strings.TrimSpace(input.UsernameStr)
	cfg.InputFile = input.InputFile
	cfg.CommitsFile = input.CommitsFile
	cfg.Token = input.Token
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.RefreshCache = input.RefreshCache

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. CommitLimit Validation ---
	if input.CommitLimit < 0 || input.CommitLimit > MaxCommitLimit {
		return fmt.Errorf("commit-limit must be between 0 and %d (received %d)", MaxCommitLimit, input.CommitLimit)
	}
	cfg.CommitLimit = input.CommitLimit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet", input.Output)
	}

	// --- 3. Log Level Validation ---
	level := strings.ToLower(strings.TrimSpace(input.LogLevel))
	if level == "" {
		level = "info"
	}
	switch level {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = level
	default:
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
