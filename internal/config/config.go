package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/dompet/internal/common"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Viper keys.
const (
	KeyDatabasePath   = "database.path"
	KeyStorageBackend = "storage.backend"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeySummaryMonths  = "summary.months"
)

const defaultSummaryMonths = 6

// Config is the resolved application configuration.
type Config struct {
	DatabasePath   string
	StorageBackend string
	LogLevel       string
	LogFormat      string
	SummaryMonths  int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath())
	v.SetDefault(KeyStorageBackend, BackendSQLite)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeySummaryMonths, defaultSummaryMonths)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		DatabasePath:   ExpandPath(v.GetString(KeyDatabasePath)),
		StorageBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend))),
		LogLevel:       strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:      strings.ToLower(v.GetString(KeyLogFormat)),
		SummaryMonths:  v.GetInt(KeySummaryMonths),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	if !slices.Contains([]string{BackendSQLite, BackendMemory}, c.StorageBackend) {
		return fmt.Errorf("%w: %s must be %q or %q, got %q",
			common.ErrInvalidConfig, KeyStorageBackend, BackendSQLite, BackendMemory, c.StorageBackend)
	}
	if c.StorageBackend == BackendSQLite && c.DatabasePath == "" {
		return fmt.Errorf("%w: %s is required for the sqlite backend", common.ErrInvalidConfig, KeyDatabasePath)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyLogLevel, err)
	}
	if !slices.Contains([]string{"", "console", "json"}, c.LogFormat) {
		return fmt.Errorf("%w: %s must be console or json, got %q", common.ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	if c.SummaryMonths < 1 || c.SummaryMonths > 24 {
		return fmt.Errorf("%w: %s must be between 1 and 24, got %d", common.ErrInvalidConfig, KeySummaryMonths, c.SummaryMonths)
	}
	return nil
}
