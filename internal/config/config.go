// Package config holds the process-wide settings shared by the CLI
// commands. Values merge from defaults, an optional config file,
// PRODWEEKLY_* environment variables, and command-line flags, in that
// order. Domain tuning (column mode, match thresholds) is read once here
// and handed to the packages that use it; nothing consults viper after
// Load.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/prodweekly/prodweekly/internal/compare"
	"github.com/prodweekly/prodweekly/internal/gazetteer"
	"github.com/prodweekly/prodweekly/internal/layout"
)

const (
	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Environment variable prefix, e.g. PRODWEEKLY_OUT_DIR
	EnvPrefix = "PRODWEEKLY"

	// Base name of the optional config file, searched in the working
	// directory with any extension viper understands
	configName = "prodweekly"
)

// Config carries everything the commands need to run.
type Config struct {
	// Output configuration
	OutDir string

	// Layout configuration
	Columns   layout.ColumnMode
	ColMargin float64

	// Matching thresholds on the 0..100 similarity scale
	Confident    int
	RenameFloor  int
	CityMinScore int

	// Application configuration
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with the production defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	lay := layout.DefaultConfig()
	th := compare.DefaultThresholds()

	return &Config{
		OutDir:       currentDir,
		Columns:      lay.Columns,
		ColMargin:    lay.ColMargin,
		Confident:    th.Confident,
		RenameFloor:  th.RenameFloor,
		CityMinScore: gazetteer.DefaultMinScore,
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// Setup wires viper to the PRODWEEKLY_ environment and the optional
// prodweekly config file, and seeds every key with its default. Called
// once before any command loads its configuration.
func Setup() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cfg := DefaultConfig()
	viper.SetDefault("out-dir", cfg.OutDir)
	viper.SetDefault("columns", string(cfg.Columns))
	viper.SetDefault("col-margin", cfg.ColMargin)
	viper.SetDefault("confident", cfg.Confident)
	viper.SetDefault("rename-floor", cfg.RenameFloor)
	viper.SetDefault("city-min-score", cfg.CityMinScore)
	viper.SetDefault("log-level", cfg.LogLevel)
	viper.SetDefault("max-file-size", cfg.MaxFileSize)

	viper.SetConfigName(configName)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// Bind binds the named flags from fs into viper so they override the
// environment and config file. Names not defined on fs are skipped, which
// lets commands share one bind list.
func Bind(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil {
			_ = viper.BindPFlag(name, f)
		}
	}
}

// Load populates a configuration from viper and validates it.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	cfg.OutDir = viper.GetString("out-dir")
	cfg.Columns = layout.ColumnMode(viper.GetString("columns"))
	cfg.ColMargin = viper.GetFloat64("col-margin")
	cfg.Confident = viper.GetInt("confident")
	cfg.RenameFloor = viper.GetInt("rename-floor")
	cfg.CityMinScore = viper.GetInt("city-min-score")
	cfg.LogLevel = viper.GetString("log-level")
	cfg.MaxFileSize = viper.GetInt64("max-file-size")

	if cfg.OutDir != "" {
		if expandedPath, err := filepath.Abs(cfg.OutDir); err == nil {
			cfg.OutDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. It does not touch the
// filesystem; commands create the output directory when they first write.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("output directory cannot be empty")
	}

	if !c.Columns.Valid() {
		return fmt.Errorf("invalid column mode: %s (must be one of: auto, single, double)", c.Columns)
	}

	if c.ColMargin < 0 {
		return errors.New("column margin cannot be negative")
	}

	if c.Confident < 1 || c.Confident > 100 {
		return errors.New("confident threshold must be between 1 and 100")
	}
	if c.RenameFloor < 1 || c.RenameFloor > 100 {
		return errors.New("rename floor must be between 1 and 100")
	}
	if c.RenameFloor > c.Confident {
		return errors.New("rename floor cannot exceed the confident threshold")
	}

	if c.CityMinScore < 1 || c.CityMinScore > 100 {
		return errors.New("city match score must be between 1 and 100")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Layout returns the segmenter configuration tuned by this config.
func (c *Config) Layout() layout.Config {
	lc := layout.DefaultConfig()
	lc.Columns = c.Columns
	lc.ColMargin = c.ColMargin
	return lc
}

// Thresholds returns the run-to-run comparison cut lines.
func (c *Config) Thresholds() compare.Thresholds {
	return compare.Thresholds{Confident: c.Confident, RenameFloor: c.RenameFloor}
}

// Gazetteer returns the city resolver tuning.
func (c *Config) Gazetteer() gazetteer.Config {
	return gazetteer.Config{MinScore: c.CityMinScore}
}

// SlogLevel maps the configured log level onto slog's scale.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{OutDir: %s, Columns: %s, Confident: %d, RenameFloor: %d, CityMinScore: %d, LogLevel: %s, MaxFileSize: %d}",
		c.OutDir, c.Columns, c.Confident, c.RenameFloor, c.CityMinScore, c.LogLevel, c.MaxFileSize)
}
