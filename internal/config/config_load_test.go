package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/prodweekly/prodweekly/internal/layout"
)

// resetViper clears the shared viper instance before and after a test so
// cases cannot leak defaults or bound flags into each other.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Columns != layout.ColumnsAuto {
		t.Errorf("Load() Columns = %v, want %v", cfg.Columns, layout.ColumnsAuto)
	}
	if cfg.Confident != 90 {
		t.Errorf("Load() Confident = %v, want 90", cfg.Confident)
	}
	if cfg.RenameFloor != 50 {
		t.Errorf("Load() RenameFloor = %v, want 50", cfg.RenameFloor)
	}
	if cfg.CityMinScore != 90 {
		t.Errorf("Load() CityMinScore = %v, want 90", cfg.CityMinScore)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Load() MaxFileSize = %v, want %v", cfg.MaxFileSize, 100*1024*1024)
	}
	if cfg.OutDir == "" {
		t.Error("Load() OutDir should not be empty")
	}
	if !filepath.IsAbs(cfg.OutDir) {
		t.Errorf("Load() OutDir should be absolute, got %s", cfg.OutDir)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	resetViper(t)

	t.Setenv("PRODWEEKLY_OUT_DIR", "/tmp/weekly-out")
	t.Setenv("PRODWEEKLY_COLUMNS", "double")
	t.Setenv("PRODWEEKLY_CONFIDENT", "95")
	t.Setenv("PRODWEEKLY_RENAME_FLOOR", "60")
	t.Setenv("PRODWEEKLY_CITY_MIN_SCORE", "80")
	t.Setenv("PRODWEEKLY_LOG_LEVEL", "warn")
	t.Setenv("PRODWEEKLY_MAX_FILE_SIZE", "200000000")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.OutDir != "/tmp/weekly-out" {
		t.Errorf("Load() OutDir = %v, want /tmp/weekly-out", cfg.OutDir)
	}
	if cfg.Columns != layout.ColumnsDouble {
		t.Errorf("Load() Columns = %v, want double", cfg.Columns)
	}
	if cfg.Confident != 95 {
		t.Errorf("Load() Confident = %v, want 95", cfg.Confident)
	}
	if cfg.RenameFloor != 60 {
		t.Errorf("Load() RenameFloor = %v, want 60", cfg.RenameFloor)
	}
	if cfg.CityMinScore != 80 {
		t.Errorf("Load() CityMinScore = %v, want 80", cfg.CityMinScore)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.MaxFileSize != 200000000 {
		t.Errorf("Load() MaxFileSize = %v, want 200000000", cfg.MaxFileSize)
	}
}

func TestLoad_FlagOverridesEnvironment(t *testing.T) {
	resetViper(t)

	t.Setenv("PRODWEEKLY_COLUMNS", "double")
	t.Setenv("PRODWEEKLY_LOG_LEVEL", "warn")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	fs := pflag.NewFlagSet("extract", pflag.ContinueOnError)
	fs.String("columns", string(layout.ColumnsAuto), "")
	fs.String("log-level", DefaultLogLevel, "")
	if err := fs.Parse([]string{"--columns=single"}); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	// Binding names absent from the flag set is harmless
	Bind(fs, "columns", "log-level", "out-dir")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	// The parsed flag beats the environment
	if cfg.Columns != layout.ColumnsSingle {
		t.Errorf("Load() Columns = %v, want single (flag should override env)", cfg.Columns)
	}
	// An unchanged flag leaves the environment value visible
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want warn (env should survive unset flag)", cfg.LogLevel)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	body := "confident: 80\nrename-floor: 45\nlog-level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "prodweekly.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Chdir(dir)

	// The environment still beats the file
	t.Setenv("PRODWEEKLY_RENAME_FLOOR", "55")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Confident != 80 {
		t.Errorf("Load() Confident = %v, want 80 (from config file)", cfg.Confident)
	}
	if cfg.RenameFloor != 55 {
		t.Errorf("Load() RenameFloor = %v, want 55 (env should override file)", cfg.RenameFloor)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Load() LogLevel = %v, want debug (from config file)", cfg.LogLevel)
	}
}

func TestSetup_MalformedConfigFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "prodweekly.yaml"), []byte("{{not yaml"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Chdir(dir)

	err := Setup()
	if err == nil {
		t.Fatal("Setup() expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), "read config file") {
		t.Errorf("Setup() error = %v, want error about reading the config file", err)
	}
}

func TestLoad_InvalidColumns(t *testing.T) {
	resetViper(t)

	t.Setenv("PRODWEEKLY_COLUMNS", "triple")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid column mode")
	}
	if !strings.Contains(err.Error(), "invalid column mode") {
		t.Errorf("Load() error = %v, want error about invalid column mode", err)
	}
}

func TestLoad_InvalidThresholds(t *testing.T) {
	resetViper(t)

	// Floor above the confident cut line is rejected
	t.Setenv("PRODWEEKLY_RENAME_FLOOR", "95")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for rename floor above confident threshold")
	}
	if !strings.Contains(err.Error(), "rename floor cannot exceed") {
		t.Errorf("Load() error = %v, want error about rename floor", err)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	resetViper(t)

	t.Setenv("PRODWEEKLY_LOG_LEVEL", "verbose")

	if err := Setup(); err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("Load() error = %v, want error about invalid log level", err)
	}
}
