// Package pipeline assembles the extraction and reconciliation stages into
// the flows the CLI runs: extract an issue into a run folder, compare two
// runs, and compare a run against the curated master tables.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prodweekly/prodweekly/internal/compare"
	"github.com/prodweekly/prodweekly/internal/config"
	"github.com/prodweekly/prodweekly/internal/export"
	"github.com/prodweekly/prodweekly/internal/extract"
	"github.com/prodweekly/prodweekly/internal/gazetteer"
	"github.com/prodweekly/prodweekly/internal/layout"
	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/pdf"
	"github.com/prodweekly/prodweekly/internal/records"
)

// Service owns the assembled pipeline stages. Lookup tables load once at
// construction and are read-only afterwards, so one Service can run any
// number of flows.
type Service struct {
	cfg       *config.Config
	log       *slog.Logger
	tables    extract.Tables
	geo       *location.Tables
	builder   *extract.Builder
	seg       *layout.Segmenter
	reader    *pdf.Reader
	validator *pdf.Validator
	engine    *compare.Engine
}

// New assembles a Service from the configuration. A nil logger falls back
// to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	gz, err := gazetteer.NewWithConfig(cfg.Gazetteer())
	if err != nil {
		return nil, fmt.Errorf("load gazetteer: %w", err)
	}

	tables := extract.DefaultTables()
	geo := location.DefaultTables()

	return &Service{
		cfg:       cfg,
		log:       logger,
		tables:    tables,
		geo:       geo,
		builder:   extract.NewBuilder(tables, location.NewParser(geo, gz), nil),
		seg:       layout.NewSegmenter(cfg.Layout()),
		reader:    pdf.NewReader(cfg.MaxFileSize),
		validator: pdf.NewValidator(cfg.MaxFileSize),
		engine:    compare.NewEngine(cfg.Thresholds()),
	}, nil
}

// resolveRun accepts either a run directory or a FullSchema CSV path. For
// a CSV path the baseline list sitting next to it is picked up when
// present.
func resolveRun(path string) (export.RunFiles, error) {
	info, err := os.Stat(path)
	if err != nil {
		return export.RunFiles{}, fmt.Errorf("locate run %s: %w", path, err)
	}
	if info.IsDir() {
		return export.ResolveRun(path)
	}

	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	label = strings.TrimSuffix(label, "_FullSchema")
	run := export.RunFiles{CSV: path, Label: label}
	baseline := filepath.Join(filepath.Dir(path), label+"_baseline_titles.txt")
	if _, err := os.Stat(baseline); err == nil {
		run.Baseline = baseline
	}
	return run, nil
}

// logDupes reports the title-key collisions a comparison collapsed.
func (s *Service) logDupes(side string, dupes []records.DuplicatePair) {
	for _, d := range dupes {
		s.log.Warn("compare.duplicate_title", "side", side, "kept", d.Kept, "dropped", d.Dropped)
	}
}
