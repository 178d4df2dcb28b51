package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prodweekly/prodweekly/internal/compare"
	"github.com/prodweekly/prodweekly/internal/export"
	"github.com/prodweekly/prodweekly/internal/records"
)

// CompareRequest names two finished runs. Old and New accept either a run
// directory or a FullSchema CSV path.
type CompareRequest struct {
	Old string
	New string
	// Baseline is the title list used for note ordinals; empty defaults
	// to the new run's baseline file.
	Baseline string
	// Label is the date segment of the output file names; empty defaults
	// to the new run's label.
	Label  string
	OutDir string
}

// CompareResult lists the comparison outputs and category counts.
type CompareResult struct {
	FullCSV   string
	MasterCSV string
	Summary   compare.RunSummary
}

// Compare diffs two runs and writes the comparison in both the full
// schema and the master projection.
func (s *Service) Compare(req CompareRequest) (*CompareResult, error) {
	oldRun, err := resolveRun(req.Old)
	if err != nil {
		return nil, err
	}
	newRun, err := resolveRun(req.New)
	if err != nil {
		return nil, err
	}

	oldRows, err := export.ReadCSV(oldRun.CSV)
	if err != nil {
		return nil, fmt.Errorf("read old run: %w", err)
	}
	newRows, err := export.ReadCSV(newRun.CSV)
	if err != nil {
		return nil, fmt.Errorf("read new run: %w", err)
	}

	baselinePath := req.Baseline
	if baselinePath == "" {
		baselinePath = newRun.Baseline
	}
	var baseline []string
	if baselinePath != "" {
		baseline, err = export.ReadTitles(baselinePath)
		if err != nil {
			return nil, fmt.Errorf("read baseline titles: %w", err)
		}
	}

	res := s.engine.Run(oldRows, newRows, oldRun.Label, newRun.Label, baseline)
	s.logDupes("old", res.OldDupes)
	s.logDupes("new", res.NewDupes)

	label := req.Label
	if label == "" {
		label = newRun.Label
	}
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	out := &CompareResult{
		FullCSV:   filepath.Join(req.OutDir, fmt.Sprintf("PW_%s_Comparison_FullSchema.csv", label)),
		MasterCSV: filepath.Join(req.OutDir, fmt.Sprintf("PW_%s_Comparison_MasterSchema.csv", label)),
		Summary:   res.Summary,
	}

	if err := export.WriteCSV(out.FullCSV, records.CompareSchema, res.Rows); err != nil {
		return nil, fmt.Errorf("write comparison csv: %w", err)
	}

	projected := make([]records.Record, 0, len(res.Rows))
	for _, r := range res.Rows {
		projected = append(projected, export.ToMasterRow(r, s.tables, s.geo, newRun.Label))
	}
	if err := export.WriteCSV(out.MasterCSV, records.MasterSchema, projected); err != nil {
		return nil, fmt.Errorf("write master-schema csv: %w", err)
	}

	s.log.Info("compare.done",
		"old", oldRun.Label,
		"new", newRun.Label,
		"new_count", res.Summary.New,
		"updated", res.Summary.Updated,
		"removed", res.Summary.Removed,
		"csv", out.FullCSV,
	)
	return out, nil
}
