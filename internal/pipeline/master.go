package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prodweekly/prodweekly/internal/compare"
	"github.com/prodweekly/prodweekly/internal/export"
	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/master"
	"github.com/prodweekly/prodweekly/internal/records"
)

// MasterRequest names a weekly run and the master table(s) to reconcile it
// against. Exactly one of Master, MasterDir, or AllRegions+MasterDir picks
// the master side.
type MasterRequest struct {
	// Weekly is a run directory or a FullSchema CSV path.
	Weekly string
	// Master is the path of one master table file.
	Master string
	// MasterDir is a directory of per-region master CSVs, searched by
	// region file key.
	MasterDir string
	// Region restricts the weekly side to one region bucket; empty infers
	// the region from the master table.
	Region string
	// AllRegions runs every known region bucket against MasterDir.
	AllRegions bool
	// Label is the date segment of the output file names; empty defaults
	// to the weekly run's label.
	Label  string
	OutDir string
}

// MasterFiles lists one region's reconciliation outputs and counts.
type MasterFiles struct {
	Region  string
	CSV     string
	XLSX    string
	Summary string
	Updated int
	New     int
	Pushed  int
}

// MasterCompareResult collects the per-region outputs and the summary file.
type MasterCompareResult struct {
	Regions []MasterFiles
	Summary string
}

// MasterCompare reconciles a weekly run against the master tables and
// writes the VS_MASTER CSV, the review workbook, and a summary.
func (s *Service) MasterCompare(req MasterRequest) (*MasterCompareResult, error) {
	run, err := resolveRun(req.Weekly)
	if err != nil {
		return nil, err
	}
	weeklyRows, err := export.ReadCSV(run.CSV)
	if err != nil {
		return nil, fmt.Errorf("read weekly run: %w", err)
	}

	var baseline []string
	if run.Baseline != "" {
		baseline, err = export.ReadTitles(run.Baseline)
		if err != nil {
			return nil, fmt.Errorf("read baseline titles: %w", err)
		}
	}

	label := req.Label
	if label == "" {
		label = run.Label
	}
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	if req.AllRegions {
		return s.masterCompareAll(req, run, weeklyRows, baseline, label)
	}

	target := req.Master
	if target == "" {
		target = req.MasterDir
	}
	if target == "" {
		return nil, fmt.Errorf("a master table file or directory is required")
	}
	path, err := master.ResolveFile(target, req.Region)
	if err != nil {
		return nil, err
	}

	files, err := s.masterCompareOne(path, req.Region, run, weeklyRows, baseline, label, req.OutDir, true)
	if err != nil {
		return nil, err
	}
	s.log.Info("master.done", "regions", 1, "pushed", files.Pushed, "summary", files.Summary)
	return &MasterCompareResult{Regions: []MasterFiles{files}, Summary: files.Summary}, nil
}

// masterCompareOne runs one weekly-vs-master comparison and writes its
// outputs. A blank region falls back to the region named inside the master
// table itself.
func (s *Service) masterCompareOne(masterPath, region string, run export.RunFiles, weeklyRows []records.Record, baseline []string, label, outDir string, writeSummary bool) (MasterFiles, error) {
	masterRows, err := master.ReadFile(masterPath)
	if err != nil {
		return MasterFiles{}, fmt.Errorf("read master table: %w", err)
	}
	if region == "" {
		region = master.Region(masterRows)
	}

	res := compare.Master(weeklyRows, masterRows, s.geo, compare.MasterOptions{
		Label:    run.Label,
		Region:   region,
		Baseline: baseline,
	})
	s.logDupes("weekly", res.WeeklyDupes)
	s.logDupes("master", res.MasterDupes)

	// The master schema drops Notes; the review workbook keeps them as a
	// trailing column, so the projection carries them through.
	projected := make([]records.Record, 0, len(res.Rows))
	for _, r := range res.Rows {
		p := export.ToMasterRow(r, s.tables, s.geo, run.Label)
		p[records.ColNotes] = r.Get(records.ColNotes)
		projected = append(projected, p)
	}

	safe := export.SafeRegion(region)
	files := MasterFiles{
		Region:  region,
		CSV:     filepath.Join(outDir, fmt.Sprintf("PW_%s_VS_MASTER_%s.csv", label, safe)),
		XLSX:    filepath.Join(outDir, fmt.Sprintf("PW_%s_VS_MASTER_%s.xlsx", label, safe)),
		Updated: res.Updated,
		New:     res.New,
		Pushed:  res.Pushed,
	}
	if err := export.WriteCSV(files.CSV, records.MasterSchema, projected); err != nil {
		return MasterFiles{}, fmt.Errorf("write master-compare csv: %w", err)
	}
	if err := export.WriteMasterXLSX(files.XLSX, projected); err != nil {
		return MasterFiles{}, fmt.Errorf("write master-compare workbook: %w", err)
	}

	if writeSummary {
		files.Summary = filepath.Join(outDir, fmt.Sprintf("PW_%s_SUMMARY.txt", label))
		sum := export.Summary{
			Label:         run.Label,
			Region:        region,
			Total:         len(baseline),
			Pushed:        res.Pushed,
			WeeklyCSV:     filepath.Base(run.CSV),
			Baseline:      filepath.Base(run.Baseline),
			MasterCompare: filepath.Base(files.CSV),
		}
		if err := export.WriteSummary(files.Summary, sum); err != nil {
			return MasterFiles{}, err
		}
	}

	s.log.Info("master.region.done",
		"region", region,
		"updated", res.Updated,
		"new", res.New,
		"pushed", res.Pushed,
		"csv", files.CSV,
	)
	return files, nil
}

// masterCompareAll reconciles one weekly run against every region bucket
// found in the master directory. Regions whose master table is missing or
// unreadable are skipped with a warning; the run fails only when no region
// succeeds.
func (s *Service) masterCompareAll(req MasterRequest, run export.RunFiles, weeklyRows []records.Record, baseline []string, label string) (*MasterCompareResult, error) {
	if req.MasterDir == "" {
		return nil, fmt.Errorf("comparing all regions needs a master table directory")
	}

	out := &MasterCompareResult{}
	batch := export.BatchSummary{Label: run.Label, Total: len(baseline)}

	for _, bucket := range location.Buckets() {
		path, err := master.ResolveFile(req.MasterDir, bucket)
		if err != nil {
			s.log.Warn("master.region.skipped", "region", bucket, "err", err)
			continue
		}
		files, err := s.masterCompareOne(path, bucket, run, weeklyRows, baseline, label, req.OutDir, false)
		if err != nil {
			s.log.Warn("master.region.failed", "region", bucket, "err", err)
			continue
		}
		out.Regions = append(out.Regions, files)
		batch.Pushed += files.Pushed
		batch.Files = append(batch.Files, export.RegionFile{Region: bucket, File: filepath.Base(files.CSV)})
	}
	if len(out.Regions) == 0 {
		return nil, fmt.Errorf("no region master tables found in %s", req.MasterDir)
	}

	out.Summary = filepath.Join(req.OutDir, fmt.Sprintf("PW_%s_SUMMARY.txt", label))
	if err := export.WriteBatchSummary(out.Summary, batch); err != nil {
		return nil, err
	}

	s.log.Info("master.done", "regions", len(out.Regions), "pushed", batch.Pushed, "summary", out.Summary)
	return out, nil
}
