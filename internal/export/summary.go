package export

import (
	"fmt"
	"os"
	"strings"
)

// Summary describes one master-compare run for the summary file.
type Summary struct {
	Label         string
	Region        string
	Total         int
	Pushed        int
	WeeklyCSV     string
	Baseline      string
	MasterCompare string
}

// WriteSummary writes the per-region master-compare summary.
func WriteSummary(path string, s Summary) error {
	region := s.Region
	if region == "" {
		region = "All Regions"
	}
	lines := []string{
		fmt.Sprintf("Production Weekly Summary — %s (%s)", s.Label, region),
		"",
		fmt.Sprintf("Total productions this issue (including filtered): %d", s.Total),
		fmt.Sprintf("Productions with DATE PUSHED BACK: %d", s.Pushed),
		"",
		"Files:",
		"- Weekly FullSchema: " + s.WeeklyCSV,
		"- Baseline (incl. filtered): " + s.Baseline,
		"- Master Compare: " + s.MasterCompare,
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("cannot write summary %s: %w", path, err)
	}
	return nil
}

// RegionFile pairs a region with its master-compare output file.
type RegionFile struct {
	Region string
	File   string
}

// BatchSummary accumulates metrics across an all-regions run.
type BatchSummary struct {
	Label  string
	Total  int
	Pushed int
	Files  []RegionFile
}

// WriteBatchSummary writes the combined summary of an all-regions run.
func WriteBatchSummary(path string, s BatchSummary) error {
	lines := []string{
		fmt.Sprintf("Production Weekly Summary — %s (ALL REGIONS)", s.Label),
		"",
		fmt.Sprintf("Total productions this issue (including filtered): %d", s.Total),
		fmt.Sprintf("Productions with DATE PUSHED BACK (all regions): %d", s.Pushed),
		"",
		"Files:",
	}
	for _, rf := range s.Files {
		region := rf.Region
		if region == "" {
			region = "All Regions"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", region, rf.File))
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("cannot write summary %s: %w", path, err)
	}
	return nil
}
