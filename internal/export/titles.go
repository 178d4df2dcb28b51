package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteTitles writes one title per line in document order.
func WriteTitles(path string, titles []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(titles, "\n")), 0o644); err != nil {
		return fmt.Errorf("cannot write titles %s: %w", path, err)
	}
	return nil
}

// ReadTitles reads the non-blank lines of a title list.
func ReadTitles(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read titles %s: %w", path, err)
	}
	var out []string
	for _, ln := range strings.Split(string(data), "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// RunFiles locates the weekly artifacts of one extraction run.
type RunFiles struct {
	CSV      string
	Baseline string
	Label    string
}

// ResolveRun finds the FullSchema CSV and baseline title list inside a run
// folder. The label is the CSV name without its suffix.
func ResolveRun(dir string) (RunFiles, error) {
	csvs, err := filepath.Glob(filepath.Join(dir, "*_FullSchema.csv"))
	if err != nil {
		return RunFiles{}, fmt.Errorf("cannot scan run folder: %w", err)
	}
	bases, err := filepath.Glob(filepath.Join(dir, "*_baseline_titles.txt"))
	if err != nil {
		return RunFiles{}, fmt.Errorf("cannot scan run folder: %w", err)
	}
	if len(csvs) == 0 || len(bases) == 0 {
		return RunFiles{}, fmt.Errorf("run folder %s is missing the FullSchema CSV or baseline titles", dir)
	}
	return RunFiles{
		CSV:      csvs[0],
		Baseline: bases[0],
		Label:    strings.TrimSuffix(filepath.Base(csvs[0]), "_FullSchema.csv"),
	}, nil
}
