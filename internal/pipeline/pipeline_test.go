package pipeline

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodweekly/prodweekly/internal/config"
	"github.com/prodweekly/prodweekly/internal/export"
	"github.com/prodweekly/prodweekly/internal/records"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(config.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return svc
}

func prodRow(name string, kv ...string) records.Record {
	r := records.Record{records.ColProductionName: name}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

// writeRun lays out a finished extraction run in dir.
func writeRun(t *testing.T, dir, label string, rows []records.Record, baseline []string) export.RunFiles {
	t.Helper()
	run := export.RunFiles{
		CSV:      filepath.Join(dir, label+"_FullSchema.csv"),
		Baseline: filepath.Join(dir, label+"_baseline_titles.txt"),
		Label:    label,
	}
	require.NoError(t, export.WriteCSV(run.CSV, records.Schema, rows))
	require.NoError(t, export.WriteTitles(run.Baseline, baseline))
	return run
}

func TestNew_NilLoggerFallsBack(t *testing.T) {
	svc, err := New(config.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.NotNil(t, svc.log)
}

func TestResolveRun(t *testing.T) {
	t.Run("run_directory", func(t *testing.T) {
		dir := t.TempDir()
		writeRun(t, dir, "Aug_21_2026", []records.Record{prodRow("Alpha")}, []string{"Alpha"})

		run, err := resolveRun(dir)
		require.NoError(t, err)
		assert.Equal(t, "Aug_21_2026", run.Label)
		assert.Equal(t, filepath.Join(dir, "Aug_21_2026_FullSchema.csv"), run.CSV)
		assert.Equal(t, filepath.Join(dir, "Aug_21_2026_baseline_titles.txt"), run.Baseline)
	})

	t.Run("csv_with_sibling_baseline", func(t *testing.T) {
		dir := t.TempDir()
		files := writeRun(t, dir, "Aug_21_2026", []records.Record{prodRow("Alpha")}, []string{"Alpha"})

		run, err := resolveRun(files.CSV)
		require.NoError(t, err)
		assert.Equal(t, "Aug_21_2026", run.Label)
		assert.Equal(t, files.Baseline, run.Baseline)
	})

	t.Run("bare_csv", func(t *testing.T) {
		dir := t.TempDir()
		csv := filepath.Join(dir, "Aug_21_2026_FullSchema.csv")
		require.NoError(t, export.WriteCSV(csv, records.Schema, []records.Record{prodRow("Alpha")}))

		run, err := resolveRun(csv)
		require.NoError(t, err)
		assert.Equal(t, "Aug_21_2026", run.Label)
		assert.Empty(t, run.Baseline)
	})

	t.Run("missing_path", func(t *testing.T) {
		_, err := resolveRun(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorContains(t, err, "locate run")
	})
}
