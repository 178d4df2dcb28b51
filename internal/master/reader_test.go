package master

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile_PromotesDecoratedHeader(t *testing.T) {
	csv := "\xef\xbb\xbf" +
		"Colour Key:,,\n" +
		"GREEN = reached out or already have it,,\n" +
		"Production Name,State/Province,Region\n" +
		"Alpha,BC,West Coast Canada\n" +
		",orphan,\n" +
		",,\n" +
		"Beta,ON\n"
	path := writeFile(t, t.TempDir(), "master.csv", csv)

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alpha", rows[0].Get(records.ColProductionName))
	assert.Equal(t, "BC", rows[0].Get(records.ColProvinceState))
	assert.Equal(t, "West Coast Canada", rows[0].Get(ColRegion))

	// ragged row: the missing Region cell reads as blank
	assert.Equal(t, "Beta", rows[1].Get(records.ColProductionName))
	assert.Equal(t, "", rows[1].Get(ColRegion))
}

func TestReadFile_FirstRowFallbackAndAliases(t *testing.T) {
	csv := "Title,Prod. Co.,Act in Prod,Oddball\n" +
		"Alpha,Netflix,Yes,keep\n"
	path := writeFile(t, t.TempDir(), "master.csv", csv)

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Alpha", rows[0].Get(records.ColProductionName))
	assert.Equal(t, "Netflix", rows[0].Get(records.ColProductionCo))
	assert.Equal(t, "Yes", rows[0].Get(records.ColActive))
	// unknown headers survive with their raw spelling
	assert.Equal(t, "keep", rows[0].Get("Oddball"))
}

func TestReadFile_DropsDecorativeColumns(t *testing.T) {
	csv := "Production Name,Colour Key:,City\n" +
		"Alpha,green,Vancouver\n"
	path := writeFile(t, t.TempDir(), "master.csv", csv)

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Vancouver", rows[0].Get(records.ColCity))
	assert.NotContains(t, rows[0], "Colour Key:")
}

func TestReadFile_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	for i, v := range []string{"banner row", "", ""} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	for i, v := range []string{"Production Name", "City", "Region"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	for i, v := range []string{"Alpha", "Vancouver", "West Coast Canada"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].Get(records.ColProductionName))
	assert.Equal(t, "Vancouver", rows[0].Get(records.ColCity))
}

func TestRegion(t *testing.T) {
	rec := func(region string) records.Record {
		return records.Record{records.ColProductionName: "X", ColRegion: region}
	}

	t.Run("single_unique_value", func(t *testing.T) {
		assert.Equal(t, "Quebec", Region([]records.Record{rec("Quebec"), rec(""), rec("Quebec")}))
	})
	t.Run("mixed_values", func(t *testing.T) {
		assert.Equal(t, "", Region([]records.Record{rec("Quebec"), rec("Other")}))
	})
	t.Run("column_absent", func(t *testing.T) {
		assert.Equal(t, "", Region([]records.Record{{records.ColProductionName: "X"}}))
	})
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	westCoast := writeFile(t, dir, "Master - West Coast CA.csv", "Production Name\n")
	quebec := writeFile(t, dir, "master_quebec.csv", "Production Name\n")

	t.Run("direct_file_path", func(t *testing.T) {
		got, err := ResolveFile(quebec, location.BucketWestCoastCanada)
		require.NoError(t, err)
		assert.Equal(t, quebec, got)
	})

	t.Run("matches_region_file_key", func(t *testing.T) {
		got, err := ResolveFile(dir, location.BucketWestCoastCanada)
		require.NoError(t, err)
		assert.Equal(t, westCoast, got)
	})

	t.Run("bucket_name_with_separators", func(t *testing.T) {
		got, err := ResolveFile(dir, location.BucketQuebec)
		require.NoError(t, err)
		assert.Equal(t, quebec, got)
	})

	t.Run("empty_bucket_takes_first_candidate", func(t *testing.T) {
		got, err := ResolveFile(dir, "")
		require.NoError(t, err)
		assert.Equal(t, westCoast, got)
	})

	t.Run("unmatched_bucket_errors", func(t *testing.T) {
		_, err := ResolveFile(dir, location.BucketAustraliaNZ)
		assert.ErrorContains(t, err, "Australia/New Zealand")
	})

	t.Run("empty_directory_errors", func(t *testing.T) {
		_, err := ResolveFile(t.TempDir(), location.BucketQuebec)
		assert.Error(t, err)
	})

	t.Run("missing_path_errors", func(t *testing.T) {
		_, err := ResolveFile(filepath.Join(dir, "nope"), location.BucketQuebec)
		assert.Error(t, err)
	})
}
