// Package master loads the hand-maintained master tables that weekly runs
// are reconciled against. Master workbooks are decorated spreadsheets: the
// real header row may sit below a colour legend, column names drift between
// editors, and rows of formatting noise appear between productions. The
// reader tolerates all of that.
package master

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

// ColRegion is the optional master column naming the region a table covers.
const ColRegion = "Region"

// headerScanRows bounds how deep the header promotion scan looks.
const headerScanRows = 20

// headerAliases canonicalizes header spelling drift seen across master
// workbooks. Decorative columns map to "" and are dropped.
var headerAliases = map[string]string{
	"production name":        records.ColProductionName,
	"title":                  records.ColProductionName,
	"issue link":             "Issue Link",
	"start month":            records.ColStartMonth,
	"shooting dates":         records.ColShootingDates,
	"actively in production": records.ColActive,
	"date pushed back?":      "Date Pushed Back?",
	"length (days)":          "Length (Days)",
	"description":            records.ColDescription,
	"city":                   records.ColCity,
	"province/state":         records.ColProvinceState,
	"state/province":         records.ColProvinceState,
	"country":                records.ColCountry,
	"type":                   records.ColType,
	"director/producer":      records.ColDirectorProd,
	"vfx notes":              "VFX Notes",
	"imdb link":              "IMDb Link",
	"studio name":            "Studio Name",
	"production office":      records.ColProductionOff,
	"production phone/email": "Production Phone/Email",
	"production company":     records.ColProductionCo,
	"vfx contact":            "VFX Contact",
	"region":                 ColRegion,

	// variants seen in circulating copies
	"production weekly": "Issue Link",
	"act in prod":       records.ColActive,
	"prod. ph# / email": "Production Phone/Email",
	"prod. co.":         records.ColProductionCo,

	// decorative columns
	"colour key:": "",
	"green = reached out or already have it":    "",
	"yellow = reach out":                        "",
	"red = unsure / contact asap or not at all": "",
	"unnamed: 0": "",
	"unnamed: 1": "",
	"unnamed: 2": "",
}

func canonHeader(name string) string {
	if canon, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canon
	}
	return name
}

// ReadFile reads a master table from a CSV or XLSX file (first sheet). The
// first of the top rows containing a "Production Name" cell is promoted as
// the header; rows without a production name are dropped.
func ReadFile(path string) ([]records.Record, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = workbookRows(path)
	default:
		rows, err = csvRows(path)
	}
	if err != nil {
		return nil, err
	}
	return promote(rows), nil
}

func csvRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read master file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse master CSV %s: %w", path, err)
	}
	return rows, nil
}

func workbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open master workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("master workbook has no sheets: %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read master sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// promote finds the header row, canonicalizes its names and maps the data
// rows onto records.
func promote(rows [][]string) []records.Record {
	if len(rows) == 0 {
		return nil
	}

	headerIdx := 0
	scan := len(rows)
	if scan > headerScanRows {
		scan = headerScanRows
	}
scanning:
	for i := 0; i < scan; i++ {
		for _, c := range rows[i] {
			if strings.EqualFold(strings.TrimSpace(c), records.ColProductionName) {
				headerIdx = i
				break scanning
			}
		}
	}

	headers := make([]string, len(rows[headerIdx]))
	for i, h := range rows[headerIdx] {
		headers[i] = canonHeader(h)
	}

	var out []records.Record
	for _, r := range rows[headerIdx+1:] {
		if allBlank(r) {
			continue
		}
		rec := records.Record{}
		for i, h := range headers {
			if h == "" {
				continue
			}
			val := ""
			if i < len(r) {
				val = r[i]
			}
			rec[h] = val
		}
		if strings.TrimSpace(rec.Get(records.ColProductionName)) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func allBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Region infers the region label a master table covers: the single unique
// non-blank Region value, or "" when the column is absent or mixed.
func Region(rows []records.Record) string {
	seen := map[string]struct{}{}
	last := ""
	for _, r := range rows {
		v := strings.TrimSpace(r.Get(ColRegion))
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
		last = v
	}
	if len(seen) == 1 {
		return last
	}
	return ""
}

// ResolveFile resolves the master table for a region bucket. A path to an
// existing file is used as-is. A directory is searched for a CSV whose
// normalized name contains the bucket's file key; an empty bucket takes the
// first CSV found.
func ResolveFile(path, bucket string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access master path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("cannot list master directory: %w", err)
	}
	var candidates []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		candidates = append(candidates, filepath.Join(path, e.Name()))
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no master CSV files in %s", path)
	}

	target := normalizeStem(location.FileKey(bucket))
	if target == "" {
		return candidates[0], nil
	}
	for _, c := range candidates {
		stem := strings.TrimSuffix(filepath.Base(c), filepath.Ext(c))
		if strings.Contains(normalizeStem(stem), target) {
			return c, nil
		}
	}
	return "", fmt.Errorf("no master CSV in %s matches region %q", path, bucket)
}

var stemStrip = strings.NewReplacer(" ", "", "_", "", "-", "")

func normalizeStem(s string) string {
	return stemStrip.Replace(strings.ToLower(s))
}
