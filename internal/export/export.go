// Package export reads and writes the run artifacts: schema CSVs, master
// workbooks, title lists, summaries, and the page and production dumps
// produced by extraction.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/prodweekly/prodweekly/internal/records"
)

// utf8BOM prefixes every CSV so spreadsheet tools pick up the encoding.
var utf8BOM = []byte("\xef\xbb\xbf")

// WriteCSV writes rows in the given column order. Blank cells are filled
// with the N/A placeholder; record keys outside the column set are ignored.
func WriteCSV(path string, columns []string, rows []records.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("cannot write header of %s: %w", path, err)
	}
	cells := make([]string, len(columns))
	for _, r := range rows {
		for i, col := range columns {
			v := r.Get(col)
			if strings.TrimSpace(v) == "" {
				v = records.NAValue
			}
			cells[i] = v
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("cannot write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot flush %s: %w", path, err)
	}
	return nil
}

// ReadCSV reads a schema CSV written by WriteCSV (or hand-edited copies of
// one): first row is the header, a UTF-8 BOM is tolerated, short rows read
// as blank cells.
func ReadCSV(path string) ([]records.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]records.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := records.Record{}
		for i, h := range headers {
			if h == "" {
				continue
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec[h] = val
		}
		out = append(out, rec)
	}
	return out, nil
}
