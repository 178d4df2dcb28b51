package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/prodweekly/prodweekly/internal/records"
)

// WriteMasterXLSX writes rows as a master-schema workbook with a trailing
// Notes column, which the master-schema CSV does not carry. The Length
// (Days) cell additionally shows the months approximation; blank cells are
// filled with the N/A placeholder like the CSV writer.
func WriteMasterXLSX(path string, rows []records.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Master Compare"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("cannot create sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	columns := append(append([]string{}, records.MasterSchema...), records.ColNotes)

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		for i, col := range columns {
			v := r.Get(col)
			if col == "Length (Days)" {
				v = lengthDisplay(v)
			}
			if strings.TrimSpace(v) == "" {
				v = records.NAValue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 16)
	_ = f.SetColWidth(sheet, "C", "C", 32)
	_ = f.SetColWidth(sheet, "D", "I", 18)
	_ = f.SetColWidth(sheet, "J", "J", 48)
	_ = f.SetColWidth(sheet, "K", "O", 16)
	_ = f.SetColWidth(sheet, "P", "U", 24)
	_ = f.SetColWidth(sheet, "V", "V", 56)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write workbook %s: %w", path, err)
	}
	return nil
}

// lengthDisplay appends the months approximation to a numeric day count
// for workbook display: "98" becomes "98 (3.08 mo)".
func lengthDisplay(days string) string {
	d := strings.TrimSpace(days)
	n, err := strconv.Atoi(d)
	if err != nil || n < 0 {
		return days
	}
	return fmt.Sprintf("%s (%d.%02d mo)", d, n/30, n%30)
}
