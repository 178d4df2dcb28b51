// Package layout restores reading order from positioned PDF fragments and
// splits the text stream into per-production blocks.
package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/prodweekly/prodweekly/internal/pdf"
)

// ColumnMode selects how lines are assigned to page columns.
type ColumnMode string

const (
	// ColumnsAuto splits against the page midline, keeping straddlers in
	// the left column.
	ColumnsAuto ColumnMode = "auto"
	// ColumnsSingle treats the whole page as one column.
	ColumnsSingle ColumnMode = "single"
	// ColumnsDouble forces a two-column split at the midline.
	ColumnsDouble ColumnMode = "double"
)

// Valid reports whether m is a known column mode.
func (m ColumnMode) Valid() bool {
	switch m {
	case ColumnsAuto, ColumnsSingle, ColumnsDouble:
		return true
	}
	return false
}

// Line is one reconstructed text line with its layout metadata.
type Line struct {
	Text    string
	Page    int
	Column  int
	X0      float64
	X1      float64
	Y       float64
	MaxSize float64
	Bold    bool
}

// Config tunes line reconstruction and title detection.
type Config struct {
	Columns ColumnMode
	// ColMargin widens the dead zone around the midline when assigning
	// columns, in points.
	ColMargin float64
	// RowTolerance is the Y band within which fragments share a line.
	RowTolerance float64
	TitleRules   []TitleRule
	HeaderKills  []*regexp.Regexp
}

// DefaultConfig returns the tuning used for weekly issues.
func DefaultConfig() Config {
	return Config{
		Columns:      ColumnsAuto,
		ColMargin:    12.0,
		RowTolerance: 2.0,
		TitleRules:   DefaultTitleRules(),
		HeaderKills:  DefaultHeaderKills(),
	}
}

// Intra-line gaps measured in em of the preceding fragment's font size.
// A field gap renders as a double space so downstream splitting on runs
// of spaces keeps working.
const (
	wordGapEm  = 0.13
	fieldGapEm = 1.0
)

// composeLines rebuilds the page's text lines in reading order: fragments
// are assigned to columns first so facing columns never share a row, then
// grouped by Y, merged left to right, and ordered column by column from
// the top of the page.
func composeLines(page pdf.PageContent, cfg Config) []Line {
	mid := page.Midline()

	byColumn := make(map[int][]pdf.Fragment)
	for _, f := range page.Fragments {
		col := columnIndex(f.X, f.X+f.W, mid, cfg)
		byColumn[col] = append(byColumn[col], f)
	}

	var lines []Line
	for col := 0; col <= 1; col++ {
		for _, row := range groupRows(byColumn[col], cfg.RowTolerance) {
			ln := mergeRow(row)
			ln.Page = page.Number
			ln.Column = col
			lines = append(lines, ln)
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Column != lines[j].Column {
			return lines[i].Column < lines[j].Column
		}
		if lines[i].Y != lines[j].Y {
			return lines[i].Y > lines[j].Y
		}
		return lines[i].X0 < lines[j].X0
	})

	return lines
}

// groupRows buckets fragments that sit on the same visual line. The band
// grows as members join so slightly skewed baselines still group.
func groupRows(frags []pdf.Fragment, tolerance float64) [][]pdf.Fragment {
	if len(frags) == 0 {
		return nil
	}

	type bucket struct {
		yMin, yMax float64
		frags      []pdf.Fragment
	}

	var buckets []bucket
	for _, f := range frags {
		placed := false
		for i := range buckets {
			if f.Y >= buckets[i].yMin-tolerance && f.Y <= buckets[i].yMax+tolerance {
				buckets[i].frags = append(buckets[i].frags, f)
				if f.Y < buckets[i].yMin {
					buckets[i].yMin = f.Y
				}
				if f.Y > buckets[i].yMax {
					buckets[i].yMax = f.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: f.Y, yMax: f.Y, frags: []pdf.Fragment{f}})
		}
	}

	rows := make([][]pdf.Fragment, len(buckets))
	for i, b := range buckets {
		rows[i] = b.frags
	}
	return rows
}

// mergeRow joins a row's fragments left to right into one line, inserting
// single or double spaces based on the horizontal gap between runs.
func mergeRow(row []pdf.Fragment) Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var b strings.Builder
	ln := Line{
		X0: row[0].X,
		Y:  row[0].Y,
	}

	var prevEnd float64
	for i, f := range row {
		if i > 0 {
			gap := f.X - prevEnd
			em := f.FontSize
			if em <= 0 {
				em = 12.0
			}
			switch {
			case gap >= fieldGapEm*em:
				b.WriteString("  ")
			case gap >= wordGapEm*em:
				b.WriteString(" ")
			}
		}
		b.WriteString(f.Text)
		prevEnd = f.X + f.W

		if f.X < ln.X0 {
			ln.X0 = f.X
		}
		if end := f.X + f.W; end > ln.X1 {
			ln.X1 = end
		}
		if f.Y > ln.Y {
			ln.Y = f.Y
		}
		if f.FontSize > ln.MaxSize {
			ln.MaxSize = f.FontSize
		}
		if f.Bold() {
			ln.Bold = true
		}
	}

	ln.Text = b.String()
	return ln
}

// columnIndex assigns a fragment span to a page column against the midline.
func columnIndex(x0, x1, mid float64, cfg Config) int {
	switch cfg.Columns {
	case ColumnsSingle:
		return 0
	case ColumnsDouble:
		if x1 < mid-cfg.ColMargin {
			return 0
		}
		return 1
	default:
		if x1 < mid-cfg.ColMargin {
			return 0
		}
		if x0 > mid+cfg.ColMargin {
			return 1
		}
		return 0
	}
}

// pageStats computes the per-page typography context for title rules.
func pageStats(lines []Line) PageStats {
	if len(lines) == 0 {
		return PageStats{}
	}
	sizes := make([]float64, 0, len(lines))
	for _, ln := range lines {
		sizes = append(sizes, ln.MaxSize)
	}
	sort.Float64s(sizes)
	q := int(0.85 * float64(len(sizes)-1))
	if q < 0 {
		q = 0
	}
	return PageStats{SizeThreshold: sizes[q]}
}
