package extract

import (
	"strings"
	"time"

	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

// Builder parses production blocks into records using a fixed set of
// lookup tables and a location parser.
type Builder struct {
	tables Tables
	loc    *location.Parser
	now    func() time.Time
}

// NewBuilder returns a Builder over the given tables and location parser.
// A nil clock defaults to time.Now.
func NewBuilder(tables Tables, loc *location.Parser, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{tables: tables, loc: loc, now: now}
}

// BuildResult is the outcome of parsing one issue's blocks.
type BuildResult struct {
	// Rows holds the kept records, NA-filled, in block order.
	Rows []records.Record
	// Baseline lists every block's plain title, excluded ones included,
	// in block order. Comparison ordinals come from this list.
	Baseline []string
	// Filtered lists the alias-suffixed titles of excluded blocks.
	Filtered []string
}

// blockLines splits a block into trimmed, non-blank lines.
func blockLines(block string) []string {
	var out []string
	for _, ln := range strings.Split(block, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// BuildBlock parses one production block into a record. It also returns
// the alias-suffixed title and whether the block hit the exclusion list.
func (b *Builder) BuildBlock(block string) (records.Record, string, bool) {
	lines := blockLines(block)
	first := ""
	if len(lines) > 0 {
		first = lines[0]
	}

	title := TitleFromLine(first)
	if alt := AltTitles(block); alt != "" {
		title = title + " " + alt
	}

	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	company, office := CompanyOffice(lines)

	status, loc := StatusLocation(lines)
	if status == "" {
		status = StatusFallback(block)
	}
	if loc == "" {
		loc = LocationFallback(block)
	}

	span := ParseDateRange(block)
	city, region, country := b.loc.Parse(loc)

	row := records.Record{
		records.ColProductionName: title,
		records.ColFormatLabel:    FormatLabelFromLine(first),
		records.ColStartMonth:     StartMonthFromStatus(status),
		records.ColShootingDates:  span.Display,
		records.ColActive:         ActiveOn(span, b.now()),
		records.ColLength:         InclusiveDays(span),
		records.ColDescription:    body,
		records.ColCity:           city,
		records.ColProvinceState:  region,
		records.ColCountry:        country,
		records.ColType:           TypeFromLine(first),
		records.ColDirectorProd:   b.tables.Crew(lines),
		records.ColVFXTeam:        VFX(lines),
		records.ColStudioInfo:     b.tables.Studios(lines),
		records.ColProductionOff:  office,
		records.ColPhone:          FirstPhone(block),
		records.ColEmail:          FirstEmail(block),
		records.ColProductionCo:   company,
		records.ColAllLocations:   loc,
	}

	return row, title, b.tables.Excluded(block)
}

// Build parses every block of an issue. Excluded productions are dropped
// from the rows but kept on the baseline so later comparisons can still
// number them.
func (b *Builder) Build(blocks []string) *BuildResult {
	res := &BuildResult{}
	for _, block := range blocks {
		plain := ""
		if lines := blockLines(block); len(lines) > 0 {
			plain = TitleFromLine(lines[0])
		}
		res.Baseline = append(res.Baseline, plain)

		row, title, excluded := b.BuildBlock(block)
		if excluded {
			res.Filtered = append(res.Filtered, title)
			continue
		}
		res.Rows = append(res.Rows, row.FillNA(records.Schema))
	}
	return res
}
