package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateSpan is a parsed shooting-date range. Display always carries the
// span text; Start and End stay zero when the dates could not be resolved
// to real calendar days.
type DateSpan struct {
	Display string
	Start   time.Time
	End     time.Time
}

// Bounded reports whether both ends of the span are known.
func (s DateSpan) Bounded() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// Flexible span inside or outside parentheses, with an optional year on
// the first date.
var reDateRange = regexp.MustCompile(
	`(?i)([A-Za-z]+)\s+(\d{1,2})(?:,\s*(\d{4}))?\s*[-–]\s*([A-Za-z]+)\s+(\d{1,2}),\s*(\d{4})`)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// monthByName resolves a full month name, case-insensitively.
func monthByName(name string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(name)]
	return m, ok
}

// calendarDate builds a date and rejects impossible days instead of
// letting them normalize into the next month.
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateRange finds the first "Month D[, YYYY] - Month D, YYYY" span in
// the text. A missing first year defaults to the second; an end before the
// start means the span crosses New Year, so the start falls in the prior
// year. When the matched text cannot be resolved to real dates the raw
// match is still returned as the display text.
func ParseDateRange(text string) DateSpan {
	m := reDateRange.FindStringSubmatch(text)
	if m == nil {
		return DateSpan{}
	}

	d1, _ := strconv.Atoi(m[2])
	d2, _ := strconv.Atoi(m[5])
	endYear, _ := strconv.Atoi(m[6])
	startYear := endYear
	if m[3] != "" {
		startYear, _ = strconv.Atoi(m[3])
	}

	m1, ok1 := monthByName(m[1])
	m2, ok2 := monthByName(m[4])
	if !ok1 || !ok2 {
		return DateSpan{Display: m[0]}
	}

	sd, okS := calendarDate(startYear, m1, d1)
	ed, okE := calendarDate(endYear, m2, d2)
	if !okS || !okE {
		return DateSpan{Display: m[0]}
	}
	if ed.Before(sd) {
		sd, okS = calendarDate(endYear-1, m1, d1)
		if !okS {
			return DateSpan{Display: m[0]}
		}
	}

	return DateSpan{
		Display: fmt.Sprintf("%s %d – %s %d, %d", m[1], d1, m[4], d2, ed.Year()),
		Start:   sd,
		End:     ed,
	}
}

// InclusiveDays returns the span length counting both endpoints, or ""
// when the span is unbounded.
func InclusiveDays(s DateSpan) string {
	if !s.Bounded() {
		return ""
	}
	days := int(s.End.Sub(s.Start).Hours()/24) + 1
	return strconv.Itoa(days)
}

// ActiveOn reports whether the span covers the given day: "Yes" or "No",
// or "" when either bound is unknown.
func ActiveOn(s DateSpan, today time.Time) string {
	if !s.Bounded() {
		return ""
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !t.Before(s.Start) && !t.After(s.End) {
		return "Yes"
	}
	return "No"
}

var reStartMonth = regexp.MustCompile(
	`\b(January|February|March|April|May|June|July|August|September|October|November|December)\b` +
		`(?:[^0-9]{0,10}\d{1,2})?` +
		`[^0-9]{0,10}(\d{4})`)

// StartMonthFromStatus derives "Month YYYY" from a status value when a
// month name and year appear close together; otherwise the first token of
// the status text stands in for values like "Q1 2026" or "Active".
func StartMonthFromStatus(status string) string {
	txt := strings.TrimSpace(status)
	if txt == "" {
		return ""
	}
	if m := reStartMonth.FindStringSubmatch(txt); m != nil {
		return m[1] + " " + m[2]
	}
	return strings.Fields(txt)[0]
}
