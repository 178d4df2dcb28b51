// Package compare reconciles production records across issues: week over
// week with fuzzy title matching, and weekly against a curated master
// table with exact key matching. Matching produces explicit assignments;
// input rows are never mutated.
package compare

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prodweekly/prodweekly/internal/records"
)

// monthNames in calendar order; tokens resolve by three-letter prefix.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func monthByPrefix(tok string) (time.Month, bool) {
	t := strings.ToLower(tok)
	if len(t) > 3 {
		t = t[:3]
	}
	if t == "" {
		return 0, false
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, t) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func validDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

var (
	reFlexSpan = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2})\s*-\s*([A-Za-z]+)\s+(\d{1,2})\s+(\d{4})`)
	spanFolder = strings.NewReplacer("—", "-", "–", "-", ",", "")
)

// ParseSpanFlexible reads a shooting-date span in the loose forms master
// sheets carry: "Nov 3 – May 15 2026", "November 3 - May 15, 2026".
// Dash variants and commas are folded away first, month tokens resolve by
// prefix, and an end before the start wraps the start into the prior year.
func ParseSpanFlexible(s string) (start, end time.Time, ok bool) {
	t := spanFolder.Replace(strings.TrimSpace(s))
	m := reFlexSpan.FindStringSubmatch(t)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}

	d1, _ := strconv.Atoi(m[2])
	d2, _ := strconv.Atoi(m[4])
	year, _ := strconv.Atoi(m[5])

	ma, okA := monthByPrefix(m[1])
	mb, okB := monthByPrefix(m[3])
	if !okA || !okB {
		return time.Time{}, time.Time{}, false
	}

	end, okE := validDate(year, mb, d2)
	if !okE {
		return time.Time{}, time.Time{}, false
	}
	start, okS := validDate(year, ma, d1)
	if !okS {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		start, okS = validDate(year-1, ma, d1)
		if !okS {
			return time.Time{}, time.Time{}, false
		}
	}
	return start, end, true
}

// EquivDates compares two shooting-date values as parsed spans when both
// parse, falling back to normalized text equality.
func EquivDates(a, b string) bool {
	as, ae, okA := ParseSpanFlexible(a)
	bs, be, okB := ParseSpanFlexible(b)
	if !okA || !okB {
		return records.Equiv(a, b)
	}
	return as.Equal(bs) && ae.Equal(be)
}

// typeAliases folds the type labels different sources use for the same
// thing.
var typeAliases = map[string]string{
	"television":   "series",
	"tv series":    "series",
	"tv":           "series",
	"series":       "series",
	"feature":      "feature film",
	"film":         "feature film",
	"feature film": "feature film",
}

// NormType canonicalizes a production type for comparison.
func NormType(s string) string {
	low := strings.ToLower(strings.TrimSpace(s))
	if canon, ok := typeAliases[low]; ok {
		return canon
	}
	return low
}

var (
	reNonDigit  = regexp.MustCompile(`\D`)
	reEmailForm = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
)

// NormPhone keeps the last ten digits so formatting variants of the same
// North American number compare equal.
func NormPhone(s string) string {
	digits := reNonDigit.ReplaceAllString(s, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// NormEmail extracts the first email token, lowercased; "" when none.
func NormEmail(s string) string {
	return strings.ToLower(reEmailForm.FindString(s))
}

// StartMonthFromSpan derives the month name a span starts in. Values that
// do not parse as spans compare as their trimmed text.
func StartMonthFromSpan(s string) string {
	if start, _, ok := ParseSpanFlexible(s); ok {
		return start.Month().String()
	}
	return strings.TrimSpace(s)
}

// reSpanStart mirrors the canonical shooting-dates form; only the start
// side matters here, so the end month is never validated.
var reSpanStart = regexp.MustCompile(
	`(?i)([A-Za-z]+)\s+(\d{1,2})(?:,\s*(\d{4}))?\s*[-–]\s*([A-Za-z]+)\s+(\d{1,2}),\s*(\d{4})`)

// StartDateFromShootingDates pins a concrete start date from a canonical
// "Month D[, YYYY] - Month D, YYYY" span. The start year defaults to the
// end year when omitted.
func StartDateFromShootingDates(s string) (time.Time, bool) {
	m := reSpanStart.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year := m[3]
	if year == "" {
		year = m[6]
	}
	y, _ := strconv.Atoi(year)
	d, _ := strconv.Atoi(m[2])

	month, ok := monthByName(m[1])
	if !ok {
		return time.Time{}, false
	}
	return validDate(y, month, d)
}

// monthByName resolves only full month names.
func monthByName(tok string) (time.Month, bool) {
	low := strings.ToLower(tok)
	for i, name := range monthNames {
		if name == low {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

var reStartMonthYear = regexp.MustCompile(
	`^(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`)

// ApproxStartFromStartMonth approximates a start date as the first of the
// month for values like "March 2026". No year, no date.
func ApproxStartFromStartMonth(s string) (time.Time, bool) {
	m := reStartMonthYear.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, false
	}
	y, _ := strconv.Atoi(m[2])
	month, _ := monthByName(m[1])
	return validDate(y, month, 1)
}
