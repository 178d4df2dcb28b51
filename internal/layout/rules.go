package layout

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// TitleRule flags lines that open a new production listing. Rules are
// evaluated in order and the first match wins.
type TitleRule struct {
	Name    string
	Matches func(line Line, page PageStats) bool
}

// PageStats carries per-page typography context for title detection.
type PageStats struct {
	// SizeThreshold is the 85th-percentile font size of the page. Lines at
	// or above it are display-face candidates.
	SizeThreshold float64
}

var (
	// Quoted title followed by a format keyword, e.g.
	// “THE LONG HAUL” Series / ABC 02-06-26 ê
	reQuotedHeadline = regexp.MustCompile(
		`(?i)^\s*(?:###\s*)?[“"]\s*(?P<title>.+?)[”"]\s+.*?\b(` +
			`Series|Feature(?:\s*Film)?|Limited|Mini(?:series)?|Pilot|Short|Docu(?:series|mentary)?)\b` +
			`.*?(?:\d{2}-\d{2}-\d{2}\s*ê?)?$`)

	// Unquoted short headline in display caps with a format token.
	reUppercaseHeadline = regexp.MustCompile(
		`(?i)^[A-Z0-9][^a-z]{1,120}\b(Series|Feature(?:\s*Film)?|Telefilm|Pilot|Short|Docu)\b` +
			`.*?(?:/\s*\w.*?)?(?:\d{2}-\d{2}-\d{2}\s*ê?)?$`)
)

// DefaultTitleRules returns the standard rule chain: the two structural
// headline shapes first, then the typographic fallback for titles the
// patterns miss.
func DefaultTitleRules() []TitleRule {
	return []TitleRule{
		{
			Name: "quoted_headline",
			Matches: func(line Line, _ PageStats) bool {
				return reQuotedHeadline.MatchString(line.Text)
			},
		},
		{
			Name: "uppercase_headline",
			Matches: func(line Line, _ PageStats) bool {
				return reUppercaseHeadline.MatchString(line.Text)
			},
		},
		{
			Name: "display_face",
			Matches: func(line Line, page PageStats) bool {
				if line.MaxSize < page.SizeThreshold {
					return false
				}
				if utf8.RuneCountInString(line.Text) > 120 {
					return false
				}
				return line.Bold || upperRatio(line.Text) >= 0.5
			},
		},
	}
}

// upperRatio is the share of letters in s that are uppercase.
func upperRatio(s string) float64 {
	letters, uppers := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(uppers) / float64(letters)
}
