package extract

import (
	"regexp"
	"strings"
)

const titlePrefix = "### "

var (
	reQuotedTitle   = regexp.MustCompile(`^[“"]\s*([^”"]+?)\s*[”"]`)
	reTitleTail     = regexp.MustCompile(`^[“"]\s*([^”"]+?)\s*[”"]\s*(.+)$`)
	reTrailingStamp = regexp.MustCompile(`\s+\d{2}-\d{2}-\d{2}\s*ê?$`)
	reFeatureWord   = regexp.MustCompile(`\bfeature\b`)

	// Quoted aliases: aka "Foo", w/t “Bar”.
	reAliasQuoted = regexp.MustCompile(
		`(?i)\b(?:aka|w[./-]?\s*t)\b\s*[:=]?\s*["“”'‘’]\s*([^"”'’\r\n]+?)\s*["“”'‘’]`)
	// Unquoted aliases: aka Foo, w/t as Bar.
	reAliasUnquoted = regexp.MustCompile(
		`(?i)\b(?:aka|w[./-]?\s*t)\b\s*[:=]?\s*(?:as\s+)?([^)\]|;,\r\n]{2,})`)
	reAliasTrailing = regexp.MustCompile(`[\s)\]|;,—–-]+$`)
	reQuoteChars    = regexp.MustCompile(`[“”"'‘’]`)
)

// TitleFromLine pulls the canonical title out of a headline: the first
// quoted span, or everything before the first double space when the line
// is unquoted.
func TitleFromLine(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, titlePrefix)
	s = strings.TrimLeft(s, " \t")
	if m := reQuotedTitle.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.SplitN(s, "  ", 2)[0])
}

// TypeFromLine classifies the headline as "Feature Film" or "Television".
func TypeFromLine(line string) string {
	s := strings.ToLower(line)
	if strings.Contains(s, "feature film") || reFeatureWord.MatchString(s) {
		return "Feature Film"
	}
	return "Television"
}

// formatRule maps a tail phrase to its canonical format label. Rules run
// in order; the first hit wins.
type formatRule struct {
	re    *regexp.Regexp
	label string
}

var formatRules = []formatRule{
	{regexp.MustCompile(`\blimited\b.*\bseries\b`), "Limited Series"},
	{regexp.MustCompile(`\bmini[-\s]?series\b`), "Mini-Series"},
	{regexp.MustCompile(`\banthology\b`), "Anthology Series"},
	{regexp.MustCompile(`\b(docu[\s-]?series|documentary\s+series)\b`), "Docuseries"},
	{regexp.MustCompile(`\btelefilm\b|\btv\s*movie\b`), "Telefilm"},
	{regexp.MustCompile(`\bpilot\b`), "Pilot"},
	{regexp.MustCompile(`\banimated\b.*\bseries\b`), "Animated Series"},
	{regexp.MustCompile(`\blive[-\s]?action\b.*\bseries\b`), "Live-Action Series"},
	{regexp.MustCompile(`\bfeature(\s+film)?\b`), "Feature Film"},
	{regexp.MustCompile(`\bseries\b`), "Series"},
}

var (
	reSeasonWord = regexp.MustCompile(`\bseason\s+(\d{1,2})\b`)
	reSeasonTag  = regexp.MustCompile(`\bs(\d{1,2})\b`)
)

// FormatLabelFromLine reads the headline tail after the closing quote and
// maps it to a canonical format label. A season token is kept only for the
// plain "Series" label. Unquoted headlines carry no label.
func FormatLabelFromLine(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, titlePrefix)
	s = strings.TrimLeft(s, " \t")
	s = reTrailingStamp.ReplaceAllString(s, "")

	m := reTitleTail.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	tail := m[2]
	beforeSlash := strings.ToLower(strings.TrimSpace(strings.SplitN(tail, "/", 2)[0]))
	if beforeSlash == "" {
		return ""
	}

	season := ""
	if sm := reSeasonWord.FindStringSubmatch(beforeSlash); sm != nil {
		season = "Season " + sm[1]
	} else if sm := reSeasonTag.FindStringSubmatch(beforeSlash); sm != nil {
		season = "Season " + sm[1]
	}

	label := ""
	for _, rule := range formatRules {
		if rule.re.MatchString(beforeSlash) {
			label = rule.label
			break
		}
	}
	if label == "Series" && season != "" {
		return label + " (" + season + ")"
	}
	return label
}

// AltTitles extracts AKA and working-title aliases from the block text and
// formats them as a display suffix like "(AKA: Foo, W/T: Bar)". Aliases
// are de-duplicated case-insensitively; "" when none are present.
func AltTitles(text string) string {
	if text == "" {
		return ""
	}

	type hit struct{ label, alias string }
	var found []hit

	for _, m := range reAliasQuoted.FindAllStringSubmatch(text, -1) {
		found = append(found, hit{strings.Fields(m[0])[0], strings.TrimSpace(m[1])})
	}
	for _, m := range reAliasUnquoted.FindAllStringSubmatch(text, -1) {
		alias := reAliasTrailing.ReplaceAllString(strings.TrimSpace(m[1]), "")
		found = append(found, hit{strings.Fields(m[0])[0], strings.TrimSpace(alias)})
	}
	if len(found) == 0 {
		return ""
	}

	var pretty []string
	seen := map[string]bool{}
	for _, h := range found {
		tag := "AKA"
		if strings.HasPrefix(strings.ToLower(h.label), "w") {
			tag = "W/T"
		}
		alias := strings.TrimSpace(reQuoteChars.ReplaceAllString(h.alias, ""))
		key := tag + "\x00" + strings.ToLower(alias)
		if alias == "" || seen[key] {
			continue
		}
		seen[key] = true
		pretty = append(pretty, tag+": "+alias)
	}
	if len(pretty) == 0 {
		return ""
	}
	return "(" + strings.Join(pretty, ", ") + ")"
}
