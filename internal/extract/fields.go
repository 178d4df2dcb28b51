package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	reEmail    = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	rePhone    = regexp.MustCompile(`(?:\+?\d{1,2}[-.\s]?)?(?:\(?\d{3}\)?)[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	reStatus   = regexp.MustCompile(`(?i)\bSTATUS:\s*(.+?)(?:\s{2,}|$)`)
	reLocation = regexp.MustCompile(`(?i)\bLOCATION(?:S|\(S\))?:\s*(.+?)(?:\s{2,}|$)`)
	reLabel    = regexp.MustCompile(`\b([A-Z][A-Z/]{1,30}):\s*(.+)$`)
	reVFX      = regexp.MustCompile(`(?i)\bVFX\b|\bVisual Effects\b`)
	reAddress  = regexp.MustCompile(`(?i)\d{2,} .*(St\.|Street|Rd\.|Road|Ave\.|Avenue|Blvd\.|Boulevard|Suite|Floor|#)`)

	reFieldSpaces = regexp.MustCompile(`\s+`)
)

func normalizeSpaces(s string) string {
	return strings.TrimSpace(reFieldSpaces.ReplaceAllString(s, " "))
}

// FirstEmail returns the first email-shaped token in the text, or "".
func FirstEmail(text string) string {
	return reEmail.FindString(text)
}

// FirstPhone returns the first phone-shaped token in the text, or "".
func FirstPhone(text string) string {
	return rePhone.FindString(text)
}

// StatusLocation scans block lines for the STATUS and LOCATION(S) markers.
// The two may share one physical line, sit on separate lines, or a bare
// LOCATION label may take its value from the following line. The first
// match of each wins; scanning stops once both are found.
func StatusLocation(lines []string) (status, location string) {
	for i, ln := range lines {
		trimmed := strings.TrimSpace(ln)
		up := strings.ToUpper(trimmed)

		if strings.HasPrefix(up, "STATUS") && strings.Contains(up, "LOCATION") {
			locPos := strings.Index(up, "LOCATION")
			statusPart := trimmed[:locPos]
			locPart := trimmed[locPos:]

			if status == "" {
				if _, after, found := strings.Cut(statusPart, ":"); found {
					status = strings.TrimSpace(after)
				} else {
					status = strings.Trim(statusPart[len("STATUS"):], " :-\t")
				}
			}
			if location == "" {
				if _, after, found := strings.Cut(locPart, ":"); found {
					location = strings.TrimSpace(after)
				} else if idx := strings.IndexFunc(locPart, unicode.IsSpace); idx >= 0 {
					location = strings.TrimSpace(locPart[idx:])
				}
			}
		} else {
			if status == "" && strings.HasPrefix(up, "STATUS") {
				if _, after, found := strings.Cut(trimmed, ":"); found {
					status = strings.TrimSpace(after)
				} else {
					status = strings.Trim(trimmed[len("STATUS"):], " :-\t")
				}
			}
			if location == "" && strings.HasPrefix(up, "LOCATION") {
				if _, after, found := strings.Cut(trimmed, ":"); found {
					location = strings.TrimSpace(after)
				} else if i+1 < len(lines) {
					location = strings.TrimSpace(lines[i+1])
				}
			}
		}

		if status != "" && location != "" {
			break
		}
	}
	return status, location
}

// StatusFallback searches the whole block for a STATUS marker when the
// line scan found none.
func StatusFallback(text string) string {
	if m := reStatus.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// LocationFallback searches the whole block for a LOCATION(S) marker when
// the line scan found none.
func LocationFallback(text string) string {
	if m := reLocation.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// creditPrefixes end the company scan: once credits start, the company
// block is behind us.
var creditPrefixes = []string{"STATUS:", "PRODUCER:", "WRITER:", "DIRECTOR:", "CAST:", "CD:"}

// upperish reports whether at least 60% of the line's letters are
// uppercase.
func upperish(s string) bool {
	letters, uppers := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	return letters > 0 && float64(uppers)/float64(letters) >= 0.6
}

// addressy reports whether the line looks like a street address.
func addressy(s string) bool {
	return reAddress.MatchString(s)
}

// CompanyOffice finds the production company and its office: the first
// mostly-uppercase line after the title that is not a credit line, with
// the following line appended when it looks like a street address.
func CompanyOffice(lines []string) (company, office string) {
	for i, line := range lines {
		if i == 0 {
			continue
		}
		up := strings.ToUpper(line)
		stop := false
		for _, p := range creditPrefixes {
			if strings.HasPrefix(up, p) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		if upperish(line) {
			company = normalizeSpaces(line)
			if i+1 < len(lines) && addressy(lines[i+1]) {
				office = company + " | " + normalizeSpaces(lines[i+1])
			} else {
				office = company
			}
			break
		}
	}
	return company, office
}

// Studios reports every known studio facility named anywhere in the
// block, sorted and pipe-joined.
func (t Tables) Studios(lines []string) string {
	found := map[string]bool{}
	for _, line := range lines {
		low := strings.ToLower(line)
		for keyword, canonical := range t.StudioNames {
			if strings.Contains(low, keyword) {
				found[canonical] = true
			}
		}
	}
	return joinSorted(found, " | ")
}

// Crew gathers DIRECTOR/PRODUCER/SHOWRUNNER credit lines as
// "Director: name" entries, pipe-joined.
func (t Tables) Crew(lines []string) string {
	var out []string
	for _, ln := range lines {
		m := reLabel.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		label := strings.ToUpper(m[1])
		if !t.CrewLabels[label] {
			continue
		}
		out = append(out, titleCaseLabel(label)+": "+strings.TrimSpace(m[2]))
	}
	return strings.Join(out, " | ")
}

// VFX collects every line mentioning VFX or Visual Effects, pipe-joined.
func VFX(lines []string) string {
	var out []string
	for _, ln := range lines {
		if reVFX.MatchString(ln) {
			out = append(out, normalizeSpaces(ln))
		}
	}
	return strings.Join(out, " | ")
}

// Companies detects known production companies across the record's
// description, studio, company, and crew text. Every distinct canonical
// hit is kept, "+"-joined, sorted.
func (t Tables) Companies(fields ...string) string {
	search := strings.ToLower(strings.Join(fields, " "))
	found := map[string]bool{}
	for keyword, canonical := range t.CompanyCanon {
		if strings.Contains(search, keyword) {
			found[canonical] = true
		}
	}
	return joinSorted(found, "+")
}

// Excluded reports whether the block mentions any keyword on the
// exclusion list.
func (t Tables) Excluded(block string) bool {
	low := strings.ToLower(block)
	for _, k := range t.ExcludeKeywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}

func joinSorted(set map[string]bool, sep string) string {
	if len(set) == 0 {
		return ""
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return strings.Join(out, sep)
}

func titleCaseLabel(label string) string {
	if label == "" {
		return ""
	}
	return label[:1] + strings.ToLower(label[1:])
}
