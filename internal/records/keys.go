package records

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliasClause matches parenthetical AKA / W-T clauses in any of the spellings
// seen in the wild: (AKA: Foo), (aka "Foo"), (w/t Foo), (W.T. Foo), ...
var aliasClause = regexp.MustCompile(`(?i)\s*\((?:aka|a\.k\.a\.|w[./-]?\s*t)\s*[:\-]?\s*[^)]*\)`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFolder decomposes characters and drops the combining marks, so
// "Zoë" and "Zoe" produce the same key.
var asciiFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

var punctFolder = strings.NewReplacer(
	"’", "'", "‘", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// NormKey canonicalizes a production title into a stable match key: alias
// clauses stripped, diacritics folded, curly punctuation straightened,
// lowercased, and every non-alphanumeric run collapsed to a single space.
// Idempotent: NormKey(NormKey(s)) == NormKey(s).
func NormKey(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimSpace(aliasClause.ReplaceAllString(name, ""))
	if folded, _, err := transform.String(asciiFolder, s); err == nil {
		s = folded
	}
	s = punctFolder.Replace(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
