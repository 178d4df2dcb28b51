package location

import (
	"regexp"
	"strings"

	"github.com/prodweekly/prodweekly/internal/gazetteer"
)

var (
	reDashes        = regexp.MustCompile(`[–—]`)
	reParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	reMultiSpace    = regexp.MustCompile(`\s+`)

	// Site separators inside one LOCATION(S) value. A hyphen only splits when
	// surrounded by whitespace so hyphenated names stay intact.
	reSiteSeparator = regexp.MustCompile(`\s*(?:[;/|&]|-\s+|\s+-)\s*`)
)

// Parser turns raw LOCATION(S) strings into (City, Region, Country) parts.
// Resolution order per site: typo fix, country token, bare region token, hub
// override, city table, comma forms, gazetteer, verbatim city.
type Parser struct {
	tables *Tables
	gz     *gazetteer.Resolver
}

// NewParser creates a parser over the given lookup tables and gazetteer.
func NewParser(tables *Tables, gz *gazetteer.Resolver) *Parser {
	return &Parser{tables: tables, gz: gz}
}

func normToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func upperToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func normalizeSpaces(s string) string {
	return reMultiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Parse splits a LOCATION(S) value into city, region, and country strings.
// Multi-site values are joined with " + " in each field, blanks skipped.
func (p *Parser) Parse(raw string) (city, region, country string) {
	if raw == "" {
		return "", "", ""
	}

	s := reDashes.ReplaceAllString(raw, "-")
	s = strings.NewReplacer("’", "'", "‘", "'", "`", "'").Replace(s)
	s = reParenthetical.ReplaceAllString(s, " ")
	s = normalizeSpaces(s)
	if s == "" {
		return "", "", ""
	}

	// Pure country fast path before any splitting.
	if c := p.tables.Country(s); c != "" {
		return "", "", c
	}

	var parsed []Triple
	for _, part := range reSiteSeparator.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if fixed, ok := p.tables.TypoFixes[normToken(part)]; ok {
			part = fixed
		}
		part = normalizeSpaces(part)

		if c := p.tables.Country(part); c != "" {
			parsed = append(parsed, Triple{Country: c})
			continue
		}

		if abbr, inferred := p.tables.RegionToken(part); abbr != "" && !strings.Contains(part, ",") {
			parsed = append(parsed, Triple{Region: abbr, Country: inferred})
			continue
		}

		if hub, ok := p.matchHub(part); ok {
			parsed = append(parsed, hub)
			continue
		}

		if triple, ok := p.tables.CityTriples[normToken(part)]; ok {
			parsed = append(parsed, triple)
			continue
		}

		if triple, ok := p.parseCommaForm(part); ok {
			parsed = append(parsed, triple)
			continue
		}

		parsed = append(parsed, p.gazetteerFallback(part))
	}

	return joinField(parsed, func(t Triple) string { return t.City }),
		joinField(parsed, func(t Triple) string { return t.Region }),
		joinField(parsed, func(t Triple) string { return t.Country })
}

func (p *Parser) matchHub(part string) (Triple, bool) {
	for _, hub := range p.tables.Hubs {
		if hub.Pattern.MatchString(part) {
			return hub.Triple, true
		}
	}
	return Triple{}, false
}

// parseCommaForm handles "City, Region, Country" and "City, Tail" shapes.
func (p *Parser) parseCommaForm(part string) (Triple, bool) {
	var toks []string
	for _, t := range strings.Split(part, ",") {
		if t = strings.TrimSpace(t); t != "" {
			toks = append(toks, t)
		}
	}

	switch len(toks) {
	case 3:
		cityTok, regTok, ctryTok := toks[0], toks[1], toks[2]
		abbr, inferred := p.tables.RegionToken(regTok)
		reg := abbr
		if reg == "" {
			reg = regTok
		}
		ctry := p.tables.Country(ctryTok)
		if ctry == "" {
			ctry = inferred
		}
		if ctry == "" {
			ctry = ctryTok
		}
		return Triple{
			City:    normalizeSpaces(cityTok),
			Region:  normalizeSpaces(reg),
			Country: normalizeSpaces(ctry),
		}, true
	case 2:
		cityTok := normalizeSpaces(toks[0])
		tail := normalizeSpaces(toks[1])
		if ctry := p.tables.Country(tail); ctry != "" {
			return Triple{City: cityTok, Country: ctry}, true
		}
		if abbr, inferred := p.tables.RegionToken(tail); abbr != "" {
			return Triple{City: cityTok, Region: abbr, Country: inferred}, true
		}
		// Unknown tail, keep the city alone.
		return Triple{City: cityTok}, true
	}
	return Triple{}, false
}

func (p *Parser) gazetteerFallback(part string) Triple {
	res := p.gz.Lookup(part, "", "")
	if res.Country == "" {
		return Triple{City: normalizeSpaces(part)}
	}
	reg := res.Region
	if isDigits(reg) {
		// Numeric admin codes carry no reader value.
		reg = ""
	}
	city := res.City
	if city == "" {
		city = part
	}
	return Triple{
		City:    normalizeSpaces(city),
		Region:  normalizeSpaces(reg),
		Country: res.Country,
	}
}

func joinField(parsed []Triple, pick func(Triple) string) string {
	var vals []string
	for _, t := range parsed {
		if v := pick(t); v != "" {
			vals = append(vals, v)
		}
	}
	return strings.Join(vals, " + ")
}
