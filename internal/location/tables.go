// Package location parses raw LOCATION(S) strings into (city, region,
// country) parts and maps resolved locations onto reporting buckets.
package location

import "regexp"

// Triple is a (city, region, country) value from one of the lookup tables.
type Triple struct {
	City    string
	Region  string
	Country string
}

// HubPattern is a word-boundary override for a major production center.
// Hubs are checked before generic parsing so that ambiguous comma-free
// tokens ("Vancouver area", "shooting in Toronto") still resolve.
type HubPattern struct {
	Pattern *regexp.Regexp
	Triple  Triple
}

// Tables bundles every lookup table the parser and bucketer read. Built once
// at startup and treated as immutable thereafter.
type Tables struct {
	CountryAliases map[string]string
	USStates       map[string]struct{}
	CAProvinces    map[string]struct{}
	AUStates       map[string]struct{}
	FullUSStates   map[string]string
	FullCAProv     map[string]string
	FullAUStates   map[string]string
	CityTriples    map[string]Triple
	Hubs           []HubPattern
	TypoFixes      map[string]string
	EUCountries    map[string]struct{}
}

func set(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// DefaultTables returns the standard production-hub tables.
func DefaultTables() *Tables {
	return &Tables{
		CountryAliases: map[string]string{
			"usa": "USA", "u.s.a.": "USA", "u.s.": "USA", "us": "USA",
			"united states": "USA", "united states of america": "USA", "america": "USA",
			"canada": "Canada", "can.": "Canada", "can": "Canada",
			"united kingdom": "United Kingdom", "u.k.": "United Kingdom", "uk": "United Kingdom",
			"england": "United Kingdom", "scotland": "United Kingdom",
			"wales": "United Kingdom", "northern ireland": "United Kingdom",
			"australia": "Australia", "aus": "Australia",
			"new zealand": "New Zealand", "nz": "New Zealand",
			"ireland": "Ireland", "hungary": "Hungary", "poland": "Poland",
			"czech republic": "Czech Republic", "czechia": "Czech Republic",
			"france": "France", "germany": "Germany", "spain": "Spain",
			"italy": "Italy", "portugal": "Portugal",
			"thailand": "Thailand", "egypt": "Egypt", "japan": "Japan",
			"korea": "South Korea", "south korea": "South Korea",
		},
		USStates: set(
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID",
			"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO",
			"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA",
			"RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		),
		CAProvinces: set("AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"),
		AUStates:    set("NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"),
		FullUSStates: map[string]string{
			"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
			"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
			"district of columbia": "DC", "florida": "FL", "georgia": "GA", "hawaii": "HI",
			"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
			"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
			"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
			"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
			"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
			"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
			"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
			"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
			"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
			"wisconsin": "WI", "wyoming": "WY",
		},
		FullCAProv: map[string]string{
			"alberta": "AB", "british columbia": "BC", "manitoba": "MB", "new brunswick": "NB",
			"newfoundland": "NL", "newfoundland and labrador": "NL", "nova scotia": "NS",
			"northwest territories": "NT", "nunavut": "NU", "ontario": "ON",
			"prince edward island": "PE", "quebec": "QC", "saskatchewan": "SK", "yukon": "YT",
		},
		FullAUStates: map[string]string{
			"new south wales": "NSW", "victoria": "VIC", "queensland": "QLD",
			"western australia": "WA", "south australia": "SA", "tasmania": "TAS",
			"australian capital territory": "ACT", "northern territory": "NT",
		},
		CityTriples: map[string]Triple{
			"los angeles":   {"Los Angeles", "CA", "USA"},
			"atlanta":       {"Atlanta", "GA", "USA"},
			"new york":      {"New York", "NY", "USA"},
			"new york city": {"New York", "NY", "USA"},
			"brooklyn":      {"Brooklyn", "NY", "USA"},
			"albuquerque":   {"Albuquerque", "NM", "USA"},
			"chicago":       {"Chicago", "IL", "USA"},
			"vancouver":     {"Vancouver", "BC", "Canada"},
			"burnaby":       {"Burnaby", "BC", "Canada"},
			"richmond":      {"Richmond", "BC", "Canada"},
			"surrey":        {"Surrey", "BC", "Canada"},
			"langley":       {"Langley", "BC", "Canada"},
			"victoria":      {"Victoria", "BC", "Canada"},
			"toronto":       {"Toronto", "ON", "Canada"},
			"mississauga":   {"Mississauga", "ON", "Canada"},
			"hamilton":      {"Hamilton", "ON", "Canada"},
			"ottawa":        {"Ottawa", "ON", "Canada"},
			"montreal":      {"Montreal", "QC", "Canada"},
			"quebec city":   {"Quebec City", "QC", "Canada"},
			"calgary":       {"Calgary", "AB", "Canada"},
			"edmonton":      {"Edmonton", "AB", "Canada"},
			"winnipeg":      {"Winnipeg", "MB", "Canada"},
			"halifax":       {"Halifax", "NS", "Canada"},
			"st. johns":     {"St. John's", "NL", "Canada"},
			"st johns":      {"St. John's", "NL", "Canada"},
			"london, england": {"London", "England", "United Kingdom"},
			"sydney":        {"Sydney", "NSW", "Australia"},
			"melbourne":     {"Melbourne", "VIC", "Australia"},
			"brisbane":      {"Brisbane", "QLD", "Australia"},
			"gold coast":    {"Gold Coast", "QLD", "Australia"},
			"perth":         {"Perth", "WA", "Australia"},
			"adelaide":      {"Adelaide", "SA", "Australia"},
			"canberra":      {"Canberra", "ACT", "Australia"},
			"hobart":        {"Hobart", "TAS", "Australia"},
			"darwin":        {"Darwin", "NT", "Australia"},
			"auckland":      {"Auckland", "", "New Zealand"},
			"wellington":    {"Wellington", "", "New Zealand"},
			"queenstown":    {"Queenstown", "", "New Zealand"},
			"christchurch":  {"Christchurch", "", "New Zealand"},
			"bangkok":       {"Bangkok", "", "Thailand"},
			"cairo":         {"Cairo", "", "Egypt"},
			"tokyo":         {"Tokyo", "", "Japan"},
			"kyoto":         {"Kyoto", "", "Japan"},
			"osaka":         {"Osaka", "", "Japan"},
			"japan":         {"", "", "Japan"},
		},
		Hubs: []HubPattern{
			{regexp.MustCompile(`(?i)\blos\s+angeles\b`), Triple{"Los Angeles", "CA", "USA"}},
			{regexp.MustCompile(`(?i)\bnew\s+york\b`), Triple{"New York", "NY", "USA"}},
			{regexp.MustCompile(`(?i)\batlanta\b`), Triple{"Atlanta", "GA", "USA"}},
			{regexp.MustCompile(`(?i)\balbuquerque\b`), Triple{"Albuquerque", "NM", "USA"}},
			{regexp.MustCompile(`(?i)\bchicago\b`), Triple{"Chicago", "IL", "USA"}},
			{regexp.MustCompile(`(?i)\bvancouver\b`), Triple{"Vancouver", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\brichmond\b`), Triple{"Richmond", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\bburnaby\b`), Triple{"Burnaby", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\bsurrey\b`), Triple{"Surrey", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\blangley\b`), Triple{"Langley", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\bvictoria\b`), Triple{"Victoria", "BC", "Canada"}},
			{regexp.MustCompile(`(?i)\btoronto\b`), Triple{"Toronto", "ON", "Canada"}},
			{regexp.MustCompile(`(?i)\bmississauga\b`), Triple{"Mississauga", "ON", "Canada"}},
			{regexp.MustCompile(`(?i)\bhamilton\b`), Triple{"Hamilton", "ON", "Canada"}},
			{regexp.MustCompile(`(?i)\bottawa\b`), Triple{"Ottawa", "ON", "Canada"}},
			{regexp.MustCompile(`(?i)\bmontreal\b`), Triple{"Montreal", "QC", "Canada"}},
			{regexp.MustCompile(`(?i)\bcalgary\b`), Triple{"Calgary", "AB", "Canada"}},
			{regexp.MustCompile(`(?i)\bwinnipeg\b`), Triple{"Winnipeg", "MB", "Canada"}},
			{regexp.MustCompile(`(?i)\bhalifax\b`), Triple{"Halifax", "NS", "Canada"}},
			{regexp.MustCompile(`(?i)\blondon,\s*england\b`), Triple{"London", "England", "United Kingdom"}},
			{regexp.MustCompile(`(?i)\bsydney\b`), Triple{"Sydney", "NSW", "Australia"}},
			{regexp.MustCompile(`(?i)\bmelbourne\b`), Triple{"Melbourne", "VIC", "Australia"}},
		},
		TypoFixes: map[string]string{
			"ontartio":      "ontario",
			"los angles":    "los angeles",
			"newyork":       "new york",
			"united kindom": "united kingdom",
			"united kngdom": "united kingdom",
			"tokoyo":        "tokyo",
			"munchen":       "munich",
			"prauge":        "prague",
		},
		EUCountries: set(
			"United Kingdom", "Ireland", "France", "Germany", "Spain", "Italy",
			"Netherlands", "Belgium", "Austria", "Switzerland", "Czech Republic",
			"Poland", "Romania", "Bulgaria", "Denmark", "Sweden", "Norway", "Finland",
			"Iceland", "Portugal", "Greece", "Slovakia", "Slovenia", "Croatia",
			"Lithuania", "Latvia", "Estonia", "Luxembourg", "Malta", "Hungary", "Serbia",
		),
	}
}

// Country normalizes a country token through the alias table, returning ""
// when the token is not a recognized country.
func (t *Tables) Country(token string) string {
	return t.CountryAliases[normToken(token)]
}

// RegionToken matches a bare token against the state/province tables,
// returning the abbreviation and inferred country, or two empty strings.
func (t *Tables) RegionToken(token string) (abbr, country string) {
	if token == "" {
		return "", ""
	}
	up := upperToken(token)
	lo := normToken(token)
	if _, ok := t.USStates[up]; ok {
		return up, "USA"
	}
	if _, ok := t.CAProvinces[up]; ok {
		return up, "Canada"
	}
	if _, ok := t.AUStates[up]; ok {
		return up, "Australia"
	}
	if abbr, ok := t.FullUSStates[lo]; ok {
		return abbr, "USA"
	}
	if abbr, ok := t.FullCAProv[lo]; ok {
		return abbr, "Canada"
	}
	if abbr, ok := t.FullAUStates[lo]; ok {
		return abbr, "Australia"
	}
	return "", ""
}
