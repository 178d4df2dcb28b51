package gazetteer

// countryNames maps the ISO codes used by the city table to display names.
var countryNames = map[string]string{
	"CA": "Canada",
	"US": "United States",
	"GB": "United Kingdom",
	"IE": "Ireland",
	"HU": "Hungary",
	"CZ": "Czech Republic",
	"FR": "France",
	"DE": "Germany",
	"AT": "Austria",
	"CH": "Switzerland",
	"IT": "Italy",
	"ES": "Spain",
	"PT": "Portugal",
	"NL": "Netherlands",
	"BE": "Belgium",
	"DK": "Denmark",
	"SE": "Sweden",
	"NO": "Norway",
	"FI": "Finland",
	"IS": "Iceland",
	"PL": "Poland",
	"LT": "Lithuania",
	"LV": "Latvia",
	"EE": "Estonia",
	"RO": "Romania",
	"BG": "Bulgaria",
	"GR": "Greece",
	"HR": "Croatia",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"RS": "Serbia",
	"LU": "Luxembourg",
	"MT": "Malta",
	"AU": "Australia",
	"NZ": "New Zealand",
	"JP": "Japan",
	"KR": "South Korea",
	"TH": "Thailand",
	"EG": "Egypt",
	"MA": "Morocco",
	"ZA": "South Africa",
	"MX": "Mexico",
	"CO": "Colombia",
	"AR": "Argentina",
	"CL": "Chile",
	"BR": "Brazil",
	"IN": "India",
	"CN": "China",
	"HK": "Hong Kong",
	"SG": "Singapore",
	"TW": "Taiwan",
	"TR": "Turkey",
	"AE": "United Arab Emirates",
	"IL": "Israel",
	"KE": "Kenya",
	"NG": "Nigeria",
}

// CountryName returns the display name for an ISO country code, or the code
// itself when unknown.
func CountryName(iso2 string) string {
	if name, ok := countryNames[iso2]; ok {
		return name
	}
	return iso2
}
