package location

import "strings"

// Reporting buckets every resolved location maps onto.
const (
	BucketUnitedStates    = "United States"
	BucketQuebec          = "Quebec"
	BucketWestCoastCanada = "West Coast Canada"
	BucketEastCoastCanada = "East Coast Canada"
	BucketIrelandHungary  = "Ireland/Hungary"
	BucketAustraliaNZ     = "Australia/New Zealand"
	BucketEuropeOther     = "Europe/Other"
	BucketOther           = "Other"
)

// Buckets lists every reporting bucket in master workbook order.
func Buckets() []string {
	return []string{
		BucketUnitedStates,
		BucketQuebec,
		BucketWestCoastCanada,
		BucketEastCoastCanada,
		BucketIrelandHungary,
		BucketAustraliaNZ,
		BucketEuropeOther,
		BucketOther,
	}
}

// FileKey maps a bucket name onto the token used in master workbook file
// names. Unknown buckets map to themselves.
func FileKey(bucket string) string {
	switch bucket {
	case BucketUnitedStates:
		return "United States"
	case BucketQuebec:
		return "Quebec"
	case BucketWestCoastCanada:
		return "West Coast CA"
	case BucketEastCoastCanada:
		return "East Coast CA"
	case BucketIrelandHungary:
		return "Ireland_Hungary"
	case BucketAustraliaNZ:
		return "Australia_NewZealand"
	case BucketEuropeOther:
		return "Europe_Other"
	case BucketOther:
		return "Other"
	}
	return bucket
}

// Bucket maps a parsed (City, Region, Country) onto a reporting bucket.
// Only the first site of a multi-site value counts, and the country is
// inferred from the region code when missing.
func (t *Tables) Bucket(city, region, country string) string {
	firstRegion := strings.ToUpper(strings.TrimSpace(firstSite(region)))
	firstCountry := strings.TrimSpace(firstSite(country))

	ctry := t.Country(firstCountry)
	if ctry == "" {
		ctry = firstCountry
	}
	if ctry == "" && firstRegion != "" {
		_, ctry = t.RegionToken(firstRegion)
	}

	if ctry == "Canada" {
		switch firstRegion {
		case "BC":
			return BucketWestCoastCanada
		case "QC":
			return BucketQuebec
		}
		return BucketEastCoastCanada
	}

	switch ctry {
	case "USA", "United States":
		return BucketUnitedStates
	case "Ireland", "Hungary":
		return BucketIrelandHungary
	case "Australia", "New Zealand":
		return BucketAustraliaNZ
	}
	if _, ok := t.EUCountries[ctry]; ok {
		return BucketEuropeOther
	}
	return BucketOther
}

func firstSite(s string) string {
	if s == "" {
		return ""
	}
	if i := strings.Index(s, "+"); i >= 0 {
		return s[:i]
	}
	return s
}
