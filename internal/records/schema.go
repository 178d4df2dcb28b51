// Package records defines the canonical production record schema and the
// normalization helpers used to compare records across extraction runs.
package records

import (
	"regexp"
	"strings"
)

// Column names of the canonical record schema, in export order. The header
// spelling is load-bearing: downstream spreadsheets join on these names.
const (
	ColProductionName = "Production Name"
	ColFormatLabel    = "Format Label"
	ColStartMonth     = "Start Month"
	ColShootingDates  = "Shooting Dates"
	ColActive         = "Actively in Production"
	ColPushed         = "If It Was Pushed"
	ColLength         = "Computed Production Length"
	ColDescription    = "Description"
	ColCity           = "City"
	ColProvinceState  = "Province/State"
	ColCountry        = "Country"
	ColType           = "Type"
	ColDirectorProd   = "Director/Producer"
	ColVFXTeam        = "VFX Team"
	ColStudioInfo     = "Studio Info"
	ColProductionOff  = "Production Office"
	ColPhone          = "Production Phone"
	ColEmail          = "Production Email"
	ColProductionCo   = "Production Company"
	ColNotes          = "Notes"
	ColCategory       = "Category"
	ColAllLocations   = "All Locations"
)

// Schema is the full canonical column order.
var Schema = []string{
	ColProductionName,
	ColFormatLabel,
	ColStartMonth,
	ColShootingDates,
	ColActive,
	ColPushed,
	ColLength,
	ColDescription,
	ColCity,
	ColProvinceState,
	ColCountry,
	ColType,
	ColDirectorProd,
	ColVFXTeam,
	ColStudioInfo,
	ColProductionOff,
	ColPhone,
	ColEmail,
	ColProductionCo,
	ColNotes,
	ColCategory,
	ColAllLocations,
}

// CompareSchema reorders the canonical columns for comparison exports:
// Category and Notes move directly after the production name.
var CompareSchema = buildCompareSchema()

func buildCompareSchema() []string {
	out := []string{ColProductionName, ColCategory, ColNotes}
	for _, c := range Schema {
		if c == ColProductionName || c == ColCategory || c == ColNotes {
			continue
		}
		out = append(out, c)
	}
	return out
}

// MasterSchema is the projection used for master-table exports.
var MasterSchema = []string{
	"Region Bucket",
	"Category",
	"Production Name",
	"Issue Link",
	"Start Month",
	"Shooting Dates",
	"Actively in Production",
	"Date Pushed Back?",
	"Length (Days)",
	"Description",
	"City",
	"Province/State",
	"Country",
	"Type",
	"Director/Producer",
	"VFX Notes",
	"IMDb Link",
	"Studio Name",
	"Production Office",
	"Production Phone/Email",
	"Prod. Co",
}

// Record categories assigned during reconciliation.
const (
	CategoryNew         = "New"
	CategoryUpdated     = "Updated"
	CategoryRemoved     = "Removed"
	CategoryNewToMaster = "New to Master"
	CategoryUpdatedVsM  = "Updated vs Master"
)

// NAValue is written in place of blank cells on export.
const NAValue = "N/A"

// naTokens are the values treated as "blank" during comparison.
var naTokens = map[string]struct{}{
	"": {}, "n/a": {}, "na": {}, "none": {}, "-": {}, "—": {},
}

var spaceRun = regexp.MustCompile(`\s+`)

// NormText lowercases and collapses whitespace for case-insensitive
// comparison.
func NormText(s string) string {
	return spaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// IsNA reports whether a value counts as blank for comparison purposes.
func IsNA(s string) bool {
	_, ok := naTokens[NormText(s)]
	return ok
}

// Equiv reports whether two field values are equivalent: blanks and NA
// placeholders match each other, everything else compares case- and
// whitespace-insensitively.
func Equiv(a, b string) bool {
	if IsNA(a) && IsNA(b) {
		return true
	}
	return NormText(a) == NormText(b)
}
