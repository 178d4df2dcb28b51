package records

import "strings"

// Record is one production listing keyed by canonical column name. Columns
// absent from the map read as empty; exports project through a fixed column
// list, so stray keys are harmless.
type Record map[string]string

// Get returns the trimmed value of a column, or "" when absent.
func (r Record) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Clone returns a shallow copy safe to decorate with Category/Notes.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FillNA returns a copy with every listed column's blank value replaced by
// the NA placeholder.
func (r Record) FillNA(cols []string) Record {
	out := r.Clone()
	for _, c := range cols {
		if strings.TrimSpace(out[c]) == "" {
			out[c] = NAValue
		}
	}
	return out
}

// completenessFields is the reference set used to score duplicate records.
var completenessFields = []string{
	ColShootingDates,
	ColDescription,
	ColDirectorProd,
	ColAllLocations,
	ColCity,
	ColProvinceState,
	ColCountry,
}

// Completeness counts the reference fields holding a real value. Used to pick
// the better record when two rows share one match key.
func (r Record) Completeness() int {
	n := 0
	for _, f := range completenessFields {
		v := r.Get(f)
		if v != "" && v != NAValue {
			n++
		}
	}
	return n
}

// DuplicatePair names the loser and winner of a key collision, for logging.
type DuplicatePair struct {
	Dropped string
	Kept    string
}

// CollapseDuplicates maps records by normalized title key, keeping insertion
// order. When two records share a key the more complete one wins; the other
// is reported, never surfaced as an error.
func CollapseDuplicates(rows []Record) (keys []string, byKey map[string]Record, dupes []DuplicatePair) {
	byKey = make(map[string]Record)
	for _, r := range rows {
		k := NormKey(r.Get(ColProductionName))
		if k == "" {
			continue
		}
		cur, ok := byKey[k]
		if !ok {
			byKey[k] = r
			keys = append(keys, k)
			continue
		}
		dupes = append(dupes, DuplicatePair{
			Dropped: r.Get(ColProductionName),
			Kept:    cur.Get(ColProductionName),
		})
		if r.Completeness() > cur.Completeness() {
			byKey[k] = r
		}
	}
	return keys, byKey, dupes
}
