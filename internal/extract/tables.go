// Package extract turns one production block's text into a canonical
// record: title and aliases, format label, status, shooting dates,
// locations, contacts, companies, and crew.
package extract

// Tables holds the extraction lookup data. Values are fixed at load time
// and shared read-only by every extraction in a run.
type Tables struct {
	// StudioNames maps lowercase facility keywords to canonical studio
	// names.
	StudioNames map[string]string
	// CompanyCanon maps lowercase production-company keywords to their
	// canonical names.
	CompanyCanon map[string]string
	// CrewLabels are the credit labels gathered into Director/Producer.
	CrewLabels map[string]bool
	// ExcludeKeywords drop a block from the canonical output when found
	// anywhere in its lowercased text.
	ExcludeKeywords []string
}

// DefaultTables returns the extraction tables for weekly issues.
func DefaultTables() Tables {
	return Tables{
		StudioNames: map[string]string{
			"bridge studios":         "Bridge Studios",
			"mammoth studios":        "Mammoth Studios",
			"north shore studios":    "North Shore Studios",
			"martini film studios":   "Martini Film Studios",
			"vancouver film studios": "Vancouver Film Studios",
			"pinewood studios":       "Pinewood Studios",
			"studio city":            "Studio City",
			"aspect film studios":    "Aspect Film Studios",
			"big sky studios":        "Big Sky Studios",
			"santa clarita studios":  "Santa Clarita Studios",
			"universal lot studios":  "Universal Lot Studios",
			"culver city studios":    "Culver City Studios",
			"origo studios":          "Origo Studios",
		},
		CompanyCanon: map[string]string{
			"disney":                     "Disney",
			"marvel studios":             "Marvel Studios",
			"lucasfilm":                  "Lucasfilm",
			"20th century studios":       "20th Century Studios",
			"warner bros. television":    "Warner Bros.",
			"warner bros. pictures":      "Warner Bros.",
			"warner bros. entertainment": "Warner Bros.",
			"warner bros.":               "Warner Bros.",
			"new line cinema":            "New Line Cinema",
			"dc studios":                 "DC Studios",
			"universal pictures":         "Universal Pictures",
			"universal television":       "Universal Pictures",
			"focus features":             "Focus Features",
			"dreamworks":                 "DreamWorks",
			"sony pictures animation":    "Sony Pictures",
			"sony pictures":              "Sony Pictures",
			"columbia pictures":          "Sony Pictures",
			"tristar pictures":           "Sony Pictures",
			"tristar":                    "Sony Pictures",
			"screen gems":                "Sony Pictures",
			"paramount pictures":         "Paramount Pictures",
			"nickelodeon movies":         "Paramount Pictures",
			"paramount animation":        "Paramount Pictures",
			"amazon mgm studios":         "Amazon MGM Studios",
			"mgm":                        "Amazon MGM Studios",
			"orion pictures":             "Amazon MGM Studios",
			"orion":                      "Amazon MGM Studios",
			"amazon studios":             "Amazon Studios",
			"netflix studios":            "Netflix",
			"netflix":                    "Netflix",
			"apple original films":       "Apple",
			"apple tv+":                  "Apple",
			"apple studios":              "Apple",
			"apple":                      "Apple",
			"blumhouse productions":      "Blumhouse Productions",
			"atomic monster":             "Atomic Monster",
			"legendary entertainment":    "Legendary Entertainment",
			"bad robot":                  "Bad Robot",
			"skydance media":             "Skydance",
			"skydance":                   "Skydance",
			"playstation productions":    "PlayStation Productions",
			"lionsgate films":            "Lionsgate",
			"lionesgate":                 "Lionsgate",
			"summit entertainment":       "Summit Entertainment",
			"a24":                        "A24",
			"toho company":               "Toho",
			"toho":                       "Toho",
			"cj enm":                     "CJ ENM",
			"tencent pictures":           "Tencent Pictures",
			"proximity productions llc":  "Proximity Productions",
			"doozer productions":         "Doozer Productions",
			"two soups productions":      "Two Soups Productions",
		},
		CrewLabels: map[string]bool{
			"DIRECTOR":   true,
			"PRODUCER":   true,
			"SHOWRUNNER": true,
		},
		ExcludeKeywords: []string{"telefilm", "hallmark", "gaf", "great american family"},
	}
}
