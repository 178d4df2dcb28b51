package export

import (
	"strings"

	"github.com/prodweekly/prodweekly/internal/extract"
	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

// ToMasterRow projects a canonical record onto the master schema. The
// region bucket comes from the record's resolved location, known
// production companies are canonicalized out of the descriptive fields,
// and phone and email collapse into one contact cell.
func ToMasterRow(r records.Record, tables extract.Tables, geo *location.Tables, issueLink string) records.Record {
	city := r.Get(records.ColCity)
	region := r.Get(records.ColProvinceState)
	country := r.Get(records.ColCountry)

	return records.Record{
		"Region Bucket":          geo.Bucket(city, region, country),
		"Category":               r.Get(records.ColCategory),
		"Production Name":        r.Get(records.ColProductionName),
		"Issue Link":             issueLink,
		"Start Month":            r.Get(records.ColStartMonth),
		"Shooting Dates":         r.Get(records.ColShootingDates),
		"Actively in Production": r.Get(records.ColActive),
		"Date Pushed Back?":      r.Get(records.ColPushed),
		"Length (Days)":          strings.TrimSpace(r.Get(records.ColLength)),
		"Description":            r.Get(records.ColDescription),
		"City":                   city,
		"Province/State":         region,
		"Country":                country,
		"Type":                   r.Get(records.ColType),
		"Director/Producer":      r.Get(records.ColDirectorProd),
		"VFX Notes":              r.Get(records.ColVFXTeam),
		"IMDb Link":              "",
		"Studio Name":            r.Get(records.ColStudioInfo),
		"Production Office":      r.Get(records.ColProductionOff),
		"Production Phone/Email": contactCell(r.Get(records.ColPhone), r.Get(records.ColEmail)),
		"Prod. Co": tables.Companies(
			r.Get(records.ColDescription),
			r.Get(records.ColStudioInfo),
			r.Get(records.ColProductionCo),
			r.Get(records.ColDirectorProd),
		),
	}
}

// contactCell joins phone and email with " / " when both carry real
// values. NA placeholders count as absent.
func contactCell(phone, email string) string {
	if records.IsNA(phone) {
		phone = ""
	}
	if records.IsNA(email) {
		email = ""
	}
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	switch {
	case phone != "" && email != "":
		return phone + " / " + email
	case phone != "":
		return phone
	default:
		return email
	}
}
