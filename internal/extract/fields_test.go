package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLocation(t *testing.T) {
	t.Run("shared_line", func(t *testing.T) {
		status, loc := StatusLocation([]string{
			"“X” Series / AMC",
			"STATUS: March 15, 2026  LOCATION: Vancouver, BC",
		})
		assert.Equal(t, "March 15, 2026", status)
		assert.Equal(t, "Vancouver, BC", loc)
	})

	t.Run("shared_line_without_colons", func(t *testing.T) {
		status, loc := StatusLocation([]string{"STATUS Prep LOCATION Vancouver"})
		assert.Equal(t, "Prep", status)
		assert.Equal(t, "Vancouver", loc)
	})

	t.Run("separate_lines", func(t *testing.T) {
		status, loc := StatusLocation([]string{
			"STATUS: Active",
			"LOCATIONS: Toronto, ON",
		})
		assert.Equal(t, "Active", status)
		assert.Equal(t, "Toronto, ON", loc)
	})

	t.Run("bare_location_takes_next_line", func(t *testing.T) {
		status, loc := StatusLocation([]string{
			"STATUS - Prep",
			"LOCATION",
			"Dublin, Ireland",
		})
		assert.Equal(t, "Prep", status)
		assert.Equal(t, "Dublin, Ireland", loc)
	})

	t.Run("first_match_wins", func(t *testing.T) {
		status, loc := StatusLocation([]string{
			"STATUS: Shooting",
			"LOCATION: Vancouver",
			"STATUS: Wrapped",
			"LOCATION: Toronto",
		})
		assert.Equal(t, "Shooting", status)
		assert.Equal(t, "Vancouver", loc)
	})

	t.Run("nothing_found", func(t *testing.T) {
		status, loc := StatusLocation([]string{"“X” Series", "A quiet drama."})
		assert.Empty(t, status)
		assert.Empty(t, loc)
	})
}

func TestStatusLocationFallbacks(t *testing.T) {
	block := "“X” Series\nNow in prep. STATUS: Scouting  with crew\nfilming LOCATION(S): Budapest, Hungary  soon"
	assert.Equal(t, "Scouting", StatusFallback(block))
	assert.Equal(t, "Budapest, Hungary", LocationFallback(block))
	assert.Empty(t, StatusFallback("no markers here"))
	assert.Empty(t, LocationFallback("no markers here"))
}

func TestContacts(t *testing.T) {
	block := "Call (604) 555-1234 or write OFFICE@LONGHAUL.TV for details. Alt: 310.555.9876"
	assert.Equal(t, "(604) 555-1234", FirstPhone(block))
	assert.Equal(t, "OFFICE@LONGHAUL.TV", FirstEmail(block))
	assert.Empty(t, FirstPhone("no numbers"))
	assert.Empty(t, FirstEmail("no at signs"))
}

func TestCompanyOffice(t *testing.T) {
	t.Run("company_with_address", func(t *testing.T) {
		company, office := CompanyOffice([]string{
			"“X” Series / AMC",
			"AARDVARK PRODUCTIONS INC.",
			"1234 Main Street, Suite 500",
			"STATUS: Active",
		})
		assert.Equal(t, "AARDVARK PRODUCTIONS INC.", company)
		assert.Equal(t, "AARDVARK PRODUCTIONS INC. | 1234 Main Street, Suite 500", office)
	})

	t.Run("company_without_address", func(t *testing.T) {
		company, office := CompanyOffice([]string{
			"“X” Series / AMC",
			"AARDVARK PRODUCTIONS INC.",
			"A quiet character drama.",
		})
		assert.Equal(t, "AARDVARK PRODUCTIONS INC.", company)
		assert.Equal(t, "AARDVARK PRODUCTIONS INC.", office)
	})

	t.Run("credits_end_the_scan", func(t *testing.T) {
		company, office := CompanyOffice([]string{
			"“X” Series / AMC",
			"PRODUCER: JANE DOE",
			"AARDVARK PRODUCTIONS INC.",
		})
		assert.Empty(t, company)
		assert.Empty(t, office)
	})

	t.Run("title_line_is_skipped", func(t *testing.T) {
		company, _ := CompanyOffice([]string{"“ALL CAPS TITLE” SERIES", "mixed case line only"})
		assert.Empty(t, company)
	})
}

func TestUpperish(t *testing.T) {
	assert.True(t, upperish("AARDVARK PRODUCTIONS INC."))
	assert.True(t, upperish("ACME FILMS Ltd."))
	assert.False(t, upperish("A quiet character drama."))
	assert.False(t, upperish("1234 5678"))
}

func TestStudios(t *testing.T) {
	tables := DefaultTables()
	got := tables.Studios([]string{
		"Stages booked at Bridge Studios and Mammoth Studios.",
		"Second unit at PINEWOOD STUDIOS Toronto.",
	})
	assert.Equal(t, "Bridge Studios | Mammoth Studios | Pinewood Studios", got)
	assert.Empty(t, tables.Studios([]string{"No facility named."}))
}

func TestCrew(t *testing.T) {
	tables := DefaultTables()
	got := tables.Crew([]string{
		"DIRECTOR: Jane Doe",
		"CAST: Someone Famous",
		"PRODUCER: John Smith",
		"SHOWRUNNER: Ann Roe",
	})
	assert.Equal(t, "Director: Jane Doe | Producer: John Smith | Showrunner: Ann Roe", got)
	assert.Empty(t, tables.Crew([]string{"CAST: Someone Famous"}))
}

func TestVFX(t *testing.T) {
	got := VFX([]string{
		"VFX: Monster FX",
		"Visual Effects by Harbor Post",
		"No effects note here",
	})
	assert.Equal(t, "VFX: Monster FX | Visual Effects by Harbor Post", got)
	assert.Empty(t, VFX([]string{"nothing"}))
}

func TestCompanies(t *testing.T) {
	tables := DefaultTables()
	got := tables.Companies("a netflix original", "", "warner bros. television", "")
	assert.Equal(t, "Netflix+Warner Bros.", got)
	assert.Empty(t, tables.Companies("an indie with no known backer"))
}

func TestExcluded(t *testing.T) {
	tables := DefaultTables()
	assert.True(t, tables.Excluded("A Hallmark original movie."))
	assert.True(t, tables.Excluded("“X” Telefilm / GAF"))
	assert.False(t, tables.Excluded("“X” Series / AMC"))
}
