package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodweekly/prodweekly/internal/gazetteer"
	"github.com/prodweekly/prodweekly/internal/location"
	"github.com/prodweekly/prodweekly/internal/records"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	gz, err := gazetteer.New()
	require.NoError(t, err)
	parser := location.NewParser(location.DefaultTables(), gz)
	clock := func() time.Time {
		return time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	}
	return NewBuilder(DefaultTables(), parser, clock)
}

const longHaulBlock = `### “THE LONG HAUL” Limited Series / AMC 03-12-26
AARDVARK PRODUCTIONS INC.
1234 Main Street, Suite 500
STATUS: March 15, 2026  LOCATION: Vancouver, BC
DIRECTOR: Jane Doe
PRODUCER: John Smith
Shooting March 15 - June 20, 2026 at Bridge Studios.
VFX: Monster FX
Call (604) 555-1234 or office@longhaul.tv`

func TestBuildBlock(t *testing.T) {
	b := newTestBuilder(t)

	row, title, excluded := b.BuildBlock(longHaulBlock)
	require.False(t, excluded)
	assert.Equal(t, "THE LONG HAUL", title)

	assert.Equal(t, "THE LONG HAUL", row.Get(records.ColProductionName))
	assert.Equal(t, "Limited Series", row.Get(records.ColFormatLabel))
	assert.Equal(t, "Television", row.Get(records.ColType))
	assert.Equal(t, "March 2026", row.Get(records.ColStartMonth))
	assert.Equal(t, "March 15 – June 20, 2026", row.Get(records.ColShootingDates))
	assert.Equal(t, "Yes", row.Get(records.ColActive))
	assert.Equal(t, "98", row.Get(records.ColLength))
	assert.Equal(t, "Vancouver", row.Get(records.ColCity))
	assert.Equal(t, "BC", row.Get(records.ColProvinceState))
	assert.Equal(t, "Canada", row.Get(records.ColCountry))
	assert.Equal(t, "Vancouver, BC", row.Get(records.ColAllLocations))
	assert.Equal(t, "Director: Jane Doe | Producer: John Smith", row.Get(records.ColDirectorProd))
	assert.Equal(t, "VFX: Monster FX", row.Get(records.ColVFXTeam))
	assert.Equal(t, "Bridge Studios", row.Get(records.ColStudioInfo))
	assert.Equal(t, "AARDVARK PRODUCTIONS INC.", row.Get(records.ColProductionCo))
	assert.Equal(t, "AARDVARK PRODUCTIONS INC. | 1234 Main Street, Suite 500", row.Get(records.ColProductionOff))
	assert.Equal(t, "(604) 555-1234", row.Get(records.ColPhone))
	assert.Equal(t, "office@longhaul.tv", row.Get(records.ColEmail))
	assert.Contains(t, row.Get(records.ColDescription), "AARDVARK PRODUCTIONS INC.")
	assert.NotContains(t, row.Get(records.ColDescription), "THE LONG HAUL")
}

func TestBuildBlock_AliasSuffix(t *testing.T) {
	b := newTestBuilder(t)
	block := "### “THE LONG HAUL” Series / AMC\n(aka “RIVER RUN”)\nSTATUS: Active  LOCATION: Vancouver, BC"

	row, title, excluded := b.BuildBlock(block)
	require.False(t, excluded)
	assert.Equal(t, "THE LONG HAUL (AKA: RIVER RUN)", title)
	assert.Equal(t, "THE LONG HAUL (AKA: RIVER RUN)", row.Get(records.ColProductionName))
}

func TestBuild(t *testing.T) {
	b := newTestBuilder(t)
	blocks := []string{
		longHaulBlock,
		"### “HOLIDAY HEARTS” Telefilm / Hallmark\nSTATUS: Active  LOCATION: Vancouver, BC",
		"### “MIDNIGHT FERRY” Feature Film\nA crossing goes wrong.",
	}

	res := b.Build(blocks)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "THE LONG HAUL", res.Rows[0].Get(records.ColProductionName))
	assert.Equal(t, "MIDNIGHT FERRY", res.Rows[1].Get(records.ColProductionName))

	assert.Equal(t, []string{"THE LONG HAUL", "HOLIDAY HEARTS", "MIDNIGHT FERRY"}, res.Baseline)
	assert.Equal(t, []string{"HOLIDAY HEARTS"}, res.Filtered)

	ferry := res.Rows[1]
	assert.Equal(t, "Feature Film", ferry.Get(records.ColType))
	assert.Equal(t, records.NAValue, ferry.Get(records.ColPhone))
	assert.Equal(t, records.NAValue, ferry.Get(records.ColCity))
	assert.Equal(t, "A crossing goes wrong.", ferry.Get(records.ColDescription))
}
