package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodweekly/prodweekly/internal/pdf"
)

func frag(text string, x, y, w, size float64) pdf.Fragment {
	return pdf.Fragment{Text: text, X: x, Y: y, W: w, FontSize: size, Font: "Helvetica"}
}

func boldFrag(text string, x, y, w, size float64) pdf.Fragment {
	f := frag(text, x, y, w, size)
	f.Font = "Helvetica-Bold"
	return f
}

func TestComposeLines_ReadingOrder(t *testing.T) {
	page := pdf.PageContent{
		Number: 1,
		MinX:   40,
		MaxX:   560,
		Fragments: []pdf.Fragment{
			frag("Right gamma", 320, 700, 100, 10),
			frag("Left beta", 40, 688, 90, 10),
			frag("Wide headline", 200, 710, 200, 10),
			frag("Left alpha", 40, 700, 100, 10),
			frag("Right delta", 320, 688, 90, 10),
		},
	}

	texts := func(lines []Line) []string {
		out := make([]string, len(lines))
		for i, ln := range lines {
			out[i] = ln.Text
		}
		return out
	}

	t.Run("auto_keeps_straddler_left", func(t *testing.T) {
		cfg := DefaultConfig()
		lines := composeLines(page, cfg)
		assert.Equal(t, []string{
			"Wide headline",
			"Left alpha",
			"Left beta",
			"Right gamma",
			"Right delta",
		}, texts(lines))
		assert.Equal(t, 0, lines[0].Column)
		assert.Equal(t, 1, lines[3].Column)
		assert.Equal(t, 1, lines[0].Page)
	})

	t.Run("double_pushes_straddler_right", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Columns = ColumnsDouble
		lines := composeLines(page, cfg)
		assert.Equal(t, []string{
			"Left alpha",
			"Left beta",
			"Wide headline",
			"Right gamma",
			"Right delta",
		}, texts(lines))
	})

	t.Run("single_merges_facing_lines", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Columns = ColumnsSingle
		lines := composeLines(page, cfg)
		require.Len(t, lines, 3)
		assert.Equal(t, "Wide headline", lines[0].Text)
		assert.Equal(t, "Left alpha  Right gamma", lines[1].Text)
		assert.Equal(t, "Left beta  Right delta", lines[2].Text)
	})
}

func TestMergeRow(t *testing.T) {
	t.Run("glues_adjacent_runs", func(t *testing.T) {
		ln := mergeRow([]pdf.Fragment{
			frag("couver", 58, 700, 36, 9),
			frag("Van", 40, 700, 18, 9),
		})
		assert.Equal(t, "Vancouver", ln.Text)
		assert.Equal(t, 40.0, ln.X0)
		assert.Equal(t, 94.0, ln.X1)
	})

	t.Run("word_and_field_gaps", func(t *testing.T) {
		ln := mergeRow([]pdf.Fragment{
			frag("Hello", 40, 700, 30, 9),
			frag("world", 73, 700, 30, 9),
			frag("NEXT", 160, 700, 30, 9),
		})
		assert.Equal(t, "Hello world  NEXT", ln.Text)
	})

	t.Run("tracks_size_and_bold", func(t *testing.T) {
		ln := mergeRow([]pdf.Fragment{
			frag("small", 40, 700, 30, 9),
			boldFrag("BIG", 80, 700, 30, 14),
		})
		assert.Equal(t, 14.0, ln.MaxSize)
		assert.True(t, ln.Bold)
	})
}

func TestGroupRows(t *testing.T) {
	rows := groupRows([]pdf.Fragment{
		frag("a", 40, 700.0, 10, 9),
		frag("b", 60, 701.5, 10, 9),
		frag("c", 80, 703.0, 10, 9),
		frag("d", 40, 690.0, 10, 9),
	}, 2.0)

	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 3, "skewed baseline should chain into one row")
	assert.Len(t, rows[1], 1)
}

func TestPageStats(t *testing.T) {
	mk := func(sizes ...float64) []Line {
		lines := make([]Line, len(sizes))
		for i, s := range sizes {
			lines[i] = Line{MaxSize: s}
		}
		return lines
	}

	assert.Equal(t, 0.0, pageStats(nil).SizeThreshold)
	assert.Equal(t, 12.0, pageStats(mk(12)).SizeThreshold)
	assert.Equal(t, 9.0, pageStats(mk(9, 9, 9, 9, 9, 9, 13, 13)).SizeThreshold)
	assert.Equal(t, 14.0, pageStats(mk(9, 9, 14, 14, 14, 14, 14, 14, 14, 14)).SizeThreshold)
}

func TestTitleDetection(t *testing.T) {
	s := NewSegmenter(Config{})
	stats := PageStats{SizeThreshold: 12}

	tests := []struct {
		name string
		line Line
		want bool
	}{
		{
			name: "quoted_headline",
			line: Line{Text: "“THE LONG HAUL” Series / ABC 02-06-26 ê", MaxSize: 9},
			want: true,
		},
		{
			name: "straight_quotes_lowercase_type",
			line: Line{Text: `"Midnight Run" feature film / Netflix`, MaxSize: 9},
			want: true,
		},
		{
			name: "already_prefixed",
			line: Line{Text: "### “RERUN” Pilot", MaxSize: 9},
			want: true,
		},
		{
			name: "docuseries_keyword",
			line: Line{Text: "“WILD KITCHENS” Docuseries / Food Network", MaxSize: 9},
			want: true,
		},
		{
			name: "numeric_headline",
			line: Line{Text: "9-1-1 Series / FOX 03-12-26", MaxSize: 9},
			want: true,
		},
		{
			name: "keyword_alone_is_not_enough",
			line: Line{Text: "The Long Road Series / AMC", MaxSize: 9},
			want: false,
		},
		{
			name: "body_line",
			line: Line{Text: "STATUS: Casting throughout the spring with local hires", MaxSize: 9},
			want: false,
		},
		{
			name: "display_face_bold",
			line: Line{Text: "Mountain song ensemble cast drama", MaxSize: 13, Bold: true},
			want: true,
		},
		{
			name: "display_face_caps",
			line: Line{Text: "MOUNTAIN SONG", MaxSize: 13},
			want: true,
		},
		{
			name: "display_face_under_threshold",
			line: Line{Text: "MOUNTAIN SONG", MaxSize: 10},
			want: false,
		},
		{
			name: "display_face_too_long",
			line: Line{Text: strings.Repeat("A", 121), MaxSize: 13},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.isTitle(tt.line, stats))
		})
	}
}

func TestSegmenter_Segment(t *testing.T) {
	pageOne := pdf.PageContent{
		Number: 1,
		MinX:   40,
		MaxX:   560,
		Fragments: []pdf.Fragment{
			frag("LOCATION: Vancouver, British Columbia", 40, 705, 220, 9),
			boldFrag("“THE LONG HAUL” Series / ABC 02-06-26", 40, 735, 220, 13),
			frag("PRODUCER: Jane Doe and Martin Albright for Meridian Pictures", 40, 675, 220, 9),
			frag("LAST UPDATED: 02/06/26", 40, 760, 220, 8),
			frag("STATUS: Active development through the summer of 2026", 40, 720, 220, 9),
			boldFrag("“MIDNIGHT FERRY” Feature Film / Netflix 02-06-26", 40, 690, 220, 13),
		},
	}
	pageTwo := pdf.PageContent{
		Number: 2,
		MinX:   40,
		MaxX:   560,
		Fragments: []pdf.Fragment{
			frag("CASTING: Principal roles announced by the studio this week", 40, 735, 220, 9),
		},
	}

	doc := NewSegmenter(Config{}).Segment([]pdf.PageContent{pageOne, pageTwo})

	require.Len(t, doc.Productions, 3)
	assert.Equal(t, "### “THE LONG HAUL” Series / ABC 02-06-26\n"+
		"STATUS: Active development through the summer of 2026\n"+
		"LOCATION: Vancouver, British Columbia", doc.Productions[0])
	assert.Equal(t, "### “MIDNIGHT FERRY” Feature Film / Netflix 02-06-26\n"+
		"PRODUCER: Jane Doe and Martin Albright for Meridian Pictures", doc.Productions[1])
	assert.Equal(t, "CASTING: Principal roles announced by the studio this week",
		doc.Productions[2], "orphan lines after a page break form an untitled block")

	require.Len(t, doc.Pages, 2)
	assert.Equal(t, 1, doc.Pages[0].Number)
	assert.Len(t, doc.Pages[0].Lines, 5, "masthead line is dropped from the dump")
	assert.Len(t, doc.Pages[1].Lines, 1)
}

func TestStructuredRoundTrip(t *testing.T) {
	prods := []string{
		"### “ALPHA” Series / HBO\nSTATUS: Active",
		"### “BETA” Feature Film\nLOCATION: Dublin, Ireland",
	}

	text := StructuredText(prods)
	assert.Contains(t, text, ProductionBreak)
	assert.Equal(t, prods, ParseStructured(text))
}

func TestParseStructured_DropsUntitledChunks(t *testing.T) {
	text := "Cover page noise\nIssue 1203\n\n" + ProductionBreak + "\n\n" +
		"### “ALPHA” Series\nSTATUS: Active\n\n" + ProductionBreak + "\n\n" +
		"“BETA” Pilot / CW\nSTATUS: Casting\n\n" + ProductionBreak + "\n\n   \n"

	blocks := ParseStructured(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "### “ALPHA” Series\nSTATUS: Active", blocks[0])
	assert.Equal(t, "“BETA” Pilot / CW\nSTATUS: Casting", blocks[1])
}

func TestColumnMode_Valid(t *testing.T) {
	assert.True(t, ColumnsAuto.Valid())
	assert.True(t, ColumnsSingle.Valid())
	assert.True(t, ColumnsDouble.Valid())
	assert.False(t, ColumnMode("three").Valid())
	assert.False(t, ColumnMode("").Valid())
}
