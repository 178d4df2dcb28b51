package layout

import (
	"regexp"
	"strings"

	"github.com/prodweekly/prodweekly/internal/pdf"
)

const (
	// TitlePrefix marks the headline of every production block in
	// structured output.
	TitlePrefix = "### "
	// ProductionBreak separates production blocks in the structured file.
	ProductionBreak = "----- PRODUCTION BREAK -----"
)

var reExtraBlank = regexp.MustCompile(`\n{3,}`)

// DefaultHeaderKills returns the masthead and folio patterns dropped before
// segmentation.
func DefaultHeaderKills() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\s*LAST UPDATED:`),
		regexp.MustCompile(`(?i)^\s*issue\s+\w+`),
		regexp.MustCompile(`(?i)^\s*#\d+\s+\d{2}/\d{2}\s*$`),
	}
}

// Document is the segmented output of one issue.
type Document struct {
	Productions []string
	Pages       []PageDump
}

// PageDump preserves the page's lines in reading order for debugging.
type PageDump struct {
	Number int
	Lines  []string
}

// Segmenter splits positioned pages into production blocks.
type Segmenter struct {
	cfg Config
}

// NewSegmenter creates a segmenter with the given tuning. Zero-value
// settings fall back to the defaults.
func NewSegmenter(cfg Config) *Segmenter {
	def := DefaultConfig()
	if cfg.Columns == "" {
		cfg.Columns = def.Columns
	}
	if cfg.ColMargin == 0 {
		cfg.ColMargin = def.ColMargin
	}
	if cfg.RowTolerance == 0 {
		cfg.RowTolerance = def.RowTolerance
	}
	if cfg.TitleRules == nil {
		cfg.TitleRules = def.TitleRules
	}
	if cfg.HeaderKills == nil {
		cfg.HeaderKills = def.HeaderKills
	}
	return &Segmenter{cfg: cfg}
}

// Segment walks the pages in reading order, starts a new production at
// every title line, and closes the open block at each page boundary.
func (s *Segmenter) Segment(pages []pdf.PageContent) *Document {
	doc := &Document{}
	var open []string

	flush := func() {
		if len(open) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(open, "\n"))
		text = reExtraBlank.ReplaceAllString(text, "\n\n")
		if text != "" {
			doc.Productions = append(doc.Productions, text)
		}
		open = nil
	}

	for _, page := range pages {
		lines := composeLines(page, s.cfg)
		stats := pageStats(lines)
		dump := PageDump{Number: page.Number}

		for _, ln := range lines {
			if s.killed(ln.Text) {
				continue
			}
			text := strings.TrimSpace(ln.Text)
			if text == "" {
				dump.Lines = append(dump.Lines, "")
				continue
			}

			ln.Text = text
			if s.isTitle(ln, stats) {
				flush()
				open = append(open, TitlePrefix+text)
			} else {
				open = append(open, text)
			}
			dump.Lines = append(dump.Lines, text)
		}

		doc.Pages = append(doc.Pages, dump)

		// A production never continues across a page boundary.
		flush()
	}

	return doc
}

func (s *Segmenter) killed(text string) bool {
	for _, re := range s.cfg.HeaderKills {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (s *Segmenter) isTitle(ln Line, stats PageStats) bool {
	for _, rule := range s.cfg.TitleRules {
		if rule.Matches(ln, stats) {
			return true
		}
	}
	return false
}

// StructuredText renders the productions as one structured document with
// break separators, the inverse of ParseStructured.
func StructuredText(productions []string) string {
	return strings.Join(productions, "\n\n"+ProductionBreak+"\n\n")
}

// ParseStructured splits a structured document back into production
// blocks, dropping chunks that do not open with a headline. Blank lines
// inside a block are removed.
func ParseStructured(text string) []string {
	var blocks []string
	for _, chunk := range strings.Split(text, ProductionBreak) {
		var lines []string
		for _, ln := range strings.Split(chunk, "\n") {
			if strings.TrimSpace(ln) != "" {
				lines = append(lines, ln)
			}
		}
		if len(lines) == 0 {
			continue
		}
		first := strings.TrimLeft(lines[0], " \t")
		if strings.HasPrefix(first, TitlePrefix) ||
			strings.HasPrefix(first, "“") || strings.HasPrefix(first, `"`) {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return blocks
}
