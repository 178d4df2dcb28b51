package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prodweekly/prodweekly/internal/export"
	"github.com/prodweekly/prodweekly/internal/layout"
	"github.com/prodweekly/prodweekly/internal/pdf"
	"github.com/prodweekly/prodweekly/internal/records"
)

// ExtractRequest names one issue input and where its outputs go. Input is
// an issue PDF or the structured text dump of an earlier run.
type ExtractRequest struct {
	Input  string
	OutDir string
	// Label names the run's output files; empty defaults to the input
	// file stem.
	Label string
	// PageDumps additionally writes per-page text dumps.
	PageDumps bool
}

// ExtractResult lists what one extraction wrote. Structured is empty when
// the input already was a structured dump.
type ExtractResult struct {
	Label      string
	CSV        string
	Baseline   string
	Filtered   string
	Structured string
	Kept       int
	Excluded   int
	Pages      int
}

// Extract turns one issue into the canonical run outputs: the FullSchema
// CSV, the baseline and filtered title lists, and for PDF input the
// structured text dump plus per-production files.
func (s *Service) Extract(req ExtractRequest) (*ExtractResult, error) {
	stem := strings.TrimSuffix(filepath.Base(req.Input), filepath.Ext(req.Input))
	label := req.Label
	if label == "" {
		label = stem
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	doc, fromPDF, err := s.loadDocument(req.Input)
	if err != nil {
		return nil, err
	}
	s.log.Info("extract.segmented",
		"input", req.Input,
		"pages", len(doc.Pages),
		"productions", len(doc.Productions),
	)

	build := s.builder.Build(doc.Productions)

	safe := export.SafeLabel(label)
	res := &ExtractResult{
		Label:    label,
		CSV:      filepath.Join(req.OutDir, safe+"_FullSchema.csv"),
		Baseline: filepath.Join(req.OutDir, safe+"_baseline_titles.txt"),
		Filtered: filepath.Join(req.OutDir, safe+"_filtered_titles.txt"),
		Kept:     len(build.Rows),
		Excluded: len(build.Filtered),
		Pages:    len(doc.Pages),
	}

	if err := export.WriteCSV(res.CSV, records.Schema, build.Rows); err != nil {
		return nil, fmt.Errorf("write schema csv: %w", err)
	}
	if err := export.WriteTitles(res.Baseline, build.Baseline); err != nil {
		return nil, fmt.Errorf("write baseline titles: %w", err)
	}
	if err := export.WriteTitles(res.Filtered, build.Filtered); err != nil {
		return nil, fmt.Errorf("write filtered titles: %w", err)
	}

	if fromPDF {
		// Dump files keep the legacy naming of the noise-stripped text.
		dumpStem := stem + "_cleaned"
		res.Structured = filepath.Join(req.OutDir, dumpStem+".structured.txt")
		if err := export.WriteStructured(res.Structured, doc.Productions); err != nil {
			return nil, fmt.Errorf("write structured text: %w", err)
		}
		if err := export.WriteProductions(filepath.Join(req.OutDir, "productions"), dumpStem, doc.Productions); err != nil {
			return nil, fmt.Errorf("write production dumps: %w", err)
		}
		if req.PageDumps {
			if err := export.WritePageDumps(filepath.Join(req.OutDir, "pages"), dumpStem, doc.Pages); err != nil {
				return nil, fmt.Errorf("write page dumps: %w", err)
			}
		}
	}

	s.log.Info("extract.done",
		"label", label,
		"kept", res.Kept,
		"excluded", res.Excluded,
		"csv", res.CSV,
	)
	return res, nil
}

// loadDocument reads the input into a segmented document. A .txt input is
// parsed as a structured dump; anything else goes through PDF validation
// and extraction.
func (s *Service) loadDocument(input string) (*layout.Document, bool, error) {
	if strings.EqualFold(filepath.Ext(input), ".txt") {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, false, fmt.Errorf("read structured text: %w", err)
		}
		return &layout.Document{Productions: layout.ParseStructured(string(data))}, false, nil
	}

	val, err := s.validator.ValidateFile(pdf.PDFValidateFileRequest{Path: input})
	if err != nil {
		return nil, false, fmt.Errorf("validate pdf: %w", err)
	}
	if !val.Valid {
		return nil, false, fmt.Errorf("invalid pdf %s: %s", input, val.Message)
	}

	extracted, err := s.reader.ExtractFile(pdf.PDFExtractFileRequest{Path: input})
	if err != nil {
		return nil, false, fmt.Errorf("extract pdf: %w", err)
	}
	return s.seg.Segment(extracted.Pages), true, nil
}
