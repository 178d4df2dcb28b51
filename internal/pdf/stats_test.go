package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStats_GetFileStats_Errors(t *testing.T) {
	stats := NewStats(1024 * 1024)

	tempDir := t.TempDir()
	fakePDFPath := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fakePDFPath, []byte("this is not a pdf at all"), 0o644); err != nil {
		t.Fatalf("failed to create fake PDF: %v", err)
	}

	tests := []struct {
		name    string
		req     PDFStatsFileRequest
		errPart string
	}{
		{
			name:    "empty path",
			req:     PDFStatsFileRequest{Path: ""},
			errPart: "path cannot be empty",
		},
		{
			name:    "non-existent file",
			req:     PDFStatsFileRequest{Path: filepath.Join(tempDir, "missing.pdf")},
			errPart: "file does not exist",
		},
		{
			name:    "unparseable file",
			req:     PDFStatsFileRequest{Path: fakePDFPath},
			errPart: "failed to open PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stats.GetFileStats(tt.req)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got %q", tt.errPart, err.Error())
			}
		})
	}
}

func TestStats_GetDirectoryStats(t *testing.T) {
	stats := NewStats(1024 * 1024)
	tempDir := t.TempDir()

	write := func(name string, size int) {
		t.Helper()
		data := make([]byte, size)
		if err := os.WriteFile(filepath.Join(tempDir, name), data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	write("PW_08-14-26.pdf", 100)
	write("PW_08-21-26.pdf", 300)
	write("notes.txt", 50)
	write("empty.pdf", 0) // skipped: fails basic validation

	result, err := stats.GetDirectoryStats(PDFStatsDirectoryRequest{Directory: tempDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalFiles != 2 {
		t.Errorf("expected 2 files, got %d", result.TotalFiles)
	}
	if result.TotalSize != 400 {
		t.Errorf("expected total size 400, got %d", result.TotalSize)
	}
	if result.LargestFileName != "PW_08-21-26.pdf" {
		t.Errorf("expected largest PW_08-21-26.pdf, got %s", result.LargestFileName)
	}
	if result.SmallestFileName != "PW_08-14-26.pdf" {
		t.Errorf("expected smallest PW_08-14-26.pdf, got %s", result.SmallestFileName)
	}
	if result.AverageFileSize != 200 {
		t.Errorf("expected average 200, got %d", result.AverageFileSize)
	}
}

func TestStats_GetDirectoryStats_Empty(t *testing.T) {
	stats := NewStats(1024 * 1024)

	result, err := stats.GetDirectoryStats(PDFStatsDirectoryRequest{Directory: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalFiles != 0 || result.TotalSize != 0 {
		t.Errorf("expected zero totals, got %+v", result)
	}

	if _, err := stats.GetDirectoryStats(PDFStatsDirectoryRequest{}); err == nil {
		t.Errorf("expected an error for an empty directory path")
	}
}
