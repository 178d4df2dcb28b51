package pdf

import "strings"

// FileInfo represents information about a PDF file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Fragment is one positioned text run from a PDF page. Coordinates are PDF
// points with the origin at the lower-left corner, so larger Y means higher
// on the page.
type Fragment struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	FontSize float64 `json:"font_size"`
	Font     string  `json:"font"`
}

// Bold reports whether the fragment's font name marks a heavy face.
func (f Fragment) Bold() bool {
	return strings.Contains(f.Font, "Bold") ||
		strings.Contains(f.Font, "Black") ||
		strings.Contains(f.Font, "Heavy")
}

// PageContent holds the positioned fragments of a single page in document
// order as emitted by the content stream.
type PageContent struct {
	Number    int        `json:"number"`
	MinX      float64    `json:"min_x"`
	MaxX      float64    `json:"max_x"`
	Fragments []Fragment `json:"fragments"`
}

// Midline returns the horizontal center of the page's printed area, used to
// split double-column layouts. Falls back to half of US Letter width when
// the page carried no fragments.
func (p PageContent) Midline() float64 {
	if len(p.Fragments) == 0 || p.MaxX <= p.MinX {
		return letterWidth / 2
	}
	return (p.MinX + p.MaxX) / 2
}

const letterWidth = 612.0

// Request Types

// PDFExtractFileRequest represents a request to extract positioned text from a PDF file
type PDFExtractFileRequest struct {
	Path string `json:"path"`
}

// PDFValidateFileRequest represents a request to validate a PDF file
type PDFValidateFileRequest struct {
	Path string `json:"path"`
}

// PDFStatsFileRequest represents a request to get stats about a PDF file
type PDFStatsFileRequest struct {
	Path string `json:"path"`
}

// PDFSearchDirectoryRequest represents a request to find issue PDFs in a directory
type PDFSearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// PDFStatsDirectoryRequest represents a request to get directory statistics
type PDFStatsDirectoryRequest struct {
	Directory string `json:"directory"`
}

// Response Types

// PDFExtractFileResult represents the result of a positioned text extraction
type PDFExtractFileResult struct {
	Path          string        `json:"path"`
	Pages         []PageContent `json:"pages"`
	Size          int64         `json:"size"`
	FragmentCount int           `json:"fragment_count"`
}

// PDFValidateFileResult represents the result of a PDF validation operation
type PDFValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// PDFStatsFileResult represents the result of a PDF file stats operation
type PDFStatsFileResult struct {
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	Pages        int    `json:"pages"`
	CreatedDate  string `json:"created_date,omitempty"`
	ModifiedDate string `json:"modified_date"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Producer     string `json:"producer,omitempty"`
}

// PDFSearchDirectoryResult represents the result of an issue PDF search
type PDFSearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// PDFStatsDirectoryResult represents the result of directory statistics
type PDFStatsDirectoryResult struct {
	Directory        string `json:"directory"`
	TotalFiles       int    `json:"total_files"`
	TotalSize        int64  `json:"total_size"`
	LargestFileSize  int64  `json:"largest_file_size"`
	LargestFileName  string `json:"largest_file_name"`
	SmallestFileSize int64  `json:"smallest_file_size"`
	SmallestFileName string `json:"smallest_file_name"`
	AverageFileSize  int64  `json:"average_file_size"`
}
