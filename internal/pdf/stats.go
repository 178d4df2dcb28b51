package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Stats handles PDF statistics operations
type Stats struct {
	maxFileSize int64
	validator   *Validator
}

// NewStats creates a new PDF stats analyzer with the specified constraints
func NewStats(maxFileSize int64) *Stats {
	return &Stats{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// GetFileStats returns detailed statistics about a single issue PDF
func (s *Stats) GetFileStats(req PDFStatsFileRequest) (*PDFStatsFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	result := &PDFStatsFileResult{
		Path:         req.Path,
		Size:         fileInfo.Size(),
		Pages:        r.NumPage(),
		ModifiedDate: fileInfo.ModTime().Format("2006-01-02 15:04:05"),
	}

	s.extractMetadata(r, result)

	return result, nil
}

// GetDirectoryStats summarizes the issue PDFs sitting directly in a
// directory. The scan is flat because weekly drops arrive as a single
// folder of PDFs, never nested.
func (s *Stats) GetDirectoryStats(req PDFStatsDirectoryRequest) (*PDFStatsDirectoryResult, error) {
	directory := req.Directory
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", directory, err)
	}

	result := &PDFStatsDirectoryResult{Directory: directory}
	var smallest int64 = -1

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(directory, entry.Name())
		if s.validator.ValidateFileInfo(path, info) != nil {
			continue
		}

		result.TotalFiles++
		result.TotalSize += info.Size()

		if info.Size() > result.LargestFileSize {
			result.LargestFileSize = info.Size()
			result.LargestFileName = entry.Name()
		}
		if smallest < 0 || info.Size() < smallest {
			smallest = info.Size()
			result.SmallestFileSize = info.Size()
			result.SmallestFileName = entry.Name()
		}
	}

	if result.TotalFiles > 0 {
		result.AverageFileSize = result.TotalSize / int64(result.TotalFiles)
	}

	return result, nil
}

// extractMetadata safely extracts metadata from PDF reader
func (s *Stats) extractMetadata(r *pdf.Reader, result *PDFStatsFileResult) {
	defer func() {
		// Malformed info dictionaries panic inside the library
		if recover() != nil {
			result.Title = ""
		}
	}()

	trailer := r.Trailer()
	if trailer.IsNull() {
		return
	}

	info := trailer.Key("Info")
	if info.IsNull() {
		return
	}

	read := func(key string) string {
		v := info.Key(key)
		if v.IsNull() {
			return ""
		}
		return strings.TrimSpace(v.String())
	}

	result.Title = read("Title")
	result.Author = read("Author")
	result.Subject = read("Subject")
	result.Producer = read("Producer")
	result.CreatedDate = read("CreationDate")
}
