package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Search finds issue PDFs to feed a run
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new issue discovery handler with the specified constraints
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// SearchDirectory lists the valid issue PDFs sitting directly in a
// directory, sorted by file name so issues process in date order. Query is
// an optional file-name glob such as "PW_*.pdf".
func (s *Search) SearchDirectory(req PDFSearchDirectoryRequest) (*PDFSearchDirectoryResult, error) {
	if req.Directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	absDirectory, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	entries, err := os.ReadDir(absDirectory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", absDirectory, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !s.isPDFFile(entry.Name()) {
			continue
		}
		if req.Query != "" {
			matched, err := filepath.Match(req.Query, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("bad file pattern %q: %w", req.Query, err)
			}
			if !matched {
				continue
			}
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(absDirectory, entry.Name())
		if s.validator.ValidateFileInfo(path, info) != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return &PDFSearchDirectoryResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// FindIssues returns the issue PDFs in a directory matching a glob pattern.
// An empty pattern matches every PDF.
func (s *Search) FindIssues(directory, pattern string) ([]FileInfo, error) {
	result, err := s.SearchDirectory(PDFSearchDirectoryRequest{
		Directory: directory,
		Query:     pattern,
	})
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// isPDFFile checks if a file has a PDF extension
func (s *Search) isPDFFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
