package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts positioned text fragments from PDF files
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new PDF reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// ExtractFile reads a PDF and returns every text fragment with its position
// and font metadata, page by page
func (r *Reader) ExtractFile(req PDFExtractFileRequest) (*PDFExtractFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	// Check if file exists and get basic info
	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	result := &PDFExtractFileResult{
		Path: req.Path,
		Size: fileInfo.Size(),
	}

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := r.extractPage(pdfReader, pageNum)
		result.FragmentCount += len(page.Fragments)
		result.Pages = append(result.Pages, page)
	}

	if result.FragmentCount == 0 {
		return nil, fmt.Errorf("no text content could be extracted from PDF")
	}

	return result, nil
}

// validatePDFFile performs basic validation on a PDF file
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// extractPage collects the fragments of a single page. Content parsing of a
// damaged page can panic inside the PDF library, so it is trapped here and
// the page comes back empty instead of killing the run.
func (r *Reader) extractPage(pdfReader *pdf.Reader, pageNum int) (content PageContent) {
	content = PageContent{Number: pageNum}

	defer func() {
		if recover() != nil {
			content.Fragments = nil
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return content
	}

	for _, text := range page.Content().Text {
		if text.S == "" {
			continue
		}
		frag := Fragment{
			Text:     text.S,
			X:        text.X,
			Y:        text.Y,
			W:        text.W,
			FontSize: text.FontSize,
			Font:     text.Font,
		}
		if frag.FontSize == 0 {
			frag.FontSize = 12.0 // Default when the font carries no size
		}
		if len(content.Fragments) == 0 || frag.X < content.MinX {
			content.MinX = frag.X
		}
		if right := frag.X + frag.W; right > content.MaxX {
			content.MaxX = right
		}
		content.Fragments = append(content.Fragments, frag)
	}

	return content
}
