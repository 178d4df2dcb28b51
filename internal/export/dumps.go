package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prodweekly/prodweekly/internal/layout"
)

// WriteStructured writes the whole-issue structured text file with
// production break separators.
func WriteStructured(path string, productions []string) error {
	if err := os.WriteFile(path, []byte(layout.StructuredText(productions)), 0o644); err != nil {
		return fmt.Errorf("cannot write structured text %s: %w", path, err)
	}
	return nil
}

// WritePageDumps writes one reading-order dump per page into dir, named
// <stem>_pNNNN.txt.
func WritePageDumps(dir, stem string, pages []layout.PageDump) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create page dump dir: %w", err)
	}
	for _, p := range pages {
		name := fmt.Sprintf("%s_p%04d.txt", stem, p.Number)
		body := strings.Join(p.Lines, "\n\n")
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			return fmt.Errorf("cannot write page dump %s: %w", name, err)
		}
	}
	return nil
}

// WriteProductions writes one file per production block into dir, named
// <stem>_prodNNNN.txt in document order.
func WriteProductions(dir, stem string, productions []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create productions dir: %w", err)
	}
	for i, text := range productions {
		name := fmt.Sprintf("%s_prod%04d.txt", stem, i+1)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			return fmt.Errorf("cannot write production dump %s: %w", name, err)
		}
	}
	return nil
}
