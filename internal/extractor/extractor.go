// Package extractor provides the engines that turn PDF pages into plain text.
//
// Extraction is best effort: the text layer is read in content-stream order.
// Layout, tables and images are not reconstructed, and scanned pages without
// a text layer yield empty text.
package extractor

import (
	"fmt"
	"strings"
)

// EngineType names an extraction engine.
type EngineType string

const (
	// Native extracts text in-process with github.com/ledongthuc/pdf.
	Native EngineType = "native"
	// PDFToText runs poppler's pdftotext binary once per page.
	PDFToText EngineType = "pdftotext"
)

// EngineTypes returns all engine types in a stable order.
func EngineTypes() []EngineType {
	return []EngineType{Native, PDFToText}
}

// ParseEngineType converts a configuration value into an EngineType.
func ParseEngineType(s string) (EngineType, error) {
	switch EngineType(strings.ToLower(strings.TrimSpace(s))) {
	case Native:
		return Native, nil
	case PDFToText:
		return PDFToText, nil
	default:
		return "", fmt.Errorf("unknown engine: %s. Supported engines are 'native', 'pdftotext'", s)
	}
}

// Engine opens PDF documents for text extraction.
type Engine interface {
	// Name returns the engine type as a string.
	Name() string

	// Available reports whether the engine can run in this environment.
	// It returns a *pdferror.CapabilityError when a required tool is missing.
	Available() error

	// Open opens the PDF at path. The caller must Close the document.
	Open(path string) (Document, error)
}

// Document is an opened PDF.
type Document interface {
	// NumPages returns the number of pages.
	NumPages() int

	// PageText returns the plain text of page n, 1 <= n <= NumPages().
	PageText(n int) (string, error)

	// Close releases the underlying file.
	Close() error
}

func checkPageRange(n, pages int) error {
	if n < 1 || n > pages {
		return fmt.Errorf("page %d out of range [1, %d]", n, pages)
	}
	return nil
}
