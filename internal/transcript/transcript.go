// Package transcript writes extracted pages in the supported output formats.
package transcript

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output format for transcripts.
type Format string

const (
	// FormatText writes "--- Page <n> ---", the page text and a blank line
	// for every page, as pages arrive.
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Formats returns the supported formats in a stable order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatCSV}
}

// ParseFormat converts a configuration value into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml', 'csv'", s)
}

// Page is the extracted text of one page. Number is 1-based.
type Page struct {
	Number int    `json:"page" yaml:"page" csv:"page"`
	Text   string `json:"text" yaml:"text" csv:"text"`
}

// Transcript is the structured form used by the json and yaml formats.
type Transcript struct {
	Source    string `json:"source" yaml:"source"`
	Engine    string `json:"engine" yaml:"engine"`
	PageCount int    `json:"page_count" yaml:"page_count"`
	Pages     []Page `json:"pages" yaml:"pages"`
}

// Options carries document metadata and format settings.
type Options struct {
	Source string
	Engine string
	// CSVDelimiter defaults to ','.
	CSVDelimiter rune
}

// Writer receives pages in order. Close flushes buffered formats; it does
// not close the underlying io.Writer.
type Writer interface {
	WritePage(p Page) error
	Close() error
}

// NewWriter returns a Writer for format that writes to out.
func NewWriter(format Format, out io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatText:
		return &textWriter{out: out}, nil
	case FormatJSON, FormatYAML, FormatCSV:
		if opts.CSVDelimiter == 0 {
			opts.CSVDelimiter = ','
		}
		return &bufferedWriter{format: format, out: out, opts: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
