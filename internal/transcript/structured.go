package transcript

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// bufferedWriter collects pages and serializes the whole transcript on Close.
type bufferedWriter struct {
	format Format
	out    io.Writer
	opts   Options
	pages  []Page
	closed bool
}

func (w *bufferedWriter) WritePage(p Page) error {
	if w.closed {
		return fmt.Errorf("transcript writer already closed")
	}
	w.pages = append(w.pages, p)
	return nil
}

func (w *bufferedWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	pages := w.pages
	if pages == nil {
		pages = []Page{}
	}
	doc := Transcript{
		Source:    w.opts.Source,
		Engine:    w.opts.Engine,
		PageCount: len(pages),
		Pages:     pages,
	}

	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON transcript: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML transcript: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML transcript: %w", err)
		}
	case FormatCSV:
		csvWriter := csv.NewWriter(w.out)
		csvWriter.Comma = w.opts.CSVDelimiter
		if err := gocsv.MarshalCSV(pages, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("failed to encode CSV transcript: %w", err)
		}
	}
	return nil
}
