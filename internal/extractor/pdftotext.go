package extractor

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/pdferror"
	"fjacquet/pdf-transcript/internal/validation"
)

// PDFToTextEngine extracts text by running poppler's pdftotext binary once
// per page. The page count comes from pdfcpu. The binary is an external
// dependency: Available reports a *pdferror.CapabilityError when it is missing.
type PDFToTextEngine struct {
	binary string
	layout bool
	logger logging.Logger

	lookPath  func(file string) (string, error)
	run       func(name string, args ...string) ([]byte, error)
	pageCount func(path string) (int, error)
}

// NewPDFToTextEngine creates a PDFToTextEngine running binary. With layout
// set, pdftotext keeps the physical layout of the page (-layout).
func NewPDFToTextEngine(binary string, layout bool, logger logging.Logger) *PDFToTextEngine {
	if binary == "" {
		binary = "pdftotext"
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PDFToTextEngine{
		binary:    binary,
		layout:    layout,
		logger:    logger,
		lookPath:  exec.LookPath,
		run:       runCommand,
		pageCount: validation.PageCount,
	}
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output() // #nosec G204 -- binary comes from configuration
}

// Name implements Engine.
func (e *PDFToTextEngine) Name() string {
	return string(PDFToText)
}

// Binary returns the configured pdftotext executable.
func (e *PDFToTextEngine) Binary() string {
	return e.binary
}

// Available implements Engine.
func (e *PDFToTextEngine) Available() error {
	if _, err := e.lookPath(e.binary); err != nil {
		return &pdferror.CapabilityError{
			Engine: e.Name(),
			Tool:   e.binary,
			Err:    err,
		}
	}
	return nil
}

// Open implements Engine.
func (e *PDFToTextEngine) Open(path string) (Document, error) {
	if err := e.Available(); err != nil {
		return nil, err
	}

	pages, err := e.pageCount(path)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Opened PDF with pdftotext engine",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldTool, Value: e.binary},
		logging.Field{Key: logging.FieldPageCount, Value: pages})

	return &pdftotextDocument{engine: e, path: path, pages: pages}, nil
}

type pdftotextDocument struct {
	engine *PDFToTextEngine
	path   string
	pages  int
}

func (d *pdftotextDocument) NumPages() int {
	return d.pages
}

func (d *pdftotextDocument) PageText(n int) (string, error) {
	if err := checkPageRange(n, d.pages); err != nil {
		return "", err
	}

	page := strconv.Itoa(n)
	args := []string{"-f", page, "-l", page, "-enc", "UTF-8"}
	if d.engine.layout {
		args = append(args, "-layout")
	}
	args = append(args, d.path, "-")

	out, err := d.engine.run(d.engine.binary, args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("error running %s: %w: %s", d.engine.binary, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("error running %s: %w", d.engine.binary, err)
	}
	return string(out), nil
}

// Close is a no-op: pdftotext opens the file itself on every call.
func (d *pdftotextDocument) Close() error {
	return nil
}
