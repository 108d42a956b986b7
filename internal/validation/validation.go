// Package validation checks input files before a transcript is produced and
// reads basic document information. PDF structure checks are delegated to pdfcpu.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/pdf-transcript/internal/pdferror"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating its configuration directory under the user's home.
	api.DisableConfigDir()
}

// Mode selects how strictly pdfcpu validates a document.
type Mode string

const (
	ModeRelaxed Mode = "relaxed"
	ModeStrict  Mode = "strict"
)

// ParseMode converts a configuration value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRelaxed:
		return ModeRelaxed, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("unsupported validation mode: %s. Supported modes are 'relaxed', 'strict'", s)
	}
}

// Info describes a PDF file.
type Info struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
	Pages   int    `json:"pages" yaml:"pages"`
	Size    int64  `json:"size_bytes" yaml:"size_bytes"`
}

// IsValidInputPath checks that path exists and is a regular file.
// The returned error wraps the underlying fs error.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path %s is not a regular file", path)
	}
	return nil
}

// ValidatePDF validates the structure of the PDF at path.
func ValidatePDF(path string, mode Mode) error {
	if err := IsValidInputPath(path); err != nil {
		return err
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if mode == ModeStrict {
		conf.ValidationMode = model.ValidationStrict
	}

	if err := api.ValidateFile(path, conf); err != nil {
		return &pdferror.InvalidFormatError{
			FilePath: path,
			Reason:   fmt.Sprintf("%s validation failed", mode),
			Err:      err,
		}
	}
	return nil
}

// PageCount returns the number of pages of the PDF at path.
func PageCount(path string) (int, error) {
	if err := IsValidInputPath(path); err != nil {
		return 0, err
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &pdferror.InvalidFormatError{
			FilePath: path,
			Reason:   "cannot read page count",
			Err:      err,
		}
	}
	return n, nil
}

// Inspect reads the PDF version, page count and size of the PDF at path.
func Inspect(path string) (*Info, error) {
	if err := IsValidInputPath(path); err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access input file %s: %w", path, err)
	}

	version, err := pdfVersion(path)
	if err != nil {
		return nil, err
	}

	pages, err := PageCount(path)
	if err != nil {
		return nil, err
	}

	return &Info{
		Path:    path,
		Version: version,
		Pages:   pages,
		Size:    stat.Size(),
	}, nil
}

// pdfVersion returns the effective PDF version read by pdfcpu, for example
// "1.7". A version in the document catalog overrides the file header.
func pdfVersion(path string) (string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return "", &pdferror.InvalidFormatError{
			FilePath: path,
			Reason:   "cannot read PDF header",
			Err:      err,
		}
	}
	return ctx.XRefTable.Version().String(), nil
}
