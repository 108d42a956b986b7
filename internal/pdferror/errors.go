// Package pdferror defines the error types returned while producing a transcript.
package pdferror

import (
	"errors"
	"fmt"
)

// ErrCapabilityUnavailable is matched by errors.Is for every *CapabilityError.
var ErrCapabilityUnavailable = errors.New("extraction capability unavailable")

// CapabilityError reports that an extraction engine cannot run in this
// environment, typically because an external tool is not installed.
type CapabilityError struct {
	Engine string
	Tool   string
	Err    error
}

func (e *CapabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine %s unavailable: %s not found: %v", e.Engine, e.Tool, e.Err)
	}
	return fmt.Sprintf("engine %s unavailable: %s not found", e.Engine, e.Tool)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCapabilityUnavailable) true.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapabilityUnavailable
}

// PageError represents a failure to extract the text of a single page.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that is not a readable PDF.
type InvalidFormatError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid PDF '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid PDF '%s': %s", e.FilePath, e.Reason)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
