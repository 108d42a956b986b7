// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/pdf-transcript/internal/fileutils"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/transcriber"
	"fjacquet/pdf-transcript/internal/transcript"
	"fjacquet/pdf-transcript/internal/validation"
)

// ErrNoInput is returned when neither a positional argument nor --input names a file.
var ErrNoInput = errors.New("no input file given: pass a PDF path as argument or with --input")

// ResolveInput returns the input path. A positional argument takes precedence
// over the --input flag.
func ResolveInput(args []string, inputFlag string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if inputFlag != "" {
		return inputFlag, nil
	}
	return "", ErrNoInput
}

// ProcessOptions describes one transcript run.
type ProcessOptions struct {
	Input        string
	Output       string
	Format       transcript.Format
	Validate     bool
	Mode         validation.Mode
	CSVDelimiter rune
}

// ProcessFile transcribes opts.Input with t and writes the transcript to
// opts.Output, or to stdout when no output file is given.
//
// The engine is checked before the input file is touched, so a missing
// capability is reported even for a path that does not exist. For the text
// format, pages written before a page error stay on the output; structured
// formats are only written when every page succeeded, and an output file
// that received nothing is not created.
func ProcessFile(t *transcriber.Transcriber, opts ProcessOptions, stdout io.Writer, log logging.Logger) (n int, err error) {
	if err := t.Engine().Available(); err != nil {
		return 0, err
	}

	if err := validation.IsValidInputPath(opts.Input); err != nil {
		return 0, err
	}

	if opts.Validate {
		log.Info("Validating format...", logging.Field{Key: logging.FieldMode, Value: opts.Mode})
		if err := validation.ValidatePDF(opts.Input, opts.Mode); err != nil {
			return 0, err
		}
		log.Info("Validation successful.")
	}

	out, err := fileutils.OpenOutput(opts.Output, stdout)
	if err != nil {
		return 0, err
	}
	defer func() {
		finish := out.Close
		if err != nil {
			finish = out.Discard
		}
		if cerr := finish(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output")
			if err == nil {
				err = fmt.Errorf("failed to write transcript: %w", cerr)
			}
		}
	}()

	w, err := transcript.NewWriter(opts.Format, out, transcript.Options{
		Source:       opts.Input,
		Engine:       t.Engine().Name(),
		CSVDelimiter: opts.CSVDelimiter,
	})
	if err != nil {
		return 0, err
	}

	n, err = t.Transcribe(opts.Input, w)
	if err != nil {
		return n, err
	}

	if err := w.Close(); err != nil {
		return n, fmt.Errorf("failed to write transcript: %w", err)
	}
	return n, nil
}
