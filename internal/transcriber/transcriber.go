// Package transcriber runs the page-by-page extraction of one PDF document.
package transcriber

import (
	"fmt"
	"time"

	"fjacquet/pdf-transcript/internal/extractor"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/pdferror"
	"fjacquet/pdf-transcript/internal/textutils"
	"fjacquet/pdf-transcript/internal/transcript"
)

// Transcriber extracts every page of a document with one engine and hands the
// pages, in physical order, to a transcript.Writer.
type Transcriber struct {
	engine    extractor.Engine
	logger    logging.Logger
	normalize textutils.Form
}

// Option configures a Transcriber.
type Option func(*Transcriber)

// WithNormalization applies a Unicode normalization form to every page.
func WithNormalization(form textutils.Form) Option {
	return func(t *Transcriber) {
		t.normalize = form
	}
}

// New creates a Transcriber using engine.
func New(engine extractor.Engine, logger logging.Logger, opts ...Option) *Transcriber {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	t := &Transcriber{
		engine:    engine,
		logger:    logger,
		normalize: textutils.FormNone,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Engine returns the engine used by the transcriber.
func (t *Transcriber) Engine() extractor.Engine {
	return t.engine
}

// Transcribe writes every page of the PDF at path to w and returns the number
// of pages written.
//
// When the engine is unavailable, the file is not opened and the
// *pdferror.CapabilityError is returned. Extraction stops at the first page
// that fails, returning a *pdferror.PageError; pages before it have already
// been written. Transcribe does not close w.
func (t *Transcriber) Transcribe(path string, w transcript.Writer) (int, error) {
	log := t.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldEngine, Value: t.engine.Name()},
	)

	if err := t.engine.Available(); err != nil {
		log.WithError(err).Warn("Extraction engine unavailable")
		return 0, err
	}

	start := time.Now()
	doc, err := t.engine.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := doc.Close(); err != nil {
			log.WithError(err).Warn("Failed to close document")
		}
	}()

	pages := doc.NumPages()
	log.Info("Extracting text", logging.Field{Key: logging.FieldPageCount, Value: pages})

	for n := 1; n <= pages; n++ {
		text, err := doc.PageText(n)
		if err != nil {
			log.WithError(err).Error("Page extraction failed", logging.Field{Key: logging.FieldPage, Value: n})
			return n - 1, &pdferror.PageError{Page: n, Err: err}
		}

		text = textutils.Normalize(textutils.CleanPageText(text), t.normalize)
		if err := w.WritePage(transcript.Page{Number: n, Text: text}); err != nil {
			return n - 1, fmt.Errorf("failed to write transcript: %w", err)
		}
		log.Debug("Extracted page",
			logging.Field{Key: logging.FieldPage, Value: n},
			logging.Field{Key: "chars", Value: len([]rune(text))})
	}

	log.Info("Extraction completed",
		logging.Field{Key: logging.FieldPageCount, Value: pages},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return pages, nil
}
