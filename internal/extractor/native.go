package extractor

import (
	"fmt"
	"os"

	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/pdferror"

	"github.com/ledongthuc/pdf"
)

// NativeEngine extracts text with the pure-Go github.com/ledongthuc/pdf reader.
// It has no runtime dependencies and is always available.
type NativeEngine struct {
	logger logging.Logger
}

// NewNativeEngine creates a NativeEngine.
func NewNativeEngine(logger logging.Logger) *NativeEngine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &NativeEngine{logger: logger}
}

// Name implements Engine.
func (e *NativeEngine) Name() string {
	return string(Native)
}

// Available implements Engine.
func (e *NativeEngine) Available() error {
	return nil
}

// Open implements Engine.
func (e *NativeEngine) Open(path string) (Document, error) {
	f, err := os.Open(path) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	r, err := newReader(f, stat.Size())
	if err != nil {
		_ = f.Close()
		return nil, &pdferror.InvalidFormatError{
			FilePath: path,
			Reason:   "cannot read PDF structure",
			Err:      err,
		}
	}

	doc := &nativeDocument{file: f, reader: r}
	doc.pages, err = doc.numPages()
	if err != nil {
		_ = f.Close()
		return nil, &pdferror.InvalidFormatError{
			FilePath: path,
			Reason:   "cannot read page tree",
			Err:      err,
		}
	}

	e.logger.Debug("Opened PDF with native engine",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldPageCount, Value: doc.pages})

	return doc, nil
}

// newReader turns panics of the PDF reader on malformed input into errors.
func newReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("malformed PDF: %v", rec)
		}
	}()
	return pdf.NewReader(f, size)
}

type nativeDocument struct {
	file   *os.File
	reader *pdf.Reader
	pages  int
}

func (d *nativeDocument) numPages() (n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			n, err = 0, fmt.Errorf("malformed page tree: %v", rec)
		}
	}()
	return d.reader.NumPage(), nil
}

func (d *nativeDocument) NumPages() int {
	return d.pages
}

func (d *nativeDocument) PageText(n int) (text string, err error) {
	if err := checkPageRange(n, d.pages); err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("malformed page content: %v", rec)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	// A nil font map makes the reader resolve the page's own font resources.
	return p.GetPlainText(nil)
}

func (d *nativeDocument) Close() error {
	return d.file.Close()
}
