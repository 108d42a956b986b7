package transcript

import (
	"fmt"
	"io"
)

type textWriter struct {
	out io.Writer
}

func (w *textWriter) WritePage(p Page) error {
	if _, err := fmt.Fprintf(w.out, "--- Page %d ---\n%s\n\n", p.Number, p.Text); err != nil {
		return fmt.Errorf("failed to write page %d: %w", p.Number, err)
	}
	return nil
}

func (w *textWriter) Close() error {
	return nil
}
