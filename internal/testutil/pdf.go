// Package testutil builds small, valid PDF documents for tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BuildPDF returns an uncompressed PDF 1.4 document with one page per entry
// in pages. Each page shows its text in Helvetica, one line per "\n"
// separated segment. BuildPDF() yields a valid document with zero pages.
func BuildPDF(pages ...string) []byte {
	// Object numbers: 1 catalog, 2 page tree, 3 font, then a page and a
	// content stream object per page.
	objects := []string{"", "", "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"}

	kids := make([]string, 0, len(pages))
	for i, text := range pages {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		content := contentStream(text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects[0] = "<< /Type /Catalog /Pages 2 0 R >>"
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>", strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset)

	return buf.Bytes()
}

func contentStream(text string) string {
	var sb strings.Builder
	sb.WriteString("BT\n/F1 12 Tf\n14 TL\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("T*\n")
		}
		fmt.Fprintf(&sb, "(%s) Tj\n", escape(line))
	}
	sb.WriteString("ET")
	return sb.String()
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}

// WithCREOL rewrites a document from BuildPDF to end its lines with a bare
// "\r", as many producers do. The "stream" keyword keeps its "\n", which
// the format requires, so every byte offset stays valid.
func WithCREOL(data []byte) []byte {
	out := bytes.ReplaceAll(data, []byte("\n"), []byte("\r"))
	return bytes.ReplaceAll(out, []byte("stream\r"), []byte("stream\n"))
}

// WritePDF writes BuildPDF(pages...) to name inside a fresh temporary
// directory and returns the file path.
func WritePDF(t testing.TB, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, BuildPDF(pages...), 0600); err != nil {
		t.Fatalf("failed to write test PDF: %v", err)
	}
	return path
}

// WriteFile writes arbitrary content to name inside a fresh temporary
// directory and returns the file path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}
