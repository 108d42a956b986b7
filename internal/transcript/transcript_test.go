package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeAll(t *testing.T, format Format, opts Options, pages ...Page) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(format, &buf, opts)
	require.NoError(t, err)
	for _, p := range pages {
		require.NoError(t, w.WritePage(p))
	}
	require.NoError(t, w.Close())
	return buf.String()
}

var helloWorld = []Page{{Number: 1, Text: "Hello"}, {Number: 2, Text: "World"}}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "text", expected: FormatText},
		{input: "JSON", expected: FormatJSON},
		{input: " yaml ", expected: FormatYAML},
		{input: "csv", expected: FormatCSV},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(Format("html"), &bytes.Buffer{}, Options{})
	assert.Error(t, err)
}

func TestTextWriter_HelloWorld(t *testing.T) {
	out := writeAll(t, FormatText, Options{}, helloWorld...)

	assert.Equal(t, "--- Page 1 ---\nHello\n\n--- Page 2 ---\nWorld\n\n", out)
}

func TestTextWriter_ZeroPages(t *testing.T) {
	assert.Empty(t, writeAll(t, FormatText, Options{}))
}

func TestTextWriter_EmptyPageKeepsBlock(t *testing.T) {
	out := writeAll(t, FormatText, Options{}, Page{Number: 1, Text: ""})

	assert.Equal(t, "--- Page 1 ---\n\n\n", out)
}

func TestTextWriter_StreamsEachPage(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatText, &buf, Options{})
	require.NoError(t, err)

	require.NoError(t, w.WritePage(Page{Number: 1, Text: "first"}))
	assert.Equal(t, "--- Page 1 ---\nfirst\n\n", buf.String(), "text pages are written before Close")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextWriter_WriteError(t *testing.T) {
	w, err := NewWriter(FormatText, failingWriter{}, Options{})
	require.NoError(t, err)

	err = w.WritePage(Page{Number: 3, Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write page 3")
}

func TestJSONWriter(t *testing.T) {
	out := writeAll(t, FormatJSON, Options{Source: "doc.pdf", Engine: "native"}, Page{Number: 1, Text: "Hello <b>"})

	expected := `{
  "source": "doc.pdf",
  "engine": "native",
  "page_count": 1,
  "pages": [
    {
      "page": 1,
      "text": "Hello <b>"
    }
  ]
}
`
	assert.Equal(t, expected, out)
}

func TestJSONWriter_ZeroPages(t *testing.T) {
	out := writeAll(t, FormatJSON, Options{Source: "empty.pdf", Engine: "native"})

	var doc Transcript
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 0, doc.PageCount)
	assert.NotNil(t, doc.Pages)
	assert.Contains(t, out, `"pages": []`)
}

func TestYAMLWriter(t *testing.T) {
	out := writeAll(t, FormatYAML, Options{Source: "doc.pdf", Engine: "pdftotext"}, Page{Number: 1, Text: "line one\nline two"}, Page{Number: 2, Text: "World"})

	var doc Transcript
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "doc.pdf", doc.Source)
	assert.Equal(t, "pdftotext", doc.Engine)
	assert.Equal(t, 2, doc.PageCount)
	assert.Equal(t, []Page{{Number: 1, Text: "line one\nline two"}, {Number: 2, Text: "World"}}, doc.Pages)
}

func TestCSVWriter(t *testing.T) {
	out := writeAll(t, FormatCSV, Options{}, helloWorld...)

	assert.Equal(t, "page,text\n1,Hello\n2,World\n", out)
}

func TestCSVWriter_DelimiterAndQuoting(t *testing.T) {
	out := writeAll(t, FormatCSV, Options{CSVDelimiter: ';'}, Page{Number: 1, Text: "a;b\nc"})

	assert.Equal(t, "page;text\n1;\"a;b\nc\"\n", out)
}

func TestCSVWriter_ZeroPagesWritesHeader(t *testing.T) {
	assert.Equal(t, "page,text\n", writeAll(t, FormatCSV, Options{}))
}

func TestBufferedWriter_NothingBeforeClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(FormatJSON, &buf, Options{})
	require.NoError(t, err)

	require.NoError(t, w.WritePage(Page{Number: 1, Text: "x"}))
	assert.Empty(t, buf.String())

	require.NoError(t, w.Close())
	assert.NotEmpty(t, buf.String())

	assert.Error(t, w.WritePage(Page{Number: 2, Text: "y"}))
	assert.NoError(t, w.Close(), "second Close is a no-op")
}

func TestWriters_Idempotent(t *testing.T) {
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			opts := Options{Source: "doc.pdf", Engine: "native"}
			assert.Equal(t, writeAll(t, format, opts, helloWorld...), writeAll(t, format, opts, helloWorld...))
		})
	}
}
