package container

import (
	"bytes"
	"testing"

	"fjacquet/pdf-transcript/internal/config"
	"fjacquet/pdf-transcript/internal/extractor"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/transcript"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:        config.LogConfig{Level: "info", Format: "text"},
		Extract:    config.ExtractConfig{Engine: "native", Format: "text", Normalize: "none"},
		Validation: config.ValidationConfig{Mode: "relaxed"},
		PDFToText:  config.PDFToTextConfig{Binary: "pdftotext", Layout: true},
		CSV:        config.CSVConfig{Delimiter: ","},
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "valid config",
			config: testConfig(),
		},
		{
			name: "json logging",
			config: func() *config.Config {
				cfg := testConfig()
				cfg.Log = config.LogConfig{Level: "debug", Format: "json"}
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config, WithLogger(logging.NewMockLogger()))

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLogger())
			assert.Len(t, c.GetEngines(), 2)
		})
	}
}

func TestNewContainer_BuildsLoggerFromConfig(t *testing.T) {
	c, err := NewContainer(testConfig())
	require.NoError(t, err)

	_, ok := c.GetLogger().(*logging.LogrusAdapter)
	assert.True(t, ok)
}

func TestGetEngine(t *testing.T) {
	c, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	for _, et := range extractor.EngineTypes() {
		t.Run(string(et), func(t *testing.T) {
			e, err := c.GetEngine(et)
			require.NoError(t, err)
			assert.Equal(t, string(et), e.Name())
		})
	}

	_, err = c.GetEngine("ocr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine type: ocr")
}

func TestGetEngine_PDFToTextUsesConfiguredBinary(t *testing.T) {
	cfg := testConfig()
	cfg.PDFToText.Binary = "/opt/poppler/bin/pdftotext"

	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	e, err := c.GetEngine(extractor.PDFToText)
	require.NoError(t, err)
	p, ok := e.(*extractor.PDFToTextEngine)
	require.True(t, ok)
	assert.Equal(t, "/opt/poppler/bin/pdftotext", p.Binary())
}

func TestGetEngines_ReturnsCopy(t *testing.T) {
	c, err := NewContainer(testConfig(), WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	engines := c.GetEngines()
	delete(engines, extractor.Native)

	_, err = c.GetEngine(extractor.Native)
	assert.NoError(t, err, "registry must not be modified through the copy")
}

func TestNewTranscriber(t *testing.T) {
	cfg := testConfig()
	cfg.Extract.Normalize = "nfkc"
	mock := extractor.NewMockEngine("\ufb01nance")

	c, err := NewContainer(cfg,
		WithLogger(logging.NewMockLogger()),
		WithEngine(extractor.Native, mock))
	require.NoError(t, err)

	tr, err := c.NewTranscriber(extractor.Native)
	require.NoError(t, err)
	assert.Same(t, mock, tr.Engine())

	var buf bytes.Buffer
	w, err := transcript.NewWriter(transcript.FormatText, &buf, transcript.Options{})
	require.NoError(t, err)

	n, err := tr.Transcribe("doc.pdf", w)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, 1, n)
	assert.Equal(t, "--- Page 1 ---\nfinance\n\n", buf.String())
}

func TestNewTranscriber_Errors(t *testing.T) {
	cfg := testConfig()
	c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	_, err = c.NewTranscriber("ocr")
	assert.Error(t, err)

	cfg.Extract.Normalize = "nfd"
	_, err = c.NewTranscriber(extractor.Native)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported normalization form")
}
