package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pdf-transcript/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	os.Exit(m.Run())
}

// isolate runs the test in an empty working directory with an empty HOME so
// that no config.yaml or .env file of the developer is picked up.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	for _, key := range []string{"PDFTX_LOG_LEVEL", "PDFTX_EXTRACT_ENGINE", "PDFTX_EXTRACT_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	root.ConfigFile = ""
	t.Cleanup(func() { root.SetContainer(nil) })
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "pdf-transcript", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "PDF file page by page")
	assert.Contains(t, root.Cmd.Long, "--- Page 1 ---")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceUsage)
	assert.True(t, root.Cmd.SilenceErrors)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInitialize_Defaults(t *testing.T) {
	isolate(t)

	require.NoError(t, root.Cmd.PersistentPreRunE(&cobra.Command{}, nil))

	c := root.GetContainer()
	require.NotNil(t, c)
	cfg := c.GetConfig()
	assert.Equal(t, "native", cfg.Extract.Engine)
	assert.Equal(t, "text", cfg.Extract.Format)
	assert.Empty(t, cfg.FileUsed)
}

func TestInitialize_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PDFTX_EXTRACT_ENGINE", "pdftotext")

	require.NoError(t, root.Cmd.PersistentPreRunE(&cobra.Command{}, nil))
	assert.Equal(t, "pdftotext", root.GetContainer().GetConfig().Extract.Engine)
}

func TestInitialize_ExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extract:\n  format: json\n"), 0600))
	root.ConfigFile = path

	require.NoError(t, root.Cmd.PersistentPreRunE(&cobra.Command{}, nil))
	cfg := root.GetContainer().GetConfig()
	assert.Equal(t, "json", cfg.Extract.Format)
	assert.Equal(t, path, cfg.FileUsed)
}

func TestInitialize_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("PDFTX_EXTRACT_ENGINE", "ocr")

	err := root.Cmd.PersistentPreRunE(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid engine")
	assert.Nil(t, root.GetContainer())
}

func TestInitialize_FlagOverridesEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PDFTX_LOG_LEVEL", "warn")

	cmd := &cobra.Command{}
	cmd.Flags().String("log-level", "", "")
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))

	require.NoError(t, root.Cmd.PersistentPreRunE(cmd, nil))
	assert.Equal(t, "debug", root.GetContainer().GetConfig().Log.Level)
}

func TestGetLogger_WithoutContainer(t *testing.T) {
	root.SetContainer(nil)
	assert.NotNil(t, root.GetLogger())
}
