package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/view"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "notepad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("seed", "", "")
	fs.Int("preview-width", view.DefaultPreviewWidth, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Config{PreviewWidth: view.DefaultPreviewWidth, Color: true}, cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "seed: notes/*.md\npreview_width: 30\ncolor: false\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "notes/*.md", cfg.Seed)
	assert.Equal(t, 30, cfg.PreviewWidth)
	assert.False(t, cfg.Color)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "preview_width: 25\n")
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.PreviewWidth)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "seed: from-file\npreview_width: 30\n")

	t.Run("Env Overrides File", func(t *testing.T) {
		t.Setenv("NOTEPAD_PREVIEW_WIDTH", "33")

		cfg, err := Load(path, newFlags())
		require.NoError(t, err)
		assert.Equal(t, 33, cfg.PreviewWidth)
		assert.Equal(t, "from-file", cfg.Seed, "unset flags must not override the file")
	})

	t.Run("Flag Overrides Env", func(t *testing.T) {
		t.Setenv("NOTEPAD_SEED", "from-env")
		flags := newFlags()
		require.NoError(t, flags.Set("seed", "from-flag"))

		cfg, err := Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Seed)
	})
}

func TestLoad_RejectsNonPositiveWidth(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "preview_width: 0\n")

	_, err := Load(path, nil)
	assert.Error(t, err)
}
