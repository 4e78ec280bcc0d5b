package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nighttype.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 4, cfg.Render.Concurrency)
	assert.Equal(t, 3, cfg.Render.Matches)
	assert.False(t, cfg.Quiz.Binary)
	assert.Empty(t, cfg.Fonts.Paths())
	assert.Empty(t, cfg.File)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
fonts:
  emoji: /fonts/emoji.ttf
output:
  dir: out
  format: md
render:
  concurrency: 2
quiz:
  binary: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, FormatMD, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Render.Concurrency)
	assert.Equal(t, 3, cfg.Render.Matches)
	assert.True(t, cfg.Quiz.Binary)
	assert.Equal(t, []string{"/fonts/emoji.ttf"}, cfg.Fonts.Paths())
	assert.Equal(t, path, cfg.File)
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nighttype.yaml"), []byte("output:\n  format: json\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: md\n")
	t.Setenv("NIGHTTYPE_OUTPUT_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "output:\n  format: pdf\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "render:\n  concurrency: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeConfig(t, "output: [unclosed\n"))
	assert.Error(t, err)
}

func TestFontsPaths(t *testing.T) {
	f := Fonts{Emoji: "e.ttf", CJK: "c.otf"}
	assert.Equal(t, []string{"e.ttf", "c.otf"}, f.Paths())
	assert.Equal(t, []string{"c.otf"}, Fonts{CJK: "c.otf"}.Paths())
}
