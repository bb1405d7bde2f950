package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/poppdf/pkg/ocr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poppdf.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
poppler:
  path: /opt/poppler/bin
  dpi: 300
  format: jpeg
  threads: 4
  timeout: 90s
  strict: true
  native_fallback: false
overlay:
  layer_name: OCR
  font_size: 8
ocr:
  languages: [isl, eng]
  min_confidence: 50
`)

	s, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/poppler/bin", s.Poppler.PopplerPath)
	assert.Equal(t, 300, s.Poppler.DPI)
	assert.Equal(t, "jpeg", s.Poppler.Format)
	assert.Equal(t, 4, s.Poppler.ThreadCount)
	assert.Equal(t, 90*time.Second, s.Poppler.Timeout)
	assert.True(t, s.Poppler.Strict)
	assert.False(t, s.Poppler.NativeFallback)

	assert.Equal(t, "OCR", s.Overlay.LayerName)
	assert.Equal(t, "Helvetica", s.Overlay.Font.Name)
	assert.Equal(t, 8.0, s.Overlay.Font.Size)

	assert.Equal(t, []string{"isl", "eng"}, s.Languages)
	assert.Equal(t, 50.0, s.MinConfidence)
}

func TestLoadConfigDefaults(t *testing.T) {
	s, err := loadConfig(writeConfig(t, "poppler:\n  dpi: 150\n"))
	require.NoError(t, err)

	assert.Equal(t, 150, s.Poppler.DPI)
	assert.Equal(t, "png", s.Poppler.Format)
	assert.True(t, s.Poppler.NativeFallback)
	assert.Equal(t, "Text Layer", s.Overlay.LayerName)
	assert.Equal(t, []string{"eng"}, s.Languages)
	assert.Equal(t, ocr.DefaultMinConfidence, s.MinConfidence)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "poppler: [dpi"},
		{"bad timeout", "poppler:\n  timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("poppler-path", "", "")
	flags.Int("dpi", 200, "")
	flags.String("format", "png", "")
	flags.Int("threads", 1, "")
	flags.Duration("timeout", 0, "")
	flags.Bool("strict", false, "")
	flags.String("password", "", "")
	flags.String("owner-password", "", "")
	flags.Bool("verbose", false, "")

	require.NoError(t, flags.Parse([]string{"--dpi", "72", "--timeout", "5s", "--password", "secret"}))

	s := defaultSettings()
	s.Poppler.Format = "tiff" // from a config file
	require.NoError(t, applyFlags(flags, &s))

	assert.Equal(t, 72, s.Poppler.DPI)
	assert.Equal(t, 5*time.Second, s.Poppler.Timeout)
	assert.Equal(t, "secret", s.Poppler.UserPassword)
	assert.Equal(t, "tiff", s.Poppler.Format, "unset flags keep file values")
	assert.Equal(t, 1, s.Poppler.ThreadCount)
}

func TestParseRegion(t *testing.T) {
	box, err := parseRegion("10, 20,110,40")
	require.NoError(t, err)
	assert.Equal(t, 10.0, box.Left())
	assert.Equal(t, 20.0, box.Top())
	assert.Equal(t, 110.0, box.Right())
	assert.Equal(t, 40.0, box.Bottom())

	for _, s := range []string{"1,2,3", "a,b,c,d", "10,10,5,20"} {
		_, err := parseRegion(s)
		assert.Error(t, err, s)
	}
}
