package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gardar/poppdf/pkg/ocr"
	"github.com/gardar/poppdf/pkg/overlay"
	"github.com/gardar/poppdf/pkg/poppler"
)

type yamlConfig struct {
	Poppler struct {
		Path           string `yaml:"path"`
		DPI            int    `yaml:"dpi"`
		Format         string `yaml:"format"`
		Threads        int    `yaml:"threads"`
		Timeout        string `yaml:"timeout"`
		Strict         bool   `yaml:"strict"`
		CropBox        bool   `yaml:"cropbox"`
		Grayscale      bool   `yaml:"grayscale"`
		NativeFallback *bool  `yaml:"native_fallback"`
	} `yaml:"poppler"`
	Overlay struct {
		LayerName string  `yaml:"layer_name"`
		Font      string  `yaml:"font"`
		FontSize  float64 `yaml:"font_size"`
	} `yaml:"overlay"`
	OCR struct {
		Languages     []string `yaml:"languages"`
		MinConfidence *float64 `yaml:"min_confidence"`
	} `yaml:"ocr"`
}

// settings is the merged result of defaults, config file and flags
type settings struct {
	Poppler       poppler.Config
	Overlay       overlay.Config
	Languages     []string
	MinConfidence float64
}

func defaultSettings() settings {
	return settings{
		Poppler:       poppler.DefaultConfig(),
		Overlay:       overlay.DefaultConfig(),
		Languages:     []string{"eng"},
		MinConfidence: ocr.DefaultMinConfidence,
	}
}

// loadConfig reads a YAML file on top of the default settings
func loadConfig(path string) (settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}

	p := yc.Poppler
	s.Poppler.PopplerPath = p.Path
	if p.DPI > 0 {
		s.Poppler.DPI = p.DPI
	}
	if p.Format != "" {
		s.Poppler.Format = p.Format
	}
	if p.Threads > 0 {
		s.Poppler.ThreadCount = p.Threads
	}
	if p.Timeout != "" {
		d, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return s, fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
		}
		s.Poppler.Timeout = d
	}
	s.Poppler.Strict = p.Strict
	s.Poppler.UseCropBox = p.CropBox
	s.Poppler.Grayscale = p.Grayscale
	if p.NativeFallback != nil {
		s.Poppler.NativeFallback = *p.NativeFallback
	}

	if yc.Overlay.LayerName != "" {
		s.Overlay.LayerName = yc.Overlay.LayerName
	}
	if yc.Overlay.Font != "" {
		s.Overlay.Font.Name = yc.Overlay.Font
	}
	if yc.Overlay.FontSize > 0 {
		s.Overlay.Font.Size = yc.Overlay.FontSize
	}

	if len(yc.OCR.Languages) > 0 {
		s.Languages = yc.OCR.Languages
	}
	if yc.OCR.MinConfidence != nil {
		s.MinConfidence = *yc.OCR.MinConfidence
	}
	return s, nil
}

// applyFlags overrides settings with the flags set on the command line
func applyFlags(flags *pflag.FlagSet, s *settings) error {
	var err error
	set := func(name string, apply func()) {
		if err == nil && flags.Changed(name) {
			apply()
		}
	}

	set("poppler-path", func() { s.Poppler.PopplerPath, err = flags.GetString("poppler-path") })
	set("dpi", func() { s.Poppler.DPI, err = flags.GetInt("dpi") })
	set("format", func() { s.Poppler.Format, err = flags.GetString("format") })
	set("threads", func() { s.Poppler.ThreadCount, err = flags.GetInt("threads") })
	set("timeout", func() { s.Poppler.Timeout, err = flags.GetDuration("timeout") })
	set("strict", func() { s.Poppler.Strict, err = flags.GetBool("strict") })
	set("password", func() { s.Poppler.UserPassword, err = flags.GetString("password") })
	set("owner-password", func() { s.Poppler.OwnerPassword, err = flags.GetString("owner-password") })
	set("verbose", func() { s.Poppler.Verbose, err = flags.GetBool("verbose") })
	return err
}
