package poppler

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// Image formats understood by pdftoppm
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatTIFF = "tiff"
)

// Config holds the options shared by all poppler invocations
type Config struct {
	PopplerPath    string        // Directory holding the poppler binaries ("" = $PATH)
	DPI            int           // Rasterization resolution
	Format         string        // Image format: png, jpeg or tiff
	ThreadCount    int           // Number of concurrent poppler processes
	UserPassword   string        // PDF user password
	OwnerPassword  string        // PDF owner password
	UseCropBox     bool          // Rasterize the crop box instead of the media box
	Grayscale      bool          // Rasterize in grayscale
	Size           int           // Scale the longest page side to this many pixels (0 = use DPI)
	Strict         bool          // Fail when poppler reports a syntax error
	Timeout        time.Duration // Per process timeout (0 = none)
	NativeFallback bool          // Use pure Go readers when a binary is missing
	Verbose        bool          // Forward poppler's stderr to the logger
	Logger         io.Writer     // Custom logger for warnings (nil = stdout)
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		DPI:            200,
		Format:         FormatPNG,
		ThreadCount:    1,
		NativeFallback: true,
		Logger:         nil, // stdout
	}
}

// normalize fills zero values with defaults
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.DPI <= 0 {
		c.DPI = def.DPI
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Format == "jpg" {
		c.Format = FormatJPEG
	}
	if c.ThreadCount < 1 {
		c.ThreadCount = def.ThreadCount
	}
	return c
}

// getLogger returns the appropriate io.Writer to use for logging
// based on the configuration settings, defaulting to os.Stdout if nil.
func getLogger(config Config) io.Writer {
	if config.Logger == nil {
		return os.Stdout
	}
	return config.Logger
}

// binary resolves a poppler tool against PopplerPath
func (c Config) binary(name string) string {
	if c.PopplerPath == "" {
		return name
	}
	return filepath.Join(c.PopplerPath, name)
}

// passwordArgs returns the -upw/-opw flags understood by every poppler tool
func (c Config) passwordArgs() []string {
	var args []string
	if c.UserPassword != "" {
		args = append(args, "-upw", c.UserPassword)
	}
	if c.OwnerPassword != "" {
		args = append(args, "-opw", c.OwnerPassword)
	}
	return args
}
