package overlay

import (
	"io"
)

// Config holds user options for writing a text layer
type Config struct {
	Debug       bool      // Draw the layer in red with word and box outlines
	Force       bool      // Apply the layer even if one already exists
	LayerName   string    // Base name of the layer (page number will be appended)
	StartPage   int       // First page of the existing PDF that Apply overlays
	DumpPDF     bool      // Dump PDF structure for debugging
	LogWarnings bool      // Whether to print warnings
	Logger      io.Writer // Custom logger for warnings (nil = stdout)
	Font        FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		LayerName:   "Text Layer", // Written as "Text Layer (Page X)"
		StartPage:   1,
		LogWarnings: true,
		Logger:      nil, // stdout
		Font:        DefaultFont,
	}
}

// FontConfig contains font settings for text rendering
type FontConfig struct {
	Name        string  // Core font name (e.g., "Helvetica")
	Style       string  // Font style ("", "B", "I", "BI")
	Size        float64 // Default font size in points
	AscentRatio float64 // Baseline offset from the top of a word box, as a share of the font size
}

// DefaultFont is Helvetica, whose metrics match most scanned body text well enough
var DefaultFont = FontConfig{
	Name:        "Helvetica",
	Style:       "",
	Size:        10,
	AscentRatio: 0.718,
}
