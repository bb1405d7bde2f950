package ocr

import (
	"image"
	"strings"

	"github.com/gardar/poppdf/pkg/layout"
)

// DefaultMinConfidence drops recognized words below this confidence (0-100)
const DefaultMinConfidence = 30.0

// Box is one recognized word in image pixel coordinates
type Box struct {
	Rect       image.Rectangle
	Text       string
	Confidence float64
}

// Words converts recognized boxes into layout words, skipping blank words
// and those below minConfidence. Coordinates stay in pixels and the font
// size is the word height, since the engine reports no font information.
func Words(boxes []Box, minConfidence float64) []layout.Word {
	words := make([]layout.Word, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Confidence < minConfidence {
			continue
		}
		words = append(words, layout.Word{
			Text:     text,
			FontSize: float64(b.Rect.Dy()),
			Box: *layout.NewBoundingBox(
				float64(b.Rect.Min.X), float64(b.Rect.Min.Y),
				float64(b.Rect.Max.X), float64(b.Rect.Max.Y),
			),
		})
	}
	return words
}
