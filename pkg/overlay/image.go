package overlay

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/tiff"
)

// prepareImage returns image data fpdf can embed and its fpdf image type.
// TIFF, which fpdf cannot read, is re-encoded as PNG.
func prepareImage(data []byte) ([]byte, string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image config: %w", err)
	}

	if format != "tiff" {
		return data, strings.ToUpper(format), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode tiff: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to convert tiff to png: %w", err)
	}
	return buf.Bytes(), "PNG", nil
}
