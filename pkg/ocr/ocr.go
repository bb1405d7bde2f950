//go:build ocr

// Package ocr recognizes words in page images with the Tesseract OCR engine
// through gosseract. Tesseract must be installed on the system. On Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the "ocr" build tag a stub is compiled whose New returns
// ErrOCRNotEnabled.
package ocr

import (
	"errors"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/gardar/poppdf/pkg/layout"
)

// ErrOCRNotEnabled is returned by the stub build; it is declared here too so
// callers can test for it under both builds.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps a Tesseract client
type Client struct {
	client        *gosseract.Client
	MinConfidence float64
}

// New creates a client. Close it when done.
func New() (*Client, error) {
	return &Client{
		client:        gosseract.NewClient(),
		MinConfidence: DefaultMinConfidence,
	}, nil
}

// Close releases the Tesseract client
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetLanguage sets the recognition languages, e.g. "eng", "deu"
func (c *Client) SetLanguage(langs ...string) error {
	return c.client.SetLanguage(langs...)
}

// Words recognizes the words of an encoded image (png, jpeg, tiff) in pixel
// coordinates.
func (c *Client) Words(imageData []byte) ([]layout.Word, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize words: %w", err)
	}

	out := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, Box{Rect: b.Box, Text: b.Word, Confidence: b.Confidence})
	}
	return Words(out, c.MinConfidence), nil
}
