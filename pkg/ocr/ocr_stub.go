//go:build !ocr

// Package ocr recognizes words in page images with the Tesseract OCR engine.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// New returns ErrOCRNotEnabled. To enable OCR, rebuild with:
//
//	go build -tags ocr
package ocr

import (
	"errors"

	"github.com/gardar/poppdf/pkg/layout"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct {
	MinConfidence float64
}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(langs ...string) error {
	return ErrOCRNotEnabled
}

// Words returns ErrOCRNotEnabled.
func (c *Client) Words(imageData []byte) ([]layout.Word, error) {
	return nil, ErrOCRNotEnabled
}
