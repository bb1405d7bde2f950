package pdfdoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/overlay"
)

// ErrNoImage is returned by Rebuild for a page that was not rasterized
var ErrNoImage = errors.New("page has no image")

// Recognizer finds words in an encoded page image.
// Word boxes are in image pixels.
type Recognizer interface {
	Words(imageData []byte) ([]layout.Word, error)
}

// Rebuild recognizes the words of every page image and writes a new PDF of
// the images with the recognized text as an invisible layer. Pages must
// have been opened with Options.Images.
func (d *Document) Rebuild(ctx context.Context, rec Recognizer, config overlay.Config) ([]byte, error) {
	pages := make([]overlay.Page, 0, len(d.Pages))

	for _, p := range d.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Image == nil {
			return nil, fmt.Errorf("page %d: %w", p.Number, ErrNoImage)
		}

		recognized, err := p.Recognize(rec)
		if err != nil {
			return nil, err
		}
		pages = append(pages, overlay.Page{Layout: recognized, Image: p.Image.Data})
	}

	return overlay.Assemble(pages, config)
}

// Recognize runs rec over the page image and returns the words as a layout
// page in page points, one text box per word.
func (p *Page) Recognize(rec Recognizer) (*layout.Page, error) {
	if p.Image == nil {
		return nil, fmt.Errorf("page %d: %w", p.Number, ErrNoImage)
	}
	if p.Layout == nil || p.Layout.Width <= 0 || p.Layout.Height <= 0 {
		return nil, fmt.Errorf("page %d has no size", p.Number)
	}

	cfg, err := p.Image.Config()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p.Number, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("page %d: empty image", p.Number)
	}

	words, err := rec.Words(p.Image.Data)
	if err != nil {
		return nil, fmt.Errorf("page %d: recognition failed: %w", p.Number, err)
	}

	pixels := layout.NewPage(p.Number, float64(cfg.Width), float64(cfg.Height))
	for _, w := range words {
		tb := pixels.NewBox(w.Box.Left(), w.Box.Top(), w.Box.Right(), w.Box.Bottom())
		tb.Add(w)
	}
	return pixels.Rescale(p.Layout.Width, p.Layout.Height), nil
}
