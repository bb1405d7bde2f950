package pdfdoc

import (
	"fmt"

	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/poppler"
)

// Page is one page of a Document: its text boxes, and optionally the
// rendered image and plain text.
type Page struct {
	Number int
	Layout *layout.Page
	Image  *poppler.Image // nil unless Options.Images
	Text   string
}

// Boxes returns the text boxes of the page in reading order
func (p *Page) Boxes() []*layout.TextBox {
	if p.Layout == nil {
		return nil
	}
	return p.Layout.Boxes
}

// Find returns the boxes that mostly fall inside region, scored by the
// share of each box inside it.
func (p *Page) Find(region layout.Rect) []layout.Match {
	return layout.MatchWords(region, p.Boxes(), layout.MatchThreshold)
}

// Within returns the boxes lying inside region with the default vertical
// tolerance.
func (p *Page) Within(region layout.Rect) []*layout.TextBox {
	if p.Layout == nil {
		return nil
	}
	return p.Layout.Inside(region, layout.DefaultTolerance)
}

// Overlapping returns the boxes touching region
func (p *Page) Overlapping(region layout.Rect) []*layout.TextBox {
	if p.Layout == nil {
		return nil
	}
	return p.Layout.Overlapping(region)
}

// ImageBox maps a box in page points onto the pixels of the page image.
func (p *Page) ImageBox(r layout.Rect) (*layout.BoundingBox, error) {
	if p.Image == nil || p.Layout == nil {
		return nil, fmt.Errorf("page %d has no image", p.Number)
	}
	cfg, err := p.Image.Config()
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p.Number, err)
	}
	box := layout.NewBoundingBox(r.Left(), r.Top(), r.Right(), r.Bottom())
	return box.ToImageBox(p.Layout.Width, p.Layout.Height, cfg.Width, cfg.Height)
}
