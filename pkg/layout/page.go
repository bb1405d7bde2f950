package layout

// Page owns the ordered text boxes of one PDF page.
type Page struct {
	Number int     // 1-based page number
	Width  float64 // Page width in page units
	Height float64 // Page height in page units
	Boxes  []*TextBox
}

// NewPage creates an empty page.
func NewPage(number int, width, height float64) *Page {
	return &Page{Number: number, Width: width, Height: height}
}

// PageNumber implements PageRef. A nil page reports 0.
func (p *Page) PageNumber() int {
	if p == nil {
		return 0
	}
	return p.Number
}

// NewBox creates a text box attached to the page and appends it, with its
// index set to its position.
func (p *Page) NewBox(left, top, right, bottom float64, opts ...BoxOption) *TextBox {
	tb := NewTextBox("", p,
		WithGeometry(left, top, right, bottom),
		WithIndex(len(p.Boxes)),
		WithBoxOptions(opts...),
	)
	p.Boxes = append(p.Boxes, tb)
	return tb
}

// Overlapping returns the boxes that partially fall within r.
func (p *Page) Overlapping(r Rect) []*TextBox {
	var out []*TextBox
	for _, tb := range p.Boxes {
		if tb.PartiallyWithin(r) {
			out = append(out, tb)
		}
	}
	return out
}

// Inside returns the boxes that lie within r, up to tol vertically.
func (p *Page) Inside(r Rect, tol float64) []*TextBox {
	var out []*TextBox
	for _, tb := range p.Boxes {
		if tb.WithinTolerance(r, tol) {
			out = append(out, tb)
		}
	}
	return out
}

// Text joins the text of all boxes with newlines.
func (p *Page) Text() string {
	para := Paragraph{Boxes: p.Boxes}
	return para.Text()
}

// Rescale returns a copy of the page resized to width x height. Boxes,
// words, font sizes and vertical spacing are scaled to match; a page without
// a size is returned empty.
func (p *Page) Rescale(width, height float64) *Page {
	out := NewPage(p.Number, width, height)
	if p.Width <= 0 || p.Height <= 0 {
		return out
	}
	sx, sy := width/p.Width, height/p.Height

	for _, tb := range p.Boxes {
		var opts []BoxOption
		src := tb.Box()
		for k, v := range src.Attrs {
			opts = append(opts, WithAttr(k, v))
		}
		if src.SpaceAbove != nil {
			opts = append(opts, WithSpaceAbove(*src.SpaceAbove*sy))
		}
		if src.SpaceBelow != nil {
			opts = append(opts, WithSpaceBelow(*src.SpaceBelow*sy))
		}
		b := src.Scale(sx, sy)
		scaled := out.NewBox(b.Left(), b.Top(), b.Right(), b.Bottom(), opts...)
		// Keeps a SetHeight override
		scaled.Box().SetHeight(src.Height() * sy)

		for _, w := range tb.Words() {
			w.Box = *w.Box.Scale(sx, sy)
			w.FontSize *= sy
			scaled.Add(w)
		}
	}
	return out
}
