package layout

import (
	"fmt"
	"strconv"
)

// Rect is anything with page-space edges.
// Both *BoundingBox and *TextBox satisfy it.
type Rect interface {
	Left() float64
	Top() float64
	Right() float64
	Bottom() float64
}

// BoundingBox is a rectangle in page coordinates.
// Top is smaller than Bottom for a well-formed box: values grow down the page.
type BoundingBox struct {
	left   float64
	top    float64
	right  float64
	bottom float64
	height float64

	SpaceAbove *float64          // Gap to the previous box, set by a layout pass
	SpaceBelow *float64          // Gap to the next box, set by a layout pass
	Attrs      map[string]string // Extra named attributes given at construction
}

// BoxOption sets one of the optional attributes of a BoundingBox.
type BoxOption func(*BoundingBox)

// WithSpaceAbove records the gap above the box.
func WithSpaceAbove(v float64) BoxOption {
	return func(b *BoundingBox) { b.SpaceAbove = &v }
}

// WithSpaceBelow records the gap below the box.
func WithSpaceBelow(v float64) BoxOption {
	return func(b *BoundingBox) { b.SpaceBelow = &v }
}

// WithAttr attaches an extra named attribute.
func WithAttr(key, value string) BoxOption {
	return func(b *BoundingBox) {
		if b.Attrs == nil {
			b.Attrs = make(map[string]string)
		}
		b.Attrs[key] = value
	}
}

// NewBoundingBox creates a bounding box from its four edges.
// It never fails; malformed coordinates give negative width or height.
func NewBoundingBox(left, top, right, bottom float64, opts ...BoxOption) *BoundingBox {
	b := &BoundingBox{
		left:   left,
		top:    top,
		right:  right,
		bottom: bottom,
		height: bottom - top,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewValidBoundingBox is the strict variant of NewBoundingBox.
// It returns a *MalformedGeometryError when an edge pair is inverted.
func NewValidBoundingBox(left, top, right, bottom float64, opts ...BoxOption) (*BoundingBox, error) {
	b := NewBoundingBox(left, top, right, bottom, opts...)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BoundingBox) Left() float64 { return b.left }
func (b *BoundingBox) Top() float64 { return b.top }
func (b *BoundingBox) Right() float64 { return b.right }
func (b *BoundingBox) Bottom() float64 { return b.bottom }

func (b *BoundingBox) SetLeft(v float64) { b.left = v }
func (b *BoundingBox) SetTop(v float64) { b.top = v }
func (b *BoundingBox) SetRight(v float64) { b.right = v }
func (b *BoundingBox) SetBottom(v float64) { b.bottom = v }

// Width returns Right - Left without clamping.
func (b *BoundingBox) Width() float64 {
	return b.right - b.left
}

// Height returns the height captured at construction or the value given to
// SetHeight. Moving Top or Bottom afterwards does not change it.
func (b *BoundingBox) Height() float64 {
	return b.height
}

// SetHeight overrides the effective height of the box.
func (b *BoundingBox) SetHeight(v float64) {
	b.height = v
}

// RecomputeHeight resets the height to Bottom - Top.
func (b *BoundingBox) RecomputeHeight() {
	b.height = b.bottom - b.top
}

// Validate reports inverted edges.
func (b *BoundingBox) Validate() error {
	if b.right < b.left || b.bottom < b.top {
		return &MalformedGeometryError{Left: b.left, Top: b.top, Right: b.right, Bottom: b.bottom}
	}
	return nil
}

// Clone returns an independent copy, attributes included.
func (b *BoundingBox) Clone() *BoundingBox {
	c := *b
	if b.Attrs != nil {
		c.Attrs = make(map[string]string, len(b.Attrs))
		for k, v := range b.Attrs {
			c.Attrs[k] = v
		}
	}
	return &c
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("(%s %s %s %s)", formatCoord(b.left), formatCoord(b.top), formatCoord(b.right), formatCoord(b.bottom))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// boxOf copies the edges of any Rect into a fresh BoundingBox.
func boxOf(r Rect) *BoundingBox {
	if b, ok := r.(*BoundingBox); ok {
		return b
	}
	return NewBoundingBox(r.Left(), r.Top(), r.Right(), r.Bottom())
}
