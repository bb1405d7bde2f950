package layout

import "math"

// Area returns Width * Height using live coordinates.
func (b *BoundingBox) Area() float64 {
	return (b.right - b.left) * (b.bottom - b.top)
}

// Center returns the midpoint of the box.
func (b *BoundingBox) Center() (x, y float64) {
	return (b.left + b.right) / 2, (b.top + b.bottom) / 2
}

// Intersection returns the overlap of b and r, or nil when they are disjoint.
// Touching edges give a zero-area box.
func (b *BoundingBox) Intersection(r Rect) *BoundingBox {
	left := math.Max(b.left, r.Left())
	top := math.Max(b.top, r.Top())
	right := math.Min(b.right, r.Right())
	bottom := math.Min(b.bottom, r.Bottom())
	if left > right || top > bottom {
		return nil
	}
	return NewBoundingBox(left, top, right, bottom)
}

// Union returns the smallest box containing both b and r.
func (b *BoundingBox) Union(r Rect) *BoundingBox {
	return NewBoundingBox(
		math.Min(b.left, r.Left()),
		math.Min(b.top, r.Top()),
		math.Max(b.right, r.Right()),
		math.Max(b.bottom, r.Bottom()),
	)
}

// IoU returns intersection over union, 0 for disjoint boxes.
func (b *BoundingBox) IoU(r Rect) float64 {
	inter := b.Intersection(r)
	if inter == nil {
		return 0
	}
	other := boxOf(r)
	union := b.Area() + other.Area() - inter.Area()
	if union <= 0 {
		return 0
	}
	return inter.Area() / union
}

// Contains reports whether r lies inside b, edges included.
func (b *BoundingBox) Contains(r Rect) bool {
	return r.Left() >= b.left && r.Right() <= b.right &&
		r.Top() >= b.top && r.Bottom() <= b.bottom
}

// Scale multiplies horizontal coordinates by sx and vertical ones by sy.
func (b *BoundingBox) Scale(sx, sy float64) *BoundingBox {
	return NewBoundingBox(b.left*sx, b.top*sy, b.right*sx, b.bottom*sy)
}

// Translate shifts the box by dx, dy.
func (b *BoundingBox) Translate(dx, dy float64) *BoundingBox {
	return NewBoundingBox(b.left+dx, b.top+dy, b.right+dx, b.bottom+dy)
}

// ToImageBox converts a box in page units into pixel coordinates of an image
// rendered from that page. Both axes use the horizontal scale factor.
func (b *BoundingBox) ToImageBox(pageW, pageH float64, imgW, imgH int) (*BoundingBox, error) {
	if pageW <= 0 || pageH <= 0 || imgW <= 0 || imgH <= 0 {
		return nil, ErrRotatedPage
	}
	if math.Abs(float64(imgH)/float64(imgW)-pageH/pageW) > 0.1 {
		return nil, ErrRotatedPage
	}
	w := float64(imgW)
	return NewBoundingBox(
		math.Trunc(b.left*w/pageW),
		math.Trunc(b.top*w/pageW),
		math.Trunc(b.right*w/pageW),
		math.Trunc(b.bottom*w/pageW),
	), nil
}

// MergeOverlapping replaces every group of overlapping boxes with their
// union. A merged box takes the place of the last box it absorbed; boxes
// that overlap nothing keep their relative order.
func MergeOverlapping(boxes []*BoundingBox) []*BoundingBox {
	if len(boxes) < 2 {
		return boxes
	}

	rest := make([]*BoundingBox, len(boxes)-1)
	copy(rest, boxes[1:])

	first := boxes[0]
	merged := false
	for i, other := range rest {
		if first.IoU(other) > 0 {
			rest[i] = other.Union(first)
			merged = true
		}
	}

	normalized := MergeOverlapping(rest)
	if merged {
		return normalized
	}
	return append([]*BoundingBox{first}, normalized...)
}
