package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyWordSet is returned when font or text aggregation runs on a
	// TextBox without words.
	ErrEmptyWordSet = errors.New("layout: text box has no words")

	// ErrNoPage is returned by TextBox.PageNumber for a detached box.
	ErrNoPage = errors.New("layout: text box is not attached to a page")

	// ErrRotatedPage is returned when page and image aspect ratios disagree.
	ErrRotatedPage = errors.New("layout: page seems to be rotated")
)

// EmptyWordSetError names the attribute that could not be derived.
type EmptyWordSetError struct {
	Attribute string
}

func (e *EmptyWordSetError) Error() string {
	return fmt.Sprintf("layout: cannot compute %s: text box has no words", e.Attribute)
}

func (e *EmptyWordSetError) Is(target error) bool {
	return target == ErrEmptyWordSet
}

// MalformedGeometryError reports a box whose right edge is left of its left
// edge or whose bottom is above its top.
type MalformedGeometryError struct {
	Left, Top, Right, Bottom float64
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("layout: malformed geometry (left=%g top=%g right=%g bottom=%g)",
		e.Left, e.Top, e.Right, e.Bottom)
}
