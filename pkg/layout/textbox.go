package layout

import (
	"strconv"
	"strings"
)

// DefaultTolerance is the vertical slack used by Within.
const DefaultTolerance = 2.0

// Word is the smallest positioned piece of text a layout builder produces.
type Word struct {
	Text     string
	FontSize float64
	FontName string
	Box      BoundingBox
}

// PageRef is the owning page of a TextBox.
type PageRef interface {
	PageNumber() int
}

// Paragraph groups text boxes. It is filled by a paragraph reconstruction
// pass; this package only keeps the back-references consistent.
type Paragraph struct {
	Index int
	Boxes []*TextBox
}

// Add appends a box and points the box back at the paragraph.
func (p *Paragraph) Add(tb *TextBox) {
	p.Boxes = append(p.Boxes, tb)
	tb.paragraph = p
}

// Text joins the text of all boxes with newlines.
func (p *Paragraph) Text() string {
	lines := make([]string, 0, len(p.Boxes))
	for _, tb := range p.Boxes {
		lines = append(lines, tb.Text())
	}
	return strings.Join(lines, "\n")
}

// TextBox is a run of words (a word, line or paragraph fragment) on a page.
//
// Geometry lives in an owned *BoundingBox; the edge setters mutate that same
// instance. FontSize and FontName are computed on the first successful call
// and frozen afterwards, so words added later do not change them. Text is
// always derived from the current words.
type TextBox struct {
	box       *BoundingBox
	page      PageRef
	words     []Word
	index     int
	paragraph *Paragraph

	fontSize    float64
	fontSizeSet bool
	fontName    string
	fontNameSet bool
}

// TextBoxOption configures NewTextBox.
type TextBoxOption func(*TextBox)

// WithIndex sets the position of the box in its page.
func WithIndex(i int) TextBoxOption {
	return func(tb *TextBox) { tb.index = i }
}

// WithGeometry sets the four edges of the box.
func WithGeometry(left, top, right, bottom float64) TextBoxOption {
	return func(tb *TextBox) {
		tb.box.left, tb.box.top, tb.box.right, tb.box.bottom = left, top, right, bottom
		tb.box.RecomputeHeight()
	}
}

// WithBoxOptions applies bounding box options (spacing, attributes).
func WithBoxOptions(opts ...BoxOption) TextBoxOption {
	return func(tb *TextBox) {
		for _, opt := range opts {
			opt(tb.box)
		}
	}
}

// NewTextBox creates a text box on page seeded with text as its first word.
// An empty text leaves the word list empty.
func NewTextBox(text string, page PageRef, opts ...TextBoxOption) *TextBox {
	tb := &TextBox{
		box:   NewBoundingBox(0, 0, 0, 0),
		page:  page,
		index: -1,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.AddText(text)
	return tb
}

// Add appends a word. Frozen font attributes are not invalidated.
func (tb *TextBox) Add(w Word) {
	tb.words = append(tb.words, w)
}

// AddText appends a bare word with the box geometry and no font information.
func (tb *TextBox) AddText(text string) {
	if text == "" {
		return
	}
	tb.Add(Word{Text: text, Box: *tb.box.Clone()})
}

// Words returns the constituent words in reading order.
func (tb *TextBox) Words() []Word {
	return tb.words
}

// Box returns the bounding box the edge accessors delegate to.
func (tb *TextBox) Box() *BoundingBox { return tb.box }

func (tb *TextBox) Left() float64 { return tb.box.left }
func (tb *TextBox) Top() float64 { return tb.box.top }
func (tb *TextBox) Right() float64 { return tb.box.right }
func (tb *TextBox) Bottom() float64 { return tb.box.bottom }

func (tb *TextBox) SetLeft(v float64) { tb.box.left = v }
func (tb *TextBox) SetTop(v float64) { tb.box.top = v }
func (tb *TextBox) SetRight(v float64) { tb.box.right = v }
func (tb *TextBox) SetBottom(v float64) { tb.box.bottom = v }

func (tb *TextBox) Width() float64 { return tb.box.Width() }
func (tb *TextBox) Height() float64 { return tb.box.Height() }

func (tb *TextBox) Index() int { return tb.index }
func (tb *TextBox) SetIndex(i int) { tb.index = i }

func (tb *TextBox) Page() PageRef { return tb.page }
func (tb *TextBox) Paragraph() *Paragraph { return tb.paragraph }
func (tb *TextBox) SetParagraph(p *Paragraph) { tb.paragraph = p }

// PageNumber returns the number of the owning page.
func (tb *TextBox) PageNumber() (int, error) {
	if tb.page == nil {
		return 0, ErrNoPage
	}
	if p, ok := tb.page.(*Page); ok && p == nil {
		return 0, ErrNoPage
	}
	return tb.page.PageNumber(), nil
}

// Text joins the words with single spaces.
func (tb *TextBox) Text() string {
	parts := make([]string, len(tb.words))
	for i, w := range tb.words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

func (tb *TextBox) String() string {
	return tb.Text()
}

// FontSize returns the most common font size among the words.
func (tb *TextBox) FontSize() (float64, error) {
	size, err := tb.peekFontSize()
	if err != nil {
		return 0, err
	}
	tb.fontSize, tb.fontSizeSet = size, true
	return size, nil
}

// FontName returns the most common font name among the words.
func (tb *TextBox) FontName() (string, error) {
	name, err := tb.peekFontName()
	if err != nil {
		return "", err
	}
	tb.fontName, tb.fontNameSet = name, true
	return name, nil
}

// PeekFont returns what FontName and FontSize would return without freezing
// either value. Exporters use it on boxes that may still grow.
func (tb *TextBox) PeekFont() (name string, size float64, err error) {
	if name, err = tb.peekFontName(); err != nil {
		return "", 0, err
	}
	if size, err = tb.peekFontSize(); err != nil {
		return "", 0, err
	}
	return name, size, nil
}

func (tb *TextBox) peekFontSize() (float64, error) {
	if tb.fontSizeSet {
		return tb.fontSize, nil
	}
	sizes := make([]float64, len(tb.words))
	for i, w := range tb.words {
		sizes[i] = w.FontSize
	}
	size, ok := mostCommon(sizes)
	if !ok {
		return 0, &EmptyWordSetError{Attribute: "font size"}
	}
	return size, nil
}

func (tb *TextBox) peekFontName() (string, error) {
	if tb.fontNameSet {
		return tb.fontName, nil
	}
	names := make([]string, len(tb.words))
	for i, w := range tb.words {
		names[i] = w.FontName
	}
	name, ok := mostCommon(names)
	if !ok {
		return "", &EmptyWordSetError{Attribute: "font name"}
	}
	return name, nil
}

// Font returns "<font name>+<font size>", e.g. "Arial-BoldMT+12".
func (tb *TextBox) Font() (string, error) {
	name, err := tb.FontName()
	if err != nil {
		return "", err
	}
	size, err := tb.FontSize()
	if err != nil {
		return "", err
	}
	return name + "+" + strconv.FormatFloat(size, 'f', -1, 64), nil
}

// IsBold reports whether the dominant font name contains "bold".
func (tb *TextBox) IsBold() (bool, error) {
	name, err := tb.FontName()
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(name), "bold"), nil
}

// PartiallyWithin reports whether the box overlaps r on both axes.
func (tb *TextBox) PartiallyWithin(r Rect) bool {
	return r.Left() <= tb.Right() &&
		r.Right() >= tb.Left() &&
		r.Top() <= tb.Bottom() &&
		r.Bottom() >= tb.Top()
}

// Within reports whether the box lies inside r, using DefaultTolerance on the
// vertical axis.
func (tb *TextBox) Within(r Rect) bool {
	return tb.WithinTolerance(r, DefaultTolerance)
}

// WithinTolerance reports whether the box lies strictly inside r horizontally
// and inside r widened by tol vertically.
func (tb *TextBox) WithinTolerance(r Rect, tol float64) bool {
	return r.Left() < tb.Left() &&
		r.Right() > tb.Right() &&
		r.Top()-tol <= tb.Top() &&
		r.Bottom()+tol >= tb.Bottom()
}

// SamePosition reports whether both boxes carry the same text at the same
// top-left corner. Index is ignored.
func (tb *TextBox) SamePosition(other *TextBox) bool {
	if other == nil {
		return false
	}
	return tb.Text() == other.Text() && tb.Left() == other.Left() && tb.Top() == other.Top()
}

// Equal is SamePosition plus equal indexes, so that equal boxes always share
// a Key.
func (tb *TextBox) Equal(other *TextBox) bool {
	return tb.SamePosition(other) && tb.index == other.index
}

// Key identifies a box in maps: its text and its index.
func (tb *TextBox) Key() string {
	return tb.Text() + "#" + strconv.Itoa(tb.index)
}
