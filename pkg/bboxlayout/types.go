package bboxlayout

// Document represents the whole output of pdftotext -bbox-layout
type Document struct {
	Title    string            // Document title from the head section
	Metadata map[string]string // Meta tags (Producer, Creator, CreationDate...)
	Pages    []Page            // Pages in the document
}

// Page is one page of extracted text
// Corresponds to the element: 'page'
type Page struct {
	Number int     // Page number in document (1-based)
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Flows  []Flow  // Text flows on this page
	Words  []Word  // Words directly under page (pdftotext -bbox)
}

// Tag assign 'page' to 'Page' struct
func (Page) Tag() string { return "page" }

// Flow is a run of blocks that read continuously, usually a column or paragraph
// Corresponds to the element: 'flow'
type Flow struct {
	Blocks []Block // Blocks in this flow
}

// Tag assign 'flow' to 'Flow' struct
func (Flow) Tag() string { return "flow" }

// Block represents a block of lines within a flow
// Corresponds to the element: 'block'
type Block struct {
	BBox  BoundingBox // Block coordinates
	Lines []Line      // Lines in this block
}

// Tag assign 'block' to 'Block' struct
func (Block) Tag() string { return "block" }

// Line represents a line of text
// Corresponds to the element: 'line'
type Line struct {
	BBox  BoundingBox // Line coordinates
	Words []Word      // Words in this line
}

// Tag assign 'line' to 'Line' struct
func (Line) Tag() string { return "line" }

// Word is a word with its bounding box
// Corresponds to the element: 'word'
type Word struct {
	Text string      // The actual text content
	BBox BoundingBox // Word coordinates
}

// Tag assign 'word' to 'Word' struct
func (Word) Tag() string { return "word" }

// BoundingBox represents a rectangle on the page
// Used to store the xMin, yMin, xMax, yMax attributes
type BoundingBox struct {
	X1 float64 // Left coordinate (xMin)
	Y1 float64 // Top coordinate (yMin)
	X2 float64 // Right coordinate (xMax)
	Y2 float64 // Bottom coordinate (yMax)
}

// NewBoundingBox creates a bounding box from coordinates
// x1, y1 represent the top-left corner, while x2, y2 represent the bottom-right corner.
func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}
