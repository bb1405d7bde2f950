// Package layout implements the page geometry model used to query spatial
// relationships between pieces of text extracted from a PDF.
//
// Coordinates are page units with top smaller than bottom: values grow down
// the page, as in the layout dumps produced by poppler.
//
// Key Types:
//
// - BoundingBox: A rectangle with a width, a cached height and optional spacing attributes
// - TextBox: A run of words with derived text, font and boldness
// - Word: The smallest positioned piece of text supplied by a layout builder
// - Paragraph: A group of text boxes assembled by a later pass
//
// Main Functions:
//
// - TextBox.PartiallyWithin: Axis-aligned overlap test against any Rect
// - TextBox.Within: Containment test with vertical tolerance
// - TextBox.FontSize, TextBox.FontName: Most common value over the words
// - MatchWords: Boxes that mostly fall inside a region
// - WordIndices: Words covered by a character span
package layout

// Reindex sets each box's index to its position in tbs.
func Reindex(tbs []*TextBox) {
	for i, tb := range tbs {
		tb.SetIndex(i)
	}
}
