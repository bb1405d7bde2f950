// Package bboxlayout implements parsing of the XHTML document written by
// poppler's pdftotext with the -bbox-layout or -bbox flag.
//
// This package provides:
//
// - An object model of the pdftotext hierarchy
// - Functions for parsing the XHTML into structured Go types
// - A builder that turns the parsed pages into layout text boxes
//
// The package follows the hierarchy written by pdftotext -bbox-layout:
// Document → Pages → Flows → Blocks → Lines → Words, where every block, line
// and word carries an xMin/yMin/xMax/yMax bounding box in points with the
// origin at the top-left corner of the page.
//
// Main Functions:
//
// - Parse: Parses the XHTML into the object model
// - Build: Converts parsed pages into layout pages, one text box per line
// - Document.Text: Plain text of the document
package bboxlayout
