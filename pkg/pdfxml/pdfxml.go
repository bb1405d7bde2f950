// Package pdfxml reads the pdf2xml document written by poppler's
// pdftohtml -xml and builds layout text boxes from it.
//
// Each page carries the fontspecs it introduces and a list of text runs with
// a top/left/width/height box and a font reference. Font information is
// carried through to the words so that TextBox.FontSize, FontName and IsBold
// work on the result.
package pdfxml
