// Package hocr reads and writes hOCR, the HTML format OCR engines such as
// tesseract use to report recognized text with its position.
//
// Parsed documents become layout pages with one text box per ocr_line, so
// hOCR from an external engine can be drawn with the overlay package or
// queried like a poppler layout. Writing goes the other way and exports
// layout pages as hOCR.
//
// Coordinates are kept as found: hOCR bounding boxes are image pixels, and
// pages written from a poppler layout are in points.
//
// Main Functions:
//
// - Parse: Parses hOCR data into layout pages
// - Write: Renders layout pages as an hOCR document
// - ParseTitle: Splits an hOCR title attribute into its properties
package hocr
