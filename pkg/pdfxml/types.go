package pdfxml

import "encoding/xml"

// Document is the root pdf2xml element written by pdftohtml -xml
type Document struct {
	XMLName  xml.Name `xml:"pdf2xml"`
	Producer string   `xml:"producer,attr"`
	Version  string   `xml:"version,attr"`
	Pages    []Page   `xml:"page"`
}

// Page holds the fonts introduced on a page and its text runs.
// Fontspecs are only written on the first page that uses them, later pages
// refer to them by id.
type Page struct {
	Number    int        `xml:"number,attr"`
	Position  string     `xml:"position,attr"`
	Top       float64    `xml:"top,attr"`
	Left      float64    `xml:"left,attr"`
	Height    float64    `xml:"height,attr"`
	Width     float64    `xml:"width,attr"`
	Fontspecs []Fontspec `xml:"fontspec"`
	Texts     []Text     `xml:"text"`
}

// Fontspec describes one font used in the document
type Fontspec struct {
	ID     string  `xml:"id,attr"`
	Size   float64 `xml:"size,attr"`
	Family string  `xml:"family,attr"`
	Color  string  `xml:"color,attr"`
}

// Text is a run of text sharing one font and baseline.
// Inner keeps the raw markup since runs may contain <b>, <i> and <a>.
type Text struct {
	Top    float64 `xml:"top,attr"`
	Left   float64 `xml:"left,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
	Font   string  `xml:"font,attr"`
	Inner  string  `xml:",innerxml"`
}

// Style reports the inline formatting found in a text run
type Style struct {
	Bold   bool
	Italic bool
}
