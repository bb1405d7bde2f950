package pdfxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrNoPages is returned when the document contains no page elements
var ErrNoPages = errors.New("no page elements found in pdf2xml data")

// Parse converts raw pdftohtml -xml output into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	d := newDecoder(bytes.NewReader(data))
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode pdf2xml: %w", err)
	}

	if len(doc.Pages) == 0 {
		return nil, ErrNoPages
	}
	return &doc, nil
}

// newDecoder returns a lenient decoder; pdftohtml does not always escape
// text content and may declare a non UTF-8 encoding (-enc).
func newDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.Strict = false
	d.AutoClose = xml.HTMLAutoClose
	d.Entity = xml.HTMLEntity
	d.CharsetReader = charsetReader
	return d
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	e, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return e.NewDecoder().Reader(input), nil
}

// Content returns the plain text of the run and its inline style.
func (t Text) Content() (string, Style) {
	var (
		builder strings.Builder
		style   Style
	)

	d := newDecoder(strings.NewReader("<text>" + t.Inner + "</text>"))
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch v := tok.(type) {
		case xml.StartElement:
			switch v.Name.Local {
			case "b":
				style.Bold = true
			case "i":
				style.Italic = true
			}
		case xml.CharData:
			builder.Write(v)
		}
	}

	return builder.String(), style
}

// Fonts collects the fontspecs of all pages by id
func (d *Document) Fonts() map[string]Fontspec {
	fonts := make(map[string]Fontspec)
	for _, p := range d.Pages {
		for _, fs := range p.Fontspecs {
			fonts[fs.ID] = fs
		}
	}
	return fonts
}
