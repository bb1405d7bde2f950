package hocr

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/gardar/poppdf/pkg/layout"
)

// Classes of the elements that carry a line of text
var lineClasses = []string{"ocr_line", "ocr_header", "ocr_caption", "ocr_textfloat"}

// Parse converts hOCR data into layout pages, one text box per line.
// Words below minConfidence (x_wconf) are dropped; words outside any line
// get a box of their own.
func Parse(data []byte, minConfidence float64) ([]*layout.Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var pages []*layout.Page
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if hasClass(n, "ocr_page") {
			pages = append(pages, processPage(n, len(pages)+1, minConfidence))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(pages) == 0 {
		return nil, fmt.Errorf("no ocr_page elements found in hOCR data")
	}
	return pages, nil
}

// processPage reads the page size from its bbox and the number from
// ppageno, which is 0-based.
func processPage(n *html.Node, seq int, minConfidence float64) *layout.Page {
	props := ParseTitle(getAttrVal(n, "title"))

	number := seq
	if v, ok := props.Float("ppageno"); ok {
		number = int(v) + 1
	}
	var width, height float64
	if box, ok := props.BBox(); ok {
		width, height = box.Right(), box.Bottom()
	}
	page := layout.NewPage(number, width, height)

	var walk func(*html.Node)
	walk = func(c *html.Node) {
		switch {
		case isLine(c):
			processLine(page, c, minConfidence)
			return
		case hasClass(c, "ocrx_word"):
			if w, ok := processWord(c, nil, minConfidence); ok {
				box := w.Box
				page.NewBox(box.Left(), box.Top(), box.Right(), box.Bottom()).Add(w)
			}
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return page
}

func processLine(page *layout.Page, n *html.Node, minConfidence float64) {
	props := ParseTitle(getAttrVal(n, "title"))

	var words []layout.Word
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if hasClass(c, "ocrx_word") {
			if w, ok := processWord(c, props, minConfidence); ok {
				words = append(words, w)
			}
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			collect(cc)
		}
	}
	collect(n)

	if len(words) == 0 {
		return
	}

	box, ok := props.BBox()
	if !ok {
		box = words[0].Box.Clone()
		for _, w := range words[1:] {
			box = box.Union(&w.Box)
		}
	}

	tb := page.NewBox(box.Left(), box.Top(), box.Right(), box.Bottom())
	for _, w := range words {
		tb.Add(w)
	}
}

// processWord reads a word. The font size is x_fsize, else the line's
// x_size, else the word height.
func processWord(n *html.Node, line Properties, minConfidence float64) (layout.Word, bool) {
	props := ParseTitle(getAttrVal(n, "title"))

	text := extractTextContent(n)
	if text == "" {
		return layout.Word{}, false
	}
	if conf, ok := props.Float("x_wconf"); ok && conf < minConfidence {
		return layout.Word{}, false
	}
	box, ok := props.BBox()
	if !ok {
		return layout.Word{}, false
	}

	size, ok := props.Float("x_fsize")
	if !ok {
		if size, ok = line.Float("x_size"); !ok {
			size = box.Height()
		}
	}

	return layout.Word{
		Text:     text,
		FontSize: size,
		FontName: props.Value("x_font"),
		Box:      *box,
	}, true
}

// extractTextContent gets all text from a node and its children
func extractTextContent(n *html.Node) string {
	var builder strings.Builder
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.TextNode {
			builder.WriteString(c.Data)
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			collect(cc)
		}
	}
	collect(n)
	return strings.TrimSpace(builder.String())
}

func isLine(n *html.Node) bool {
	for _, class := range lineClasses {
		if hasClass(n, class) {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return slices.Contains(strings.Fields(getAttrVal(n, "class")), class)
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, attrName string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrName {
			return attr.Val
		}
	}
	return ""
}
