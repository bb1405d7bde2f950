package hocr

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gardar/poppdf/pkg/layout"
)

// Write renders the pages as an hOCR document: an ocr_page per page, an
// ocr_line per text box and an ocrx_word per word. Coordinates are rounded
// to whole units as hOCR requires. Font sizes keep their fraction. Box font
// caches are read without freezing them.
func Write(w io.Writer, pages []*layout.Page) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "", "")
	root.Attr = append(root.Attr, html.Attribute{Key: "lang", Val: "en"})
	doc.AppendChild(root)

	head := element(atom.Head, "", "")
	title := element(atom.Title, "", "")
	title.AppendChild(&html.Node{Type: html.TextNode, Data: "poppdf"})
	head.AppendChild(title)
	head.AppendChild(meta("ocr-system", "poppdf"))
	head.AppendChild(meta("ocr-capabilities", "ocr_page ocr_line ocrx_word"))
	root.AppendChild(head)

	body := element(atom.Body, "", "")
	root.AppendChild(body)

	for _, page := range pages {
		div := element(atom.Div, "ocr_page", fmt.Sprintf("page_%d", page.Number))
		setTitle(div, fmt.Sprintf("bbox 0 0 %s %s; ppageno %d",
			coord(page.Width), coord(page.Height), page.Number-1))
		body.AppendChild(div)

		for i, tb := range page.Boxes {
			line := element(atom.Span, "ocr_line", fmt.Sprintf("line_%d_%d", page.Number, i+1))
			props := []string{"bbox " + bbox(tb)}
			if _, size, err := tb.PeekFont(); err == nil {
				props = append(props, "x_size "+fontSize(size))
			}
			setTitle(line, strings.Join(props, "; "))
			div.AppendChild(line)

			for j, word := range tb.Words() {
				if j > 0 {
					line.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
				}
				line.AppendChild(wordNode(word, fmt.Sprintf("word_%d_%d_%d", page.Number, i+1, j+1)))
			}
		}
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render hOCR: %w", err)
	}
	return nil
}

func wordNode(word layout.Word, id string) *html.Node {
	span := element(atom.Span, "ocrx_word", id)
	props := []string{"bbox " + bbox(&word.Box)}
	if word.FontSize > 0 {
		props = append(props, "x_fsize "+fontSize(word.FontSize))
	}
	if word.FontName != "" {
		props = append(props, fmt.Sprintf("x_font %q", word.FontName))
	}
	setTitle(span, strings.Join(props, "; "))
	span.AppendChild(&html.Node{Type: html.TextNode, Data: word.Text})
	return span
}

func element(a atom.Atom, class, id string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	if id != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
	}
	return n
}

func meta(name, content string) *html.Node {
	n := element(atom.Meta, "", "")
	n.Attr = append(n.Attr,
		html.Attribute{Key: "name", Val: name},
		html.Attribute{Key: "content", Val: content},
	)
	return n
}

func setTitle(n *html.Node, title string) {
	n.Attr = append(n.Attr, html.Attribute{Key: "title", Val: title})
}

func bbox(r layout.Rect) string {
	return strings.Join([]string{coord(r.Left()), coord(r.Top()), coord(r.Right()), coord(r.Bottom())}, " ")
}

func fontSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coord(v float64) string {
	return fmt.Sprintf("%d", int(math.Round(v)))
}
