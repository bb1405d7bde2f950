package bboxlayout

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Parse converts raw pdftotext -bbox-layout (or -bbox) output into a
// structured Document. Pages are numbered from 1 in output order; use
// Document.Renumber when the dump started at a later page.
func Parse(data []byte) (Document, error) {
	var result Document
	result.Metadata = make(map[string]string)

	decoded, err := decode(data)
	if err != nil {
		return result, err
	}

	doc, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return result, err
	}

	// Extract document metadata from the head section
	extractDocumentMeta(&result, doc)

	// Find and process all page elements
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == (Page{}).Tag() {
			page := processPage(n)
			page.Number = len(result.Pages) + 1
			result.Pages = append(result.Pages, page)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no page elements found in bbox layout data")
	}
	return result, nil
}

// Renumber shifts page numbers so that the first page gets number first.
func (d *Document) Renumber(first int) {
	for i := range d.Pages {
		d.Pages[i].Number = first + i
	}
}

// decode converts the document to UTF-8 based on its declared charset.
func decode(data []byte) ([]byte, error) {
	enc := declaredCharset(data)
	if enc == "" || enc == "utf-8" || enc == "utf8" {
		return data, nil
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		// Unknown label, poppler's other encodings are Latin-1 compatible
		e = charmap.ISO8859_1
	}
	decoded, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return decoded, nil
}

// declaredCharset returns the lowercased charset= value, if any.
func declaredCharset(data []byte) string {
	content := string(data)
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return ""
	}
	snippet := content[idx+len("charset="):]
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}
	fields := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>' || r == '/' || r == ' '
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// extractDocumentMeta extracts the title and meta tags from the head section
func extractDocumentMeta(result *Document, doc *html.Node) {
	var findHead func(*html.Node) *html.Node
	findHead = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "head" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := findHead(c); found != nil {
				return found
			}
		}
		return nil
	}

	head := findHead(doc)
	if head == nil {
		return
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			if c.FirstChild != nil {
				result.Title = strings.TrimSpace(c.FirstChild.Data)
			}
		case "meta":
			name := getAttrVal(c, "name")
			content := getAttrVal(c, "content")
			if name != "" && content != "" {
				result.Metadata[name] = content
			}
		}
	}
}

// processPage extracts page size and its flows
func processPage(n *html.Node) Page {
	page := Page{
		Width:  getAttrFloat(n, "width"),
		Height: getAttrFloat(n, "height"),
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case (Flow{}).Tag():
			page.Flows = append(page.Flows, processFlow(c))
		case (Word{}).Tag():
			// pdftotext -bbox puts words straight under the page
			page.Words = append(page.Words, processWord(c))
		}
	}

	return page
}

// processFlow extracts the blocks of a flow
func processFlow(n *html.Node) Flow {
	var flow Flow
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == (Block{}).Tag() {
			flow.Blocks = append(flow.Blocks, processBlock(c))
		}
	}
	return flow
}

// processBlock extracts block coordinates and its lines
func processBlock(n *html.Node) Block {
	block := Block{BBox: parseBoundingBox(n)}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == (Line{}).Tag() {
			block.Lines = append(block.Lines, processLine(c))
		}
	}
	return block
}

// processLine extracts line coordinates and its words
func processLine(n *html.Node) Line {
	line := Line{BBox: parseBoundingBox(n)}

	// Words may be wrapped in other elements by some poppler versions
	var extractWords func(*html.Node)
	extractWords = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == (Word{}).Tag() {
			line.Words = append(line.Words, processWord(node))
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			extractWords(c)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractWords(c)
	}

	return line
}

// Process a word element and extract its text and coordinates
func processWord(n *html.Node) Word {
	return Word{
		Text: extractTextContent(n),
		BBox: parseBoundingBox(n),
	}
}

// parseBoundingBox reads the xMin, yMin, xMax, yMax attributes.
// The HTML parser lowercases attribute names.
func parseBoundingBox(n *html.Node) BoundingBox {
	return NewBoundingBox(
		getAttrFloat(n, "xmin"),
		getAttrFloat(n, "ymin"),
		getAttrFloat(n, "xmax"),
		getAttrFloat(n, "ymax"),
	)
}

// extractTextContent gets all text from a node and its children
func extractTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var text string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text += extractTextContent(c)
	}
	return strings.TrimSpace(text)
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

func getAttrFloat(n *html.Node, attrName string) float64 {
	v, _ := strconv.ParseFloat(getAttrVal(n, attrName), 64)
	return v
}
