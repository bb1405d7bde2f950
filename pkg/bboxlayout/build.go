package bboxlayout

import (
	"strconv"
	"strings"

	"github.com/gardar/poppdf/pkg/layout"
)

// FlowAttr is the box attribute holding the document-wide index of the flow
// a line belongs to. Flows are numbered in document order from 0.
const FlowAttr = "flow"

// Build turns the parsed document into layout pages with one text box per
// line. pdftotext reports no font information, so each word gets its glyph
// box height as font size and an empty font name. Words found directly under
// a page become single-word boxes without a flow.
func Build(doc Document) []*layout.Page {
	pages := make([]*layout.Page, 0, len(doc.Pages))
	flowIndex := 0

	for _, p := range doc.Pages {
		page := layout.NewPage(p.Number, p.Width, p.Height)

		for _, flow := range p.Flows {
			flowAttr := layout.WithAttr(FlowAttr, strconv.Itoa(flowIndex))
			flowIndex++
			for _, block := range flow.Blocks {
				for _, line := range block.Lines {
					if len(line.Words) == 0 {
						continue
					}
					tb := page.NewBox(line.BBox.X1, line.BBox.Y1, line.BBox.X2, line.BBox.Y2, flowAttr)
					for _, w := range line.Words {
						tb.Add(toWord(w))
					}
				}
			}
		}

		for _, w := range p.Words {
			tb := page.NewBox(w.BBox.X1, w.BBox.Y1, w.BBox.X2, w.BBox.Y2)
			tb.Add(toWord(w))
		}

		pages = append(pages, page)
	}

	return pages
}

func toWord(w Word) layout.Word {
	box := layout.NewBoundingBox(w.BBox.X1, w.BBox.Y1, w.BBox.X2, w.BBox.Y2)
	return layout.Word{
		Text:     w.Text,
		FontSize: box.Height(),
		Box:      *box,
	}
}

// Text extracts all text from the document.
// Lines are separated by newlines, blocks by an empty line and pages by a
// form feed, like pdftotext's plain output.
func (d Document) Text() string {
	var builder strings.Builder

	for i, page := range d.Pages {
		if i > 0 {
			builder.WriteString("\f")
		}

		for _, flow := range page.Flows {
			for _, block := range flow.Blocks {
				for _, line := range block.Lines {
					writeWords(&builder, line.Words)
				}
				builder.WriteString("\n")
			}
		}

		// Words directly on the page (pdftotext -bbox)
		if len(page.Words) > 0 {
			writeWords(&builder, page.Words)
		}
	}

	return builder.String()
}

// writeWords writes the words of one line followed by a newline
func writeWords(builder *strings.Builder, words []Word) {
	for j, word := range words {
		if j > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(word.Text)
	}
	builder.WriteString("\n")
}
