package pdfxml

import (
	"strings"
	"unicode/utf8"

	"github.com/gardar/poppdf/pkg/layout"
)

// Build turns the parsed document into layout pages with one text box per
// text run. A run is split into words on whitespace; pdftohtml gives no
// per-glyph positions, so each word gets a share of the run width
// proportional to its rune count.
func Build(doc *Document) []*layout.Page {
	fonts := doc.Fonts()
	pages := make([]*layout.Page, 0, len(doc.Pages))

	for _, p := range doc.Pages {
		page := layout.NewPage(p.Number, p.Width, p.Height)

		for _, t := range p.Texts {
			content, style := t.Content()
			words := strings.Fields(content)
			if len(words) == 0 {
				continue
			}

			fs := fonts[t.Font]
			name := FontName(fs.Family, style)

			var opts []layout.BoxOption
			if t.Font != "" {
				opts = append(opts, layout.WithAttr("font", t.Font))
			}
			if fs.Color != "" {
				opts = append(opts, layout.WithAttr("color", fs.Color))
			}

			tb := page.NewBox(t.Left, t.Top, t.Left+t.Width, t.Top+t.Height, opts...)
			for _, w := range splitRun(words, t) {
				w.FontName = name
				w.FontSize = fs.Size
				tb.Add(w)
			}
		}

		pages = append(pages, page)
	}

	return pages
}

// splitRun lays words out across the run, one rune-width of gap between them
func splitRun(words []string, t Text) []layout.Word {
	runes := len(words) - 1
	for _, w := range words {
		runes += utf8.RuneCountInString(w)
	}
	charWidth := t.Width / float64(runes)

	out := make([]layout.Word, 0, len(words))
	x := t.Left
	for _, w := range words {
		width := charWidth * float64(utf8.RuneCountInString(w))
		out = append(out, layout.Word{
			Text: w,
			Box:  *layout.NewBoundingBox(x, t.Top, x+width, t.Top+t.Height),
		})
		x += width + charWidth
	}
	return out
}

// FontName normalizes a fontspec family. The subset tag pdftohtml keeps with
// -fontfullname ("ABCDEF+Arial-BoldMT") is dropped, and "-Bold" is appended
// when the run is bold but the family does not say so.
func FontName(family string, style Style) string {
	name := family
	if i := strings.IndexByte(name, '+'); i == 6 && isSubsetTag(name[:i]) {
		name = name[i+1:]
	}
	if style.Bold && !strings.Contains(strings.ToLower(name), "bold") {
		name += "-Bold"
	}
	return name
}

func isSubsetTag(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
