package overlay

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/poppdf/pkg/layout"
)

// layerName formats the per page layer name
func layerName(base string, pageNum int) string {
	if pageNum <= 0 {
		return base
	}
	return fmt.Sprintf("%s (Page %d)", base, pageNum)
}

// drawLayer draws the words of every text box onto a layer of the current
// page. Coordinates are page points with the origin at the top left, which
// is also fpdf's coordinate system with the "pt" unit.
func drawLayer(pdf *fpdf.Fpdf, page *layout.Page, config Config) {
	layer := pdf.AddLayer(layerName(config.LayerName, page.Number), true)
	pdf.BeginLayer(layer)
	pdf.SetFont(config.Font.Name, config.Font.Style, config.Font.Size)

	if config.Debug {
		pdf.SetTextColor(255, 0, 0) // highlight text in red
		pdf.SetDrawColor(0, 0, 255)
	} else {
		pdf.SetAlpha(0.0, "Normal") // hide text from normal view
	}

	encodingErrors := 0
	wordCount := 0

	for _, tb := range page.Boxes {
		if config.Debug {
			pdf.Rect(tb.Left(), tb.Top(), tb.Width(), tb.Height(), "D")
		}
		for _, word := range tb.Words() {
			if !drawWord(pdf, word, config.Font, config.Debug) {
				encodingErrors++
			}
			wordCount++
		}
	}

	if !config.Debug {
		pdf.SetAlpha(1.0, "Normal")
	}
	pdf.EndLayer()

	if config.LogWarnings && encodingErrors > 0 && encodingErrors > wordCount/10 {
		fmt.Fprintf(getLogger(config), "Warning: page %d: characters not representable in %d of %d words\n",
			page.Number, encodingErrors, wordCount)
	}
}

// drawWord renders a single word scaled to the width of its box.
// It reports false when the text had to be re-encoded lossily.
func drawWord(pdf *fpdf.Fpdf, word layout.Word, font FontConfig, debug bool) bool {
	text, ok := encodeText(word.Text)

	box := word.Box
	width := box.Width()
	if width <= 0 || text == "" {
		return ok
	}

	if strWidth := pdf.GetStringWidth(text); strWidth > 0 {
		pdf.SetFontSize(font.Size * width / strWidth)
	}

	fontSize, _ := pdf.GetFontSize()
	pdf.Text(box.Left(), box.Top()+fontSize*font.AscentRatio, text)
	pdf.SetFontSize(font.Size)

	if debug {
		pdf.SetDrawColor(255, 0, 0)
		pdf.Rect(box.Left(), box.Top(), width, box.Height(), "D")
		pdf.SetDrawColor(0, 0, 255)
	}
	return ok
}
