package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/gardar/poppdf/pkg/layout"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgWhite, color.Bold)
	boldColor   = color.New(color.FgYellow, color.Bold)
	dimColor    = color.New(color.FgBlue)
	okColor     = color.New(color.FgGreen)
)

// printBoxes writes one line per text box: index, edges, font and text.
// Bold boxes are highlighted.
func printBoxes(w io.Writer, page *layout.Page, boxes []*layout.TextBox) {
	headerColor.Fprintf(w, "Page %d (%g x %g)\n", page.Number, page.Width, page.Height)

	for _, tb := range boxes {
		font, bold := boxFont(tb)
		if font == "" {
			font = "-"
		}
		dimColor.Fprintf(w, "%4d  %7.2f %7.2f %7.2f %7.2f  ", tb.Index(), tb.Left(), tb.Top(), tb.Right(), tb.Bottom())
		fmt.Fprintf(w, "%-28s ", font)

		if bold {
			boldColor.Fprintln(w, tb.Text())
		} else {
			fmt.Fprintln(w, tb.Text())
		}
	}
}

// boxFont reads the font of tb without freezing its font caches
func boxFont(tb *layout.TextBox) (string, bool) {
	name, size, err := tb.PeekFont()
	if err != nil {
		return "", false
	}
	font := name + "+" + strconv.FormatFloat(size, 'f', -1, 64)
	return font, strings.Contains(strings.ToLower(name), "bold")
}

// parseRegion reads "left,top,right,bottom"
func parseRegion(s string) (*layout.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("region must be left,top,right,bottom, got %q", s)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid region coordinate %q: %w", p, err)
		}
		v[i] = f
	}
	return layout.NewValidBoundingBox(v[0], v[1], v[2], v[3])
}
