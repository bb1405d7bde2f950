package poppler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextMode selects the pdftotext output
type TextMode int

const (
	TextPlain      TextMode = iota // Reading order text
	TextRaw                        // Content stream order (-raw)
	TextLayout                     // Physical layout kept (-layout)
	TextBBox                       // XHTML with word boxes (-bbox)
	TextBBoxLayout                 // XHTML with block/line/word boxes (-bbox-layout)
)

// String returns the mode name used on the command line
func (m TextMode) String() string {
	switch m {
	case TextRaw:
		return "raw"
	case TextLayout:
		return "layout"
	case TextBBox:
		return "bbox"
	case TextBBoxLayout:
		return "bbox-layout"
	}
	return "plain"
}

// ParseTextMode is the inverse of TextMode.String
func ParseTextMode(s string) (TextMode, error) {
	for _, m := range []TextMode{TextPlain, TextRaw, TextLayout, TextBBox, TextBBoxLayout} {
		if m.String() == s {
			return m, nil
		}
	}
	return TextPlain, fmt.Errorf("unknown text mode %q", s)
}

func (m TextMode) flag() string {
	switch m {
	case TextRaw:
		return "-raw"
	case TextLayout:
		return "-layout"
	case TextBBox:
		return "-bbox"
	case TextBBoxLayout:
		return "-bbox-layout"
	}
	return ""
}

// Text extracts text from pages first to last (0 = document bounds).
// Plain text pages end with a form feed. When pdftotext is missing and
// NativeFallback is set, plain, raw and layout text are read with a pure Go
// reader instead.
func (r *Runner) Text(ctx context.Context, path string, first, last int, mode TextMode) (string, error) {
	args := []string{"-enc", "UTF-8"}
	if first > 0 {
		args = append(args, "-f", strconv.Itoa(first))
	}
	if last > 0 {
		args = append(args, "-l", strconv.Itoa(last))
	}
	if f := mode.flag(); f != "" {
		args = append(args, f)
	}
	args = append(args, r.config.passwordArgs()...)
	args = append(args, path, "-")

	out, err := r.run(ctx, "pdftotext", args...)
	if err == nil {
		return string(out), nil
	}

	if errors.Is(err, ErrPopplerNotInstalled) && r.config.NativeFallback && mode <= TextLayout {
		fmt.Fprintf(getLogger(r.config), "Warning: pdftotext not found, using native text extraction for %s\n", path)
		return nativeText(path, first, last)
	}
	return "", err
}

// nativeText reads page text with github.com/ledongthuc/pdf.
func nativeText(path string, first, last int) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	if first < 1 {
		first = 1
	}
	if last < 1 || last > total {
		last = total
	}

	var builder strings.Builder
	for i := first; i <= last; i++ {
		page := reader.Page(i)
		if !page.V.IsNull() {
			text, err := page.GetPlainText(nil)
			if err != nil {
				return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
			}
			builder.WriteString(text)
		}
		builder.WriteString("\f")
	}
	return builder.String(), nil
}

// SplitPages splits plain text output into pages on form feeds.
func SplitPages(text string) []string {
	pages := strings.Split(text, "\f")
	// pdftotext terminates the last page with a form feed too
	if len(pages) > 0 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
