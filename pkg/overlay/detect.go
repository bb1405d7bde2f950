package overlay

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrEmptyPDF is returned when no PDF data is given
var ErrEmptyPDF = errors.New("empty PDF data")

var (
	// "<< /Type /OCG /Name (...) >>" as written by fpdf
	ocgTypeThenName = regexp.MustCompile(`/Type\s*/OCG\s*/Name\s*\(`)
	// "<< /Name (...) /Type /OCG >>"
	nameLiteral   = regexp.MustCompile(`/Name\s*\(`)
	ocgTypeFollow = regexp.MustCompile(`^\s*/Type\s*/OCG\b`)
)

// DetectLayers returns the names of the optional content groups (layers)
// found in the raw PDF data, in order of appearance and without duplicates.
// Object streams are not decompressed, so layers defined inside them are
// not found.
func DetectLayers(pdfData []byte) ([]string, error) {
	if len(pdfData) == 0 {
		return nil, ErrEmptyPDF
	}

	type found struct {
		pos  int
		name string
	}
	var names []found

	for _, loc := range ocgTypeThenName.FindAllIndex(pdfData, -1) {
		if raw, _, ok := readLiteral(pdfData, loc[1]-1); ok {
			names = append(names, found{loc[0], raw})
		}
	}
	for _, loc := range nameLiteral.FindAllIndex(pdfData, -1) {
		raw, end, ok := readLiteral(pdfData, loc[1]-1)
		if !ok {
			continue
		}
		if ocgTypeFollow.Match(pdfData[end:min(end+50, len(pdfData))]) {
			names = append(names, found{loc[0], raw})
		}
	}

	// Restore document order across both patterns
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j].pos < names[j-1].pos; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}

	unique := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, n := range names {
		name := decodeTextString(n.name)
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique, nil
}

// readLiteral reads the PDF literal string opening at data[start] and
// returns its unescaped bytes and the index after the closing parenthesis.
func readLiteral(data []byte, start int) (string, int, bool) {
	if start >= len(data) || data[start] != '(' {
		return "", 0, false
	}

	var out []byte
	depth := 0
	for i := start; i < len(data); i++ {
		c := data[i]
		switch c {
		case '(':
			if depth > 0 {
				out = append(out, c)
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				return string(out), i + 1, true
			}
			out = append(out, c)
		case '\\':
			i++
			if i >= len(data) {
				return "", 0, false
			}
			switch e := data[i]; e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r':
				// line continuation
				if i+1 < len(data) && data[i+1] == '\n' {
					i++
				}
			case '\n':
			default:
				if e >= '0' && e <= '7' {
					v := 0
					n := 0
					for ; n < 3 && i < len(data) && data[i] >= '0' && data[i] <= '7'; n++ {
						v = v*8 + int(data[i]-'0')
						i++
					}
					i--
					out = append(out, byte(v))
				} else {
					out = append(out, e)
				}
			}
		default:
			out = append(out, c)
		}
	}
	return "", 0, false
}

// decodeTextString decodes a PDF text string: UTF-16BE with a byte order
// mark, otherwise PDFDocEncoding, which matches Latin-1 for printable text.
func decodeTextString(s string) string {
	if strings.HasPrefix(s, "\xfe\xff") {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		if out, err := dec.String(s); err == nil {
			return out
		}
	}
	if out, err := charmap.ISO8859_1.NewDecoder().String(s); err == nil {
		return out
	}
	return s
}

// LayerCheckResult contains the results of checking for text layers
type LayerCheckResult struct {
	Layers    []string // All detected layers
	HasLayer  bool     // True if the configured layer exists
	LayerName string   // Name of the detected layer (if any)
	Warnings  []string // Any warnings about potential text layers
}

// CheckLayers checks whether the PDF already carries a layer named
// layerName, either bare or with a "(Page N)" suffix.
func CheckLayers(pdfData []byte, layerName string) (LayerCheckResult, error) {
	result := LayerCheckResult{}

	layers, err := DetectLayers(pdfData)
	if err != nil {
		return result, fmt.Errorf("cannot analyze layers: %w", err)
	}
	result.Layers = layers

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(layerName) + `(\s*\(Page\s*\d+\))?$`)

	for _, layer := range layers {
		if pattern.MatchString(layer) {
			if !result.HasLayer {
				result.HasLayer = true
				result.LayerName = layer
			}
			continue
		}

		lower := strings.ToLower(layer)
		if strings.Contains(lower, "ocr") || strings.Contains(lower, "text") {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Existing layer detected that might contain text: %s", layer))
		}
	}

	return result, nil
}
