package hocr

import (
	"strconv"
	"strings"

	"github.com/gardar/poppdf/pkg/layout"
)

// Properties are the entries of an hOCR title attribute
type Properties map[string][]string

// ParseTitle breaks down an hOCR title attribute into its properties
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) Properties {
	props := make(Properties)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(part)
		if len(items) > 0 {
			props[items[0]] = items[1:]
		}
	}
	return props
}

// BBox returns the bbox property
func (p Properties) BBox() (*layout.BoundingBox, bool) {
	v := p["bbox"]
	if len(v) < 4 {
		return nil, false
	}
	var c [4]float64
	for i := range c {
		f, err := strconv.ParseFloat(v[i], 64)
		if err != nil {
			return nil, false
		}
		c[i] = f
	}
	return layout.NewBoundingBox(c[0], c[1], c[2], c[3]), true
}

// Float returns the first value of a numeric property
func (p Properties) Float(key string) (float64, bool) {
	v := p[key]
	if len(v) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(v[0], 64)
	return f, err == nil
}

// Value returns the values of a property joined by spaces, unquoted
func (p Properties) Value(key string) string {
	return strings.Trim(strings.Join(p[key], " "), `"`)
}
