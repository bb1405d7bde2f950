package pdfdoc

import (
	"fmt"
	"io"
	"os"
)

// Source selects the poppler tool the page layout is read from
type Source string

const (
	SourceXML  Source = "xml"  // pdftohtml -xml, with font information
	SourceBBox Source = "bbox" // pdftotext -bbox-layout, one box per line
)

// ParseSource validates a layout source name
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceXML, SourceBBox:
		return Source(s), nil
	case "":
		return SourceXML, nil
	}
	return "", fmt.Errorf("unknown layout source %q", s)
}

// Options controls what Open extracts
type Options struct {
	First  int       // First page (0 = start of document)
	Last   int       // Last page (0 = end of document)
	Source Source    // Where the layout comes from
	Images bool      // Rasterize the pages
	Text   bool      // Extract plain text per page
	Logger io.Writer // Custom logger for warnings (nil = stdout)
}

// DefaultOptions returns options that load everything for the whole document
func DefaultOptions() Options {
	return Options{
		Source: SourceXML,
		Images: true,
		Text:   true,
		Logger: nil, // stdout
	}
}

func getLogger(opts Options) io.Writer {
	if opts.Logger == nil {
		return os.Stdout
	}
	return opts.Logger
}
