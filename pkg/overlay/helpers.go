package overlay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// getLogger returns the appropriate io.Writer to use for logging
// based on the configuration settings, defaulting to os.Stdout if nil.
func getLogger(config Config) io.Writer {
	if config.Logger == nil {
		return os.Stdout
	}
	return config.Logger
}

// encodeText converts text to Windows-1252, the encoding of the fpdf core
// fonts. Characters outside it are replaced and ok is false.
func encodeText(s string) (out string, ok bool) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err == nil {
		return out, true
	}
	out, _ = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
	return out, false
}

// dumpPDFStructure writes the head of the PDF and the surroundings of every
// /OCG reference to logger, for debugging layer detection.
func dumpPDFStructure(pdfData []byte, headLen int, logger io.Writer) {
	head := pdfData[:min(headLen, len(pdfData))]
	fmt.Fprintf(logger, "--- first %d of %d bytes ---\n%s\n--- end ---\n", len(head), len(pdfData), head)

	ocg := []byte("/OCG")
	for off := 0; ; {
		idx := bytes.Index(pdfData[off:], ocg)
		if idx < 0 {
			break
		}
		at := off + idx
		fmt.Fprintf(logger, "--- /OCG at offset %d ---\n%s\n", at, pdfData[max(at-40, 0):min(at+120, len(pdfData))])
		off = at + len(ocg)
	}
}
