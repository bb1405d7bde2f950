// Package overlay writes PDFs carrying a text layer positioned from layout
// text boxes.
//
// The text is drawn on an optional content group (layer) per page. It is
// invisible but:
// - Fully searchable
// - Selectable with mouse drag operations
// - Can be toggled on/off in compatible PDF readers
//
// In debug mode the text is drawn in red, with word boxes outlined in red
// and text boxes in blue, to check the geometry by eye.
//
// Main Functions:
//
// - Assemble: Creates a new PDF from page images with a text layer
// - Apply: Adds a text layer to an existing PDF
// - CheckLayers: Detects existing layers to prevent duplication
package overlay

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/gardar/poppdf/pkg/layout"
)

// ErrLayerExists is returned by Apply when the PDF already has the layer
var ErrLayerExists = errors.New("file already has a text layer")

// Page pairs a layout page with its rendered image
type Page struct {
	Layout *layout.Page
	Image  []byte // Encoded PNG, JPEG, GIF or TIFF
}

// Assemble creates a PDF with one page per input: the image stretched over
// the page and the text layer on top. Page sizes come from the layout pages.
func Assemble(pages []Page, config Config) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages provided")
	}

	pdf := fpdf.New("P", "pt", "A4", "")

	for i, page := range pages {
		if page.Layout == nil {
			return nil, fmt.Errorf("page %d has no layout", i+1)
		}
		w, h := page.Layout.Width, page.Layout.Height
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("page %d has no size", page.Layout.Number)
		}
		if len(page.Image) == 0 {
			return nil, fmt.Errorf("image %d is empty", i+1)
		}

		data, imageType, err := prepareImage(page.Image)
		if err != nil {
			return nil, fmt.Errorf("image %d has invalid format: %w", i+1, err)
		}
		if config.Debug {
			fmt.Fprintf(getLogger(config), "Image %d is of type: %s\n", i+1, imageType)
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		imageName := fmt.Sprintf("img%d", i)
		opts := fpdf.ImageOptions{ReadDpi: false, ImageType: imageType}
		pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(data))
		pdf.ImageOptions(imageName, 0, 0, w, h, false, opts, 0, "")

		drawLayer(pdf, page.Layout, config)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply imports the pages of an existing PDF, starting at config.StartPage,
// and draws one layout page over each. It refuses PDFs that already carry
// the layer unless config.Force is set.
func Apply(pdfData []byte, pages []*layout.Page, config Config) (out []byte, err error) {
	if len(pdfData) == 0 {
		return nil, ErrEmptyPDF
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages provided")
	}
	if config.StartPage < 1 {
		return nil, fmt.Errorf("start page must be at least 1, got %d", config.StartPage)
	}

	logger := getLogger(config)
	if config.DumpPDF {
		dumpPDFStructure(pdfData, 2000, logger)
	}

	check, err := CheckLayers(pdfData, config.LayerName)
	if err != nil {
		return nil, fmt.Errorf("layer detection failed: %w", err)
	}
	if config.LogWarnings {
		for _, warning := range check.Warnings {
			fmt.Fprintln(logger, "Warning:", warning)
		}
	}
	if check.HasLayer {
		if !config.Force {
			return nil, fmt.Errorf("%w: layer '%s'", ErrLayerExists, check.LayerName)
		}
		if config.LogWarnings {
			fmt.Fprintln(logger, "Warning: file already has a text layer; reapplying will duplicate it")
		}
	}

	// gofpdi panics on documents it cannot parse
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("failed to import PDF: %v", r)
		}
	}()

	pdf := fpdf.New("P", "pt", "", "")
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdfData))

	for i, page := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})

		tpl := importer.ImportPageFromStream(pdf, &rs, config.StartPage+i, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, page.Width, 0)

		drawLayer(pdf, page, config)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
