// Package pdfdoc loads a PDF through the poppler tools into pages carrying
// their text boxes, rendered image and plain text.
//
// Main Functions:
//
// - Open: Extracts layout, images and text for a page range concurrently
// - Page.Find, Page.Within: Region queries over the text boxes of a page
// - Document.Rebuild: Recreates a searchable PDF from OCR of the page images
// - Document.Annotations, Enrich, AnnotatedFlows: Reads annotations and the
// words they mark
// - RemoveAnnotations: Writes a copy of a PDF without annotations
package pdfdoc

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/gardar/poppdf/pkg/bboxlayout"
	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/pdfxml"
	"github.com/gardar/poppdf/pkg/poppler"
)

// Document is a loaded PDF
type Document struct {
	Path  string
	Pages []*Page

	config poppler.Config
	logger io.Writer
}

// Open extracts the pages opts.First to opts.Last of the PDF at path.
// Layout, images and text are fetched by separate poppler processes that
// run concurrently.
func Open(ctx context.Context, runner *poppler.Runner, path string, opts Options) (*Document, error) {
	var (
		layouts []*layout.Page
		images  []*poppler.Image
		text    string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		layouts, err = loadLayout(gctx, runner, path, opts)
		return err
	})
	if opts.Images {
		g.Go(func() error {
			var err error
			images, err = runner.Images(gctx, path, opts.First, opts.Last)
			if err != nil {
				return fmt.Errorf("failed to render pages: %w", err)
			}
			return nil
		})
	}
	if opts.Text {
		g.Go(func() error {
			var err error
			text, err = runner.Text(gctx, path, opts.First, opts.Last, poppler.TextPlain)
			if err != nil {
				return fmt.Errorf("failed to extract text: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &Document{Path: path, config: runner.Config(), logger: getLogger(opts)}
	byNumber := make(map[int]*Page, len(layouts))
	for _, l := range layouts {
		p := &Page{Number: l.Number, Layout: l}
		byNumber[l.Number] = p
		doc.Pages = append(doc.Pages, p)
	}

	for _, img := range images {
		if p, ok := byNumber[img.Page]; ok {
			p.Image = img
		} else {
			fmt.Fprintf(getLogger(opts), "Warning: image for page %d has no layout\n", img.Page)
		}
	}

	if opts.Text {
		first := max(opts.First, 1)
		for i, t := range poppler.SplitPages(text) {
			if p, ok := byNumber[first+i]; ok {
				p.Text = t
			}
		}
	}

	return doc, nil
}

// loadLayout reads the page layout from the configured source
func loadLayout(ctx context.Context, runner *poppler.Runner, path string, opts Options) ([]*layout.Page, error) {
	switch opts.Source {
	case SourceBBox:
		out, err := runner.Text(ctx, path, opts.First, opts.Last, poppler.TextBBoxLayout)
		if err != nil {
			return nil, fmt.Errorf("failed to read bbox layout: %w", err)
		}
		doc, err := bboxlayout.Parse([]byte(out))
		if err != nil {
			return nil, err
		}
		doc.Renumber(max(opts.First, 1))
		return bboxlayout.Build(doc), nil

	case SourceXML, "":
		chunks, err := runner.XML(ctx, path, opts.First, opts.Last)
		if err != nil {
			return nil, fmt.Errorf("failed to read xml layout: %w", err)
		}
		var pages []*layout.Page
		for _, data := range chunks {
			doc, err := pdfxml.Parse(data)
			if err != nil {
				return nil, err
			}
			pages = append(pages, pdfxml.Build(doc)...)
		}
		return pages, nil
	}
	return nil, fmt.Errorf("unknown layout source %q", opts.Source)
}

// Layouts returns the layout page of every page
func (d *Document) Layouts() []*layout.Page {
	out := make([]*layout.Page, 0, len(d.Pages))
	for _, p := range d.Pages {
		if p.Layout != nil {
			out = append(out, p.Layout)
		}
	}
	return out
}

// Page returns the page with the given 1-based number
func (d *Document) Page(number int) (*Page, bool) {
	for _, p := range d.Pages {
		if p.Number == number {
			return p, true
		}
	}
	return nil, false
}
