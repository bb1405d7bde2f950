package pdfdoc

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/gardar/poppdf/pkg/bboxlayout"
	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/poppler"
)

// AnnotationKind is the shape of a markup annotation
type AnnotationKind string

const (
	AnnotRectangle AnnotationKind = "rectangle" // Square annotation
	AnnotOval      AnnotationKind = "oval"      // Circle annotation
	AnnotNote      AnnotationKind = "note"      // Text (sticky note) annotation
)

// MinAnnotatedWords is the number of words a document needs before
// AnnotatedFlows trusts its text layer.
const MinAnnotatedWords = 10

// ErrNoFlows is returned by AnnotatedFlows when the layout was not read
// with SourceBBox
var ErrNoFlows = errors.New("layout has no flows")

var annotationKinds = map[model.AnnotationType]AnnotationKind{
	model.AnnSquare: AnnotRectangle,
	model.AnnCircle: AnnotOval,
	model.AnnText:   AnnotNote,
}

// Annotation is a markup annotation placed on a page
type Annotation struct {
	Page    int // 1-based page number
	Kind    AnnotationKind
	Box     *layout.BoundingBox // Page points, top-left origin
	Content string
	ID      string // NM entry, often empty
}

// EnrichedAnnotation is a rectangle annotation with the text boxes it covers
type EnrichedAnnotation struct {
	Annotation
	Matches []layout.Match
}

// Flow is a pdftotext flow, usually a paragraph, with the words that
// annotations mark in it
type Flow struct {
	Index     int // Document-wide flow index
	Page      int
	Words     []string
	Annotated map[string][]int // Annotation description -> word indices
}

// Annotations reads the rectangle, oval and note annotations on the loaded
// pages. Other annotation types are skipped with a warning.
func (d *Document) Annotations() ([]Annotation, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", d.Path, err)
	}
	defer f.Close()

	byPage, err := api.Annotations(f, nil, pdfConfig(d.config))
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}

	heights := make(map[int]float64, len(d.Pages))
	for _, p := range d.Pages {
		if p.Layout != nil {
			heights[p.Number] = p.Layout.Height
		}
	}
	return collectAnnotations(byPage, heights, d.log()), nil
}

// collectAnnotations converts pdfcpu's per page annotation cache. Pages
// missing from heights are ignored. Annotations keep object number order
// within a page.
func collectAnnotations(byPage map[int]model.PgAnnots, heights map[int]float64, logger io.Writer) []Annotation {
	type entry struct {
		objNr int
		ann   model.AnnotationRenderer
	}

	var out []Annotation
	for _, pageNr := range slices.Sorted(maps.Keys(byPage)) {
		height, ok := heights[pageNr]
		if !ok {
			continue
		}

		var entries []entry
		for _, annots := range byPage[pageNr] {
			for objNr, ann := range annots.Map {
				entries = append(entries, entry{objNr, ann})
			}
		}
		slices.SortFunc(entries, func(a, b entry) int { return a.objNr - b.objNr })

		for _, e := range entries {
			typ := e.ann.Type()
			kind, ok := annotationKinds[typ]
			if !ok {
				// Popups belong to another annotation
				if typ != model.AnnPopup {
					fmt.Fprintf(logger, "Warning: skipping %s annotation on page %d\n", model.AnnotTypeStrings[typ], pageNr)
				}
				continue
			}
			r, ok := annotationRect(e.ann)
			if !ok {
				fmt.Fprintf(logger, "Warning: no rectangle for annotation obj#%d on page %d\n", e.objNr, pageNr)
				continue
			}
			out = append(out, Annotation{
				Page:    pageNr,
				Kind:    kind,
				Box:     flipRect(r, height),
				Content: e.ann.ContentString(),
				ID:      e.ann.ID(),
			})
		}
	}
	return out
}

func annotationRect(ar model.AnnotationRenderer) (types.Rectangle, bool) {
	switch a := ar.(type) {
	case model.Annotation:
		return a.Rect, true
	case *model.Annotation:
		return a.Rect, true
	case model.TextAnnotation:
		return a.Rect, true
	case *model.TextAnnotation:
		return a.Rect, true
	case model.SquareAnnotation:
		return a.Rect, true
	case *model.SquareAnnotation:
		return a.Rect, true
	case model.CircleAnnotation:
		return a.Rect, true
	case *model.CircleAnnotation:
		return a.Rect, true
	}
	return types.Rectangle{}, false
}

// flipRect moves a rectangle from PDF user space, where y grows up from the
// bottom of the page, into top-down page points
func flipRect(r types.Rectangle, pageHeight float64) *layout.BoundingBox {
	left, right := min(r.LL.X, r.UR.X), max(r.LL.X, r.UR.X)
	low, high := min(r.LL.Y, r.UR.Y), max(r.LL.Y, r.UR.Y)
	return layout.NewBoundingBox(left, pageHeight-high, right, pageHeight-low)
}

// Enrich matches every rectangle annotation against the text boxes of its
// page. Oval and note annotations are left out.
func (d *Document) Enrich(annots []Annotation) []EnrichedAnnotation {
	var out []EnrichedAnnotation
	for _, a := range annots {
		if a.Kind != AnnotRectangle {
			continue
		}
		e := EnrichedAnnotation{Annotation: a}
		if p, ok := d.Page(a.Page); ok {
			e.Matches = p.Find(a.Box)
		}
		if len(e.Matches) == 0 {
			fmt.Fprintf(d.log(), "Warning: annotation on page %d matches no text\n", a.Page)
		}
		out = append(out, e)
	}
	return out
}

// AnnotatedFlows groups the rectangle annotations by the flow their words
// fall in. Each annotation adds the indices of its words to the flow under
// describe(content), or the content itself when describe is nil.
//
// Annotations without content, without matching words or spanning several
// flows are skipped with a warning. A document with fewer than
// MinAnnotatedWords words yields no flows at all.
func (d *Document) AnnotatedFlows(annots []Annotation, describe func(string) string) (map[int]*Flow, error) {
	flows, pageWords, total := d.flowWords()
	if len(flows) == 0 {
		return nil, ErrNoFlows
	}
	if total < MinAnnotatedWords {
		fmt.Fprintf(d.log(), "Warning: only %d words in %s, no text layer to annotate\n", total, d.Path)
		return map[int]*Flow{}, nil
	}
	if describe == nil {
		describe = func(s string) string { return s }
	}

	for _, a := range annots {
		if a.Kind != AnnotRectangle {
			continue
		}
		matches := layout.MatchWords(a.Box, pageWords[a.Page], layout.MatchThreshold)
		if len(matches) == 0 {
			fmt.Fprintf(d.log(), "Warning: annotation on page %d matches no words\n", a.Page)
			continue
		}

		flowID := matches[0].Box.Box().Attrs[bboxlayout.FlowAttr]
		indices := make([]int, 0, len(matches))
		for _, m := range matches {
			if m.Box.Box().Attrs[bboxlayout.FlowAttr] != flowID {
				flowID = ""
				break
			}
			indices = append(indices, m.Box.Index())
		}
		if flowID == "" {
			fmt.Fprintf(d.log(), "Warning: annotation on page %d spans several flows, skipping\n", a.Page)
			continue
		}
		if a.Content == "" {
			fmt.Fprintf(d.log(), "Warning: annotation on page %d has no content, skipping\n", a.Page)
			continue
		}

		slices.Sort(indices)
		if indices[len(indices)-1]-indices[0] != len(indices)-1 {
			fmt.Fprintf(d.log(), "Warning: annotated words on page %d are not connected\n", a.Page)
		}

		id, _ := strconv.Atoi(flowID)
		f := flows[id]
		desc := describe(a.Content)
		f.Annotated[desc] = append(f.Annotated[desc], indices...)
	}
	return flows, nil
}

// flowWords gives every word of every flow its own text box, indexed by its
// position in the flow. total counts all words of the document.
func (d *Document) flowWords() (flows map[int]*Flow, pageWords map[int][]*layout.TextBox, total int) {
	flows = make(map[int]*Flow)
	pageWords = make(map[int][]*layout.TextBox)

	for _, p := range d.Pages {
		for _, tb := range p.Boxes() {
			total += len(tb.Words())
			attr, ok := tb.Box().Attrs[bboxlayout.FlowAttr]
			if !ok {
				continue
			}
			id, err := strconv.Atoi(attr)
			if err != nil {
				continue
			}
			f, ok := flows[id]
			if !ok {
				f = &Flow{Index: id, Page: p.Number, Annotated: make(map[string][]int)}
				flows[id] = f
			}

			for _, w := range tb.Words() {
				wb := layout.NewTextBox(w.Text, p.Layout,
					layout.WithGeometry(w.Box.Left(), w.Box.Top(), w.Box.Right(), w.Box.Bottom()),
					layout.WithIndex(len(f.Words)),
					layout.WithBoxOptions(layout.WithAttr(bboxlayout.FlowAttr, attr)),
				)
				f.Words = append(f.Words, w.Text)
				pageWords[p.Number] = append(pageWords[p.Number], wb)
			}
		}
	}
	return flows, pageWords, total
}

// RemoveAnnotations writes the PDF read from rs to w with every annotation
// removed. A document without annotations is copied unchanged.
func RemoveAnnotations(rs io.ReadSeeker, w io.Writer, config poppler.Config) error {
	byPage, err := api.Annotations(rs, nil, pdfConfig(config))
	if err != nil {
		return fmt.Errorf("failed to read annotations: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if len(byPage) == 0 {
		_, err := io.Copy(w, rs)
		return err
	}
	if err := api.RemoveAnnotations(rs, w, nil, nil, nil, pdfConfig(config)); err != nil {
		return fmt.Errorf("failed to remove annotations: %w", err)
	}
	return nil
}

// RemoveAnnotationsFile is RemoveAnnotations from the file in to the file out
func RemoveAnnotationsFile(in, out string, config poppler.Config) error {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", in, err)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := RemoveAnnotations(src, dst, config); err != nil {
		dst.Close()
		os.Remove(out)
		return err
	}
	return dst.Close()
}

func pdfConfig(c poppler.Config) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = c.UserPassword
	conf.OwnerPW = c.OwnerPassword
	return conf
}

func (d *Document) log() io.Writer {
	if d.logger == nil {
		return os.Stdout
	}
	return d.logger
}
