package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/poppdf/pkg/layout"
	"github.com/gardar/poppdf/pkg/overlay"
	"github.com/gardar/poppdf/pkg/poppler"
)

const infoOutput = `Pages:           2
Encrypted:       no
Page size:       200 x 100 pts
`

const xmlOutput = `<?xml version="1.0" encoding="UTF-8"?>
<pdf2xml producer="poppler" version="22.02.0">
<page number="1" position="absolute" top="0" left="0" height="100" width="200">
	<fontspec id="0" size="12" family="Times-Bold" color="#000000"/>
<text top="10" left="10" width="90" height="12" font="0"><b>Total due</b></text>
<text top="40" left="10" width="40" height="12" font="0">42.00</text>
</page>
<page number="2" position="absolute" top="0" left="0" height="100" width="200">
<text top="10" left="10" width="60" height="12" font="0">Thanks</text>
</page>
</pdf2xml>
`

const bboxOutput = `<html><body><doc>
<page width="200" height="100"><flow><block><line xMin="10" yMin="10" xMax="100" yMax="22">
<word xMin="10" yMin="10" xMax="50" yMax="22">Total</word><word xMin="60" yMin="10" xMax="100" yMax="22">due</word>
</line></block></flow></page>
<page width="200" height="100"><flow><block><line xMin="10" yMin="10" xMax="70" yMax="22">
<word xMin="10" yMin="10" xMax="70" yMax="22">Thanks</word>
</line></block></flow></page>
</doc></body></html>`

// fakePoppler answers every poppler tool from the fixtures above
type fakePoppler struct {
	mu    sync.Mutex
	names []string
	image []byte
	fail  string
}

func (f *fakePoppler) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.names = append(f.names, name)
	f.mu.Unlock()

	if name == f.fail {
		return nil, []byte("boom"), errors.New("exit status 1")
	}

	switch name {
	case "pdfinfo":
		return []byte(infoOutput), nil, nil
	case "pdftohtml":
		return []byte(xmlOutput), nil, nil
	case "pdftotext":
		if slices.Contains(args, "-bbox-layout") {
			return []byte(bboxOutput), nil, nil
		}
		return []byte("Total due\n42.00\n\fThanks\n\f"), nil, nil
	case "pdftoppm":
		first, _ := strconv.Atoi(argAfter(args, "-f"))
		last, _ := strconv.Atoi(argAfter(args, "-l"))
		prefix := args[len(args)-1]
		for p := first; p <= last; p++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, p), f.image, 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %s", name)
}

func (f *fakePoppler) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.names, name)
}

func argAfter(args []string, flag string) string {
	if i := slices.Index(args, flag); i >= 0 && i+1 < len(args) {
		return args[i+1]
	}
	return ""
}

// pageImage is a 40x20 white PNG, a fifth of the 200x100 page
func pageImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 40, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetGray(5, 5, color.Gray{})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newRunner(t *testing.T) (*poppler.Runner, *fakePoppler) {
	fake := &fakePoppler{image: pageImage(t)}
	return poppler.New(poppler.Config{Logger: io.Discard}, poppler.WithExecutor(fake)), fake
}

func TestOpen(t *testing.T) {
	runner, _ := newRunner(t)

	doc, err := Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)

	first := doc.Pages[0]
	assert.Equal(t, 1, first.Number)
	require.Len(t, first.Boxes(), 2)
	assert.Equal(t, "Total due", first.Boxes()[0].Text())
	assert.Equal(t, "Total due\n42.00\n", first.Text)
	require.NotNil(t, first.Image)
	assert.Equal(t, 1, first.Image.Page)

	bold, err := first.Boxes()[0].IsBold()
	require.NoError(t, err)
	assert.True(t, bold)

	second, ok := doc.Page(2)
	require.True(t, ok)
	assert.Equal(t, "Thanks\n", second.Text)
	assert.Len(t, doc.Layouts(), 2)

	_, ok = doc.Page(3)
	assert.False(t, ok)
}

func TestOpenLayoutOnly(t *testing.T) {
	runner, fake := newRunner(t)

	opts := DefaultOptions()
	opts.Images = false
	opts.Text = false

	doc, err := Open(context.Background(), runner, "doc.pdf", opts)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Nil(t, doc.Pages[0].Image)
	assert.False(t, fake.called("pdftoppm"))
	assert.False(t, fake.called("pdftotext"))
}

func TestOpenBBoxSource(t *testing.T) {
	runner, _ := newRunner(t)

	opts := DefaultOptions()
	opts.Source = SourceBBox
	opts.Images = false

	doc, err := Open(context.Background(), runner, "doc.pdf", opts)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, "Total due", doc.Pages[0].Boxes()[0].Text())
	assert.Equal(t, 2, doc.Pages[1].Number)
	assert.Equal(t, "Thanks\n", doc.Pages[1].Text)
}

func TestOpenFailure(t *testing.T) {
	runner, fake := newRunner(t)
	fake.fail = "pdftoppm"

	_, err := Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.Error(t, err)

	var execErr *poppler.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "boom", execErr.Stderr)
}

func TestParseSource(t *testing.T) {
	s, err := ParseSource("")
	require.NoError(t, err)
	assert.Equal(t, SourceXML, s)

	s, err = ParseSource("bbox")
	require.NoError(t, err)
	assert.Equal(t, SourceBBox, s)

	_, err = ParseSource("html")
	assert.Error(t, err)
}

func TestPageQueries(t *testing.T) {
	runner, _ := newRunner(t)
	doc, err := Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.NoError(t, err)
	page := doc.Pages[0]

	region := layout.NewBoundingBox(5, 5, 120, 25)
	within := page.Within(region)
	require.Len(t, within, 1)
	assert.Equal(t, "Total due", within[0].Text())

	matches := page.Find(layout.NewBoundingBox(0, 35, 30, 60))
	require.Len(t, matches, 1)
	assert.Equal(t, "42.00", matches[0].Box.Text())
	assert.InDelta(t, 0.5, matches[0].Score, 1e-9)

	assert.Len(t, page.Overlapping(layout.NewBoundingBox(0, 0, 200, 100)), 2)

	box, err := page.ImageBox(page.Boxes()[0])
	require.NoError(t, err)
	assert.Equal(t, 2.0, box.Left())
	assert.Equal(t, 2.0, box.Top())
	assert.Equal(t, 20.0, box.Right())

	empty := &Page{Number: 9}
	assert.Nil(t, empty.Boxes())
	assert.Nil(t, empty.Within(region))
	_, err = empty.ImageBox(region)
	assert.Error(t, err)
}

type fakeRecognizer struct {
	words []layout.Word
	err   error
}

func (f fakeRecognizer) Words([]byte) ([]layout.Word, error) {
	return f.words, f.err
}

func TestRecognize(t *testing.T) {
	runner, _ := newRunner(t)
	doc, err := Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.NoError(t, err)

	rec := fakeRecognizer{words: []layout.Word{
		{Text: "Total", FontSize: 2, Box: *layout.NewBoundingBox(2, 2, 10, 4)},
	}}

	page, err := doc.Pages[0].Recognize(rec)
	require.NoError(t, err)
	require.Len(t, page.Boxes, 1)

	tb := page.Boxes[0]
	assert.Equal(t, "Total", tb.Text())
	assert.Equal(t, 10.0, tb.Left())
	assert.Equal(t, 50.0, tb.Right())
	assert.Equal(t, 20.0, tb.Bottom())
	size, err := tb.FontSize()
	require.NoError(t, err)
	assert.Equal(t, 10.0, size)
}

func TestRebuild(t *testing.T) {
	runner, _ := newRunner(t)
	doc, err := Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.NoError(t, err)

	cfg := overlay.DefaultConfig()
	cfg.Logger = io.Discard
	rec := fakeRecognizer{words: []layout.Word{
		{Text: "Total", Box: *layout.NewBoundingBox(2, 2, 10, 4)},
	}}

	out, err := doc.Rebuild(context.Background(), rec, cfg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	layers, err := overlay.DetectLayers(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Text Layer (Page 1)", "Text Layer (Page 2)"}, layers)
}

func TestRebuildErrors(t *testing.T) {
	runner, _ := newRunner(t)
	opts := DefaultOptions()
	opts.Images = false
	doc, err := Open(context.Background(), runner, "doc.pdf", opts)
	require.NoError(t, err)

	_, err = doc.Rebuild(context.Background(), fakeRecognizer{}, overlay.DefaultConfig())
	assert.ErrorIs(t, err, ErrNoImage)

	doc, err = Open(context.Background(), runner, "doc.pdf", DefaultOptions())
	require.NoError(t, err)

	failing := fakeRecognizer{err: errors.New("engine down")}
	_, err = doc.Rebuild(context.Background(), failing, overlay.DefaultConfig())
	assert.ErrorContains(t, err, "engine down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = doc.Rebuild(ctx, fakeRecognizer{}, overlay.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}
