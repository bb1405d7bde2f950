package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxDimensions(t *testing.T) {
	b := NewBoundingBox(10, 20, 110, 70)
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 50.0, b.Height())
	assert.Equal(t, "(10 20 110 70)", b.String())
}

func TestBoundingBoxTranslationInvariance(t *testing.T) {
	base := NewBoundingBox(3.5, -2, 40.25, 18)
	for _, d := range []float64{-100, -0.5, 0, 7, 1e4} {
		moved := base.Translate(d, d)
		assert.InDelta(t, base.Width(), moved.Width(), 1e-9)
		assert.InDelta(t, base.Height(), moved.Height(), 1e-9)
	}
}

func TestBoundingBoxHeightIsCached(t *testing.T) {
	b := NewBoundingBox(0, 0, 10, 10)

	b.SetBottom(30)
	assert.Equal(t, 10.0, b.Height(), "height follows construction, not mutation")
	assert.Equal(t, 10.0, b.Width())

	b.SetRight(25)
	assert.Equal(t, 25.0, b.Width(), "width is live")

	b.SetHeight(12.5)
	assert.Equal(t, 12.5, b.Height())

	b.RecomputeHeight()
	assert.Equal(t, 30.0, b.Height())
}

func TestBoundingBoxMalformed(t *testing.T) {
	b := NewBoundingBox(10, 0, 5, 10)
	assert.Equal(t, -5.0, b.Width())

	var mge *MalformedGeometryError
	require.ErrorAs(t, b.Validate(), &mge)
	assert.Equal(t, 10.0, mge.Left)

	_, err := NewValidBoundingBox(0, 10, 5, 0)
	assert.ErrorAs(t, err, &mge)

	ok, err := NewValidBoundingBox(0, 0, 5, 5, WithSpaceBelow(1))
	require.NoError(t, err)
	require.NotNil(t, ok.SpaceBelow)
	assert.Equal(t, 1.0, *ok.SpaceBelow)
}

func TestBoundingBoxClone(t *testing.T) {
	b := NewBoundingBox(0, 0, 1, 1, WithAttr("k", "v"))
	c := b.Clone()
	c.SetLeft(-1)
	c.Attrs["k"] = "changed"

	assert.Equal(t, 0.0, b.Left())
	assert.Equal(t, "v", b.Attrs["k"])
}

func TestIntersectionAndUnion(t *testing.T) {
	a := NewBoundingBox(0, 0, 10, 10)
	b := NewBoundingBox(5, 5, 15, 15)

	inter := a.Intersection(b)
	require.NotNil(t, inter)
	assert.Equal(t, "(5 5 10 10)", inter.String())
	assert.Equal(t, 25.0, inter.Area())

	assert.Equal(t, "(0 0 15 15)", a.Union(b).String())
	assert.Nil(t, a.Intersection(NewBoundingBox(11, 11, 12, 12)))

	// Works against a text box too.
	tb := NewTextBox("x", nil, WithGeometry(8, 8, 20, 20))
	assert.Equal(t, "(8 8 10 10)", a.Intersection(tb).String())
}

func TestIoU(t *testing.T) {
	a := NewBoundingBox(0, 0, 10, 10)
	assert.InDelta(t, 1.0, a.IoU(NewBoundingBox(0, 0, 10, 10)), 1e-9)
	assert.InDelta(t, 25.0/175.0, a.IoU(NewBoundingBox(5, 5, 15, 15)), 1e-9)
	assert.Equal(t, 0.0, a.IoU(NewBoundingBox(20, 20, 30, 30)))
}

func TestContainsAndCenter(t *testing.T) {
	outer := NewBoundingBox(0, 0, 5, 5)
	assert.True(t, outer.Contains(NewBoundingBox(1, 1, 2, 2)))
	assert.True(t, outer.Contains(NewBoundingBox(0, 0, 5, 5)))
	assert.False(t, NewBoundingBox(1, 1.1, 2, 3).Contains(NewBoundingBox(1, 1, 2, 2)))

	x, y := outer.Center()
	assert.Equal(t, 2.5, x)
	assert.Equal(t, 2.5, y)
}

func TestScale(t *testing.T) {
	b := NewBoundingBox(10, 20, 30, 40).Scale(0.5, 2)
	assert.Equal(t, "(5 40 15 80)", b.String())
}

func TestToImageBox(t *testing.T) {
	b := NewBoundingBox(72, 72, 144, 90)

	img, err := b.ToImageBox(612, 792, 1275, 1650)
	require.NoError(t, err)
	assert.Equal(t, "(150 150 300 187)", img.String())

	_, err = b.ToImageBox(612, 792, 1650, 1275)
	assert.ErrorIs(t, err, ErrRotatedPage)
}

func TestMergeOverlapping(t *testing.T) {
	boxes := []*BoundingBox{
		NewBoundingBox(0, 0, 10, 10),
		NewBoundingBox(5, 5, 15, 15),
		NewBoundingBox(100, 100, 110, 110),
		NewBoundingBox(14, 14, 20, 20),
	}

	merged := MergeOverlapping(boxes)
	require.Len(t, merged, 2)
	assert.Equal(t, "(100 100 110 110)", merged[0].String())
	assert.Equal(t, "(0 0 20 20)", merged[1].String())

	// Input is left untouched.
	assert.Equal(t, "(5 5 15 15)", boxes[1].String())
}
