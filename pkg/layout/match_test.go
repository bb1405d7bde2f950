package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchWords(t *testing.T) {
	inside := NewTextBox("inside", nil, WithGeometry(10, 10, 20, 20))
	half := NewTextBox("half", nil, WithGeometry(25, 10, 35, 20))
	outside := NewTextBox("outside", nil, WithGeometry(100, 100, 110, 110))
	boxes := []*TextBox{inside, half, outside}

	region := NewBoundingBox(0, 0, 30, 30)
	matches := MatchWords(region, boxes, MatchThreshold)
	require.Len(t, matches, 2)
	assert.Same(t, inside, matches[0].Box)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	assert.Same(t, half, matches[1].Box)
	assert.InDelta(t, 0.5, matches[1].Score, 1e-9)
}

func TestMatchWordsFallsBackToBestWeakMatch(t *testing.T) {
	weak := NewTextBox("weak", nil, WithGeometry(0, 0, 10, 10))
	weaker := NewTextBox("weaker", nil, WithGeometry(7, 0, 17, 10))
	region := NewBoundingBox(-10, -10, 3, 20)

	matches := MatchWords(region, []*TextBox{weaker, weak}, MatchThreshold)
	require.Len(t, matches, 1)
	assert.Same(t, weak, matches[0].Box)
	assert.InDelta(t, 0.3, matches[0].Score, 1e-9)

	assert.Empty(t, MatchWords(NewBoundingBox(500, 500, 600, 600), []*TextBox{weak}, MatchThreshold))
}

func TestWordIndices(t *testing.T) {
	words := []string{"the", "quick", "brown", "fox"}
	// "the quick brown fox"
	//  0123456789012345678

	tests := []struct {
		name        string
		lo, hi      int
		wantFull    []int
		wantPartial []int
	}{
		{"single word", 4, 9, []int{1}, nil},
		{"two words", 4, 15, []int{1, 2}, nil},
		{"partial both ends", 5, 12, nil, []int{1, 2}},
		{"whole text", 0, 19, []int{0, 1, 2, 3}, nil},
		{"only the space", 3, 4, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full, partial := WordIndices(words, tt.lo, tt.hi)
			assert.Equal(t, tt.wantFull, full)
			assert.Equal(t, tt.wantPartial, partial)
		})
	}
}
