package layout

import "sort"

const (
	// MatchThreshold is the share of a box that must fall inside a region for
	// MatchWords to accept it.
	MatchThreshold = 0.4

	// MinMatchThreshold is the fallback share used when nothing reaches
	// MatchThreshold.
	MinMatchThreshold = 0.2
)

// Match is a text box paired with the share of its area inside a region.
type Match struct {
	Box   *TextBox
	Score float64
}

// MatchWords finds the boxes that mostly lie inside region.
//
// A box scores the area of its intersection with region divided by its own
// area. Boxes above threshold are returned in input order. When none qualify,
// the single best box above MinMatchThreshold is returned, if any.
func MatchWords(region Rect, boxes []*TextBox, threshold float64) []Match {
	if matches := scoreBoxes(region, boxes, threshold); len(matches) > 0 {
		return matches
	}

	matches := scoreBoxes(region, boxes, MinMatchThreshold)
	if len(matches) == 0 {
		return nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches[:1]
}

func scoreBoxes(region Rect, boxes []*TextBox, threshold float64) []Match {
	var matches []Match
	for _, tb := range boxes {
		area := tb.box.Area()
		if area <= 0 {
			continue
		}
		inter := tb.box.Intersection(region)
		if inter == nil {
			continue
		}
		if score := inter.Area() / area; score > threshold {
			matches = append(matches, Match{Box: tb, Score: score})
		}
	}
	return matches
}

// WordIndices reports which words a byte span [lo, hi) of the space-joined
// text touches. full holds words entirely inside the span,
// partial the ones it only cuts.
func WordIndices(words []string, lo, hi int) (full, partial []int) {
	pos := 0
	for i, w := range words {
		start, end := pos, pos+len(w)
		switch {
		case lo <= start && hi >= end:
			full = append(full, i)
		case lo < end && hi > start:
			partial = append(partial, i)
		}
		pos = end + 1
	}
	return full, partial
}
