package layout

// mostCommon returns the most frequent value. Ties go to the value that was
// seen first. ok is false for an empty input.
func mostCommon[T comparable](values []T) (best T, ok bool) {
	if len(values) == 0 {
		return best, false
	}

	counts := make(map[T]int, len(values))
	order := make([]T, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, true
}
