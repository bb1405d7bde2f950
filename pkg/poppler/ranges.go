package poppler

import "context"

// Range is an inclusive span of 1-based page numbers
type Range struct {
	First int
	Last  int
}

// Len returns the number of pages in the range
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

// SplitRange divides [first, last] into at most n contiguous chunks of
// near equal size. The first chunks take the remainder.
func SplitRange(first, last, n int) []Range {
	total := last - first + 1
	if total <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	size, rem := total/n, total%n
	chunks := make([]Range, 0, n)
	start := first
	for i := 0; i < n; i++ {
		count := size
		if i < rem {
			count++
		}
		chunks = append(chunks, Range{First: start, Last: start + count - 1})
		start += count
	}
	return chunks
}

// resolveRange clamps a requested page range to the document.
// Zero or negative bounds mean the start or end of the document.
func (r *Runner) resolveRange(ctx context.Context, path string, first, last int) (Range, error) {
	count, err := r.PageCount(ctx, path)
	if err != nil {
		return Range{}, err
	}
	if first < 1 {
		first = 1
	}
	if last < 1 || last > count {
		last = count
	}
	return Range{First: first, Last: last}, nil
}
