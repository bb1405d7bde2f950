package poppler

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// XML dumps the layout of pages first to last with pdftohtml -xml at zoom 1,
// so coordinates are in points. One document is returned per chunk of the
// range; fontspec ids are only unique within a document.
func (r *Runner) XML(ctx context.Context, path string, first, last int) ([][]byte, error) {
	rng, err := r.resolveRange(ctx, path, first, last)
	if err != nil {
		return nil, err
	}

	chunks := SplitRange(rng.First, rng.Last, r.config.ThreadCount)
	docs := make([][]byte, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.ThreadCount)

	for i, chunk := range chunks {
		args := []string{
			"-xml", "-zoom", "1", "-i", "-q", "-stdout", "-fontfullname",
			"-enc", "UTF-8",
			"-f", strconv.Itoa(chunk.First),
			"-l", strconv.Itoa(chunk.Last),
		}
		args = append(args, r.config.passwordArgs()...)
		args = append(args, path)

		g.Go(func() error {
			out, err := r.run(gctx, "pdftohtml", args...)
			if err != nil {
				return err
			}
			docs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
