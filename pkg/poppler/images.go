package poppler

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
)

// Image is one rasterized page
type Image struct {
	Page   int    // 1-based page number
	Format string // png, jpeg or tiff
	Data   []byte // Encoded image
}

// Decode decodes the image data according to its format
func (i *Image) Decode() (image.Image, error) {
	r := bytes.NewReader(i.Data)
	switch i.Format {
	case FormatPNG:
		return png.Decode(r)
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatTIFF:
		return tiff.Decode(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, i.Format)
}

// Config returns the pixel dimensions without decoding the whole image
func (i *Image) Config() (image.Config, error) {
	r := bytes.NewReader(i.Data)
	switch i.Format {
	case FormatPNG:
		return png.DecodeConfig(r)
	case FormatJPEG:
		return jpeg.DecodeConfig(r)
	case FormatTIFF:
		return tiff.DecodeConfig(r)
	}
	return image.Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, i.Format)
}

// formatFlag maps an image format to its pdftoppm flag and file extension
func formatFlag(format string) (flag, ext string, err error) {
	switch format {
	case FormatPNG:
		return "-png", "png", nil
	case FormatJPEG:
		return "-jpeg", "jpg", nil
	case FormatTIFF:
		return "-tiff", "tif", nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Images rasterizes pages first to last with pdftoppm. The range is split
// into ThreadCount chunks rendered concurrently; the result is in page order.
func (r *Runner) Images(ctx context.Context, path string, first, last int) ([]*Image, error) {
	flag, ext, err := formatFlag(r.config.Format)
	if err != nil {
		return nil, err
	}

	rng, err := r.resolveRange(ctx, path, first, last)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "poppdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.ThreadCount)

	for i, chunk := range SplitRange(rng.First, rng.Last, r.config.ThreadCount) {
		prefix := filepath.Join(dir, fmt.Sprintf("c%03d", i))
		args := r.ppmArgs(flag, chunk, path, prefix)
		g.Go(func() error {
			_, err := r.run(gctx, "pdftoppm", args...)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return collectImages(dir, ext, r.config.Format)
}

func (r *Runner) ppmArgs(flag string, chunk Range, path, prefix string) []string {
	args := []string{
		flag,
		"-r", strconv.Itoa(r.config.DPI),
		"-f", strconv.Itoa(chunk.First),
		"-l", strconv.Itoa(chunk.Last),
	}
	if r.config.UseCropBox {
		args = append(args, "-cropbox")
	}
	if r.config.Grayscale {
		args = append(args, "-gray")
	}
	if r.config.Size > 0 {
		args = append(args, "-scale-to", strconv.Itoa(r.config.Size))
	}
	args = append(args, r.config.passwordArgs()...)
	return append(args, path, prefix)
}

// collectImages reads the files pdftoppm wrote. They are named
// <prefix>-<page>.<ext>, with the page number zero padded.
func collectImages(dir, ext, format string) ([]*Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var images []*Image
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != "."+ext {
			continue
		}
		page, ok := pageFromName(name)
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		images = append(images, &Image{Page: page, Format: format, Data: data})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Page < images[j].Page })
	return images, nil
}

// pageFromName extracts the page number of "c000-07.png"
func pageFromName(name string) (int, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndexByte(base, '-')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
