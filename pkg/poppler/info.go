package poppler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Info is the parsed output of pdfinfo
type Info struct {
	Pages      int
	PageWidth  float64 // Size of the first page in points
	PageHeight float64
	Encrypted  bool
	Fields     map[string]string // Every "Key: value" line as printed
}

// ParseInfo parses pdfinfo output
func ParseInfo(output string) (*Info, error) {
	info := &Info{Fields: make(map[string]string)}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		info.Fields[key] = value

		switch key {
		case "Pages":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid page count %q: %w", value, err)
			}
			info.Pages = n
		case "Page size":
			// "612 x 792 pts (letter)"
			parts := strings.Fields(value)
			if len(parts) >= 3 && parts[1] == "x" {
				info.PageWidth, _ = strconv.ParseFloat(parts[0], 64)
				info.PageHeight, _ = strconv.ParseFloat(parts[2], 64)
			}
		case "Encrypted":
			info.Encrypted = strings.HasPrefix(value, "yes")
		}
	}

	if _, ok := info.Fields["Pages"]; !ok {
		return nil, errors.New("could not determine page count from pdfinfo")
	}
	return info, nil
}

// Info runs pdfinfo on the document
func (r *Runner) Info(ctx context.Context, path string) (*Info, error) {
	args := append(r.config.passwordArgs(), path)
	out, err := r.run(ctx, "pdfinfo", args...)
	if err != nil {
		return nil, err
	}
	return ParseInfo(string(out))
}

// PageCount returns the number of pages of the document. When pdfinfo is
// missing and NativeFallback is set, pdfcpu reads the page count instead.
func (r *Runner) PageCount(ctx context.Context, path string) (int, error) {
	info, err := r.Info(ctx, path)
	if err == nil {
		return info.Pages, nil
	}

	if errors.Is(err, ErrPDFInfoNotInstalled) {
		if !r.config.NativeFallback {
			return 0, err
		}
		n, nerr := api.PageCountFile(path)
		if nerr != nil {
			return 0, &PageCountError{Path: path, Err: nerr}
		}
		return n, nil
	}

	var timeout *TimeoutError
	if errors.As(err, &timeout) {
		return 0, err
	}
	return 0, &PageCountError{Path: path, Err: err}
}
