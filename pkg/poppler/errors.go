package poppler

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrPopplerNotInstalled matches any missing poppler binary
	ErrPopplerNotInstalled = errors.New("poppler is not installed or not in PATH")
	// ErrPDFInfoNotInstalled matches a missing pdfinfo binary
	ErrPDFInfoNotInstalled = errors.New("pdfinfo is not installed or not in PATH")
	// ErrUnsupportedFormat is returned for image formats pdftoppm cannot write
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNoInput is returned by Merge when no input files are given
	ErrNoInput = errors.New("no input files")
)

// NotInstalledError reports a poppler binary that could not be started
type NotInstalledError struct {
	Binary string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("%s is not installed or not in PATH", e.Binary)
}

// Is matches ErrPopplerNotInstalled for every binary and ErrPDFInfoNotInstalled
// for pdfinfo.
func (e *NotInstalledError) Is(target error) bool {
	switch target {
	case ErrPopplerNotInstalled:
		return true
	case ErrPDFInfoNotInstalled:
		return e.Binary == "pdfinfo"
	}
	return false
}

// PageCountError reports that the page count of a document could not be read
type PageCountError struct {
	Path string
	Err  error
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("unable to get page count of %s: %v", e.Path, e.Err)
}

func (e *PageCountError) Unwrap() error { return e.Err }

// SyntaxError is returned in strict mode when poppler reports a syntax error
type SyntaxError struct {
	Command string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

// TimeoutError is returned when a poppler process runs past its deadline.
// Timeout is zero when the deadline came from the caller's context.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout <= 0 {
		return fmt.Sprintf("%s exceeded the context deadline", e.Command)
	}
	return fmt.Sprintf("%s timed out after %s", e.Command, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ExecError is a poppler process that exited with an error
type ExecError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExecError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *ExecError) Unwrap() error { return e.Err }
