// Package poppler runs the poppler command line tools and returns their
// output: page counts (pdfinfo), page images (pdftoppm), text (pdftotext),
// layout XML (pdftohtml) and merged documents (pdfunite).
//
// Page ranges are split across Config.ThreadCount concurrent processes and
// reassembled in page order. Every process honours the context and the
// optional Config.Timeout.
//
// Failures are classified:
//
// - *NotInstalledError: the binary could not be started (matches ErrPopplerNotInstalled)
// - *PageCountError: pdfinfo could not read the document
// - *SyntaxError: poppler reported a syntax error and Config.Strict is set
// - *TimeoutError: the process ran past Config.Timeout
// - *ExecError: the process exited with an error
//
// When NativeFallback is set, a missing pdfinfo falls back to pdfcpu for the
// page count and a missing pdftotext to a pure Go text reader.
package poppler
