package poppler

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Executor runs an external command and returns its output.
// Tests replace it to avoid needing poppler installed.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecExecutor runs commands with os/exec
type ExecExecutor struct{}

// Run starts the command and waits for it. A binary that cannot be found is
// reported as a *NotInstalledError.
func (ExecExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &NotInstalledError{Binary: filepath.Base(name)}
		}
		return stdout.Bytes(), stderr.Bytes(), err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// Runner invokes the poppler tools with a shared configuration
type Runner struct {
	config   Config
	executor Executor
}

// Option configures a Runner
type Option func(*Runner)

// WithExecutor replaces the command executor
func WithExecutor(e Executor) Option {
	return func(r *Runner) { r.executor = e }
}

// New creates a Runner. Zero config values are replaced with defaults.
func New(config Config, opts ...Option) *Runner {
	r := &Runner{
		config:   config.normalize(),
		executor: ExecExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the effective configuration
func (r *Runner) Config() Config {
	return r.config
}

// run executes one poppler tool and classifies its failures
func (r *Runner) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	stdout, stderr, err := r.executor.Run(ctx, r.config.binary(name), args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Command: name, Timeout: r.config.Timeout}
		}
		var notInstalled *NotInstalledError
		if errors.As(err, &notInstalled) {
			return nil, err
		}
		return nil, eris.Wrapf(&ExecError{
			Command: name,
			Stderr:  strings.TrimSpace(string(stderr)),
			Err:     err,
		}, "poppler: %s failed", name)
	}

	if r.config.Strict {
		if msg, ok := syntaxError(stderr); ok {
			return nil, &SyntaxError{Command: name, Message: msg}
		}
	}

	if r.config.Verbose && len(stderr) > 0 {
		fmt.Fprintf(getLogger(r.config), "%s: %s\n", name, strings.TrimSpace(string(stderr)))
	}

	return stdout, nil
}

// syntaxError returns the first stderr line poppler flagged as a syntax error
func syntaxError(stderr []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(stderr))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "Syntax Error") {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}
