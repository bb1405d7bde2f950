package poppler

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	info, err := ParseInfo(pdfinfoOutput)
	require.NoError(t, err)

	assert.Equal(t, 5, info.Pages)
	assert.Equal(t, 612.0, info.PageWidth)
	assert.Equal(t, 792.0, info.PageHeight)
	assert.False(t, info.Encrypted)
	assert.Equal(t, "Quarterly report", info.Fields["Title"])
	assert.Equal(t, "1.5", info.Fields["PDF version"])
}

func TestParseInfoErrors(t *testing.T) {
	_, err := ParseInfo("Title: nothing\n")
	assert.Error(t, err)

	_, err = ParseInfo("Pages: many\n")
	assert.Error(t, err)
}

func TestPageCount(t *testing.T) {
	fake := &fakeExecutor{handle: func(_ context.Context, name string, args []string) ([]byte, []byte, error) {
		return []byte(pdfinfoOutput), nil, nil
	}}
	r := New(Config{PopplerPath: "/opt/poppler/bin", UserPassword: "secret"}, WithExecutor(fake))

	n, err := r.PageCount(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	calls := fake.callsTo("/opt/poppler/bin/pdfinfo")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"-upw", "secret", "doc.pdf"}, calls[0].args)
}

func TestPageCountErrors(t *testing.T) {
	t.Run("pdfinfo missing without fallback", func(t *testing.T) {
		fake := &fakeExecutor{handle: func(_ context.Context, name string, _ []string) ([]byte, []byte, error) {
			return nil, nil, &NotInstalledError{Binary: name}
		}}
		r := New(Config{}, WithExecutor(fake))

		_, err := r.PageCount(context.Background(), "doc.pdf")
		assert.ErrorIs(t, err, ErrPDFInfoNotInstalled)
		assert.ErrorIs(t, err, ErrPopplerNotInstalled)
	})

	t.Run("pdfinfo missing with fallback", func(t *testing.T) {
		fake := &fakeExecutor{handle: func(_ context.Context, name string, _ []string) ([]byte, []byte, error) {
			return nil, nil, &NotInstalledError{Binary: name}
		}}
		r := New(Config{NativeFallback: true}, WithExecutor(fake))

		_, err := r.PageCount(context.Background(), "/nonexistent/doc.pdf")
		var pce *PageCountError
		require.ErrorAs(t, err, &pce)
		assert.Equal(t, "/nonexistent/doc.pdf", pce.Path)
	})

	t.Run("pdfinfo fails", func(t *testing.T) {
		fake := &fakeExecutor{handle: func(_ context.Context, _ string, _ []string) ([]byte, []byte, error) {
			return nil, []byte("Syntax Error: Couldn't find trailer dictionary"), errors.New("exit status 1")
		}}
		r := New(Config{}, WithExecutor(fake))

		_, err := r.PageCount(context.Background(), "broken.pdf")
		var pce *PageCountError
		require.ErrorAs(t, err, &pce)

		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "pdfinfo", execErr.Command)
		assert.Contains(t, execErr.Stderr, "trailer dictionary")
	})
}

func TestRunStrictSyntaxError(t *testing.T) {
	fake := &fakeExecutor{handle: func(_ context.Context, _ string, _ []string) ([]byte, []byte, error) {
		return []byte("text"), []byte("Syntax Warning: ignored\nSyntax Error (42): Illegal character\n"), nil
	}}

	out, err := New(Config{}, WithExecutor(fake)).run(context.Background(), "pdftotext")
	require.NoError(t, err)
	assert.Equal(t, "text", string(out))

	_, err = New(Config{Strict: true}, WithExecutor(fake)).run(context.Background(), "pdftotext")
	var syntax *SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, "Syntax Error (42): Illegal character", syntax.Message)
}

func TestRunTimeout(t *testing.T) {
	fake := &fakeExecutor{handle: func(ctx context.Context, _ string, _ []string) ([]byte, []byte, error) {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}}
	r := New(Config{Timeout: 10 * time.Millisecond}, WithExecutor(fake))

	_, err := r.run(context.Background(), "pdftoppm")
	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, "pdftoppm", timeout.Command)
	assert.Equal(t, 10*time.Millisecond, timeout.Timeout)
	assert.EqualError(t, err, "pdftoppm timed out after 10ms")
}

func TestRunParentDeadline(t *testing.T) {
	fake := &fakeExecutor{handle: func(ctx context.Context, _ string, _ []string) ([]byte, []byte, error) {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := New(Config{}, WithExecutor(fake)).run(ctx, "pdftotext")
	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Zero(t, timeout.Timeout)
	assert.EqualError(t, err, "pdftotext exceeded the context deadline")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNotInstalledErrorIs(t *testing.T) {
	tests := []struct {
		binary     string
		poppler    bool
		pdfinfoErr bool
	}{
		{"pdfinfo", true, true},
		{"pdftoppm", true, false},
		{"pdftotext", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.binary, func(t *testing.T) {
			err := error(&NotInstalledError{Binary: tt.binary})
			assert.Equal(t, tt.poppler, errors.Is(err, ErrPopplerNotInstalled))
			assert.Equal(t, tt.pdfinfoErr, errors.Is(err, ErrPDFInfoNotInstalled))
		})
	}
}

func TestExecExecutorMissingBinary(t *testing.T) {
	if _, err := exec.LookPath("poppdf-no-such-binary"); err == nil {
		t.Skip("binary unexpectedly present")
	}

	_, _, err := ExecExecutor{}.Run(context.Background(), "poppdf-no-such-binary")
	var notInstalled *NotInstalledError
	require.ErrorAs(t, err, &notInstalled)
	assert.Equal(t, "poppdf-no-such-binary", notInstalled.Binary)
}

func TestSplitRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		n           int
		want        []Range
	}{
		{"single chunk", 1, 5, 1, []Range{{1, 5}}},
		{"even", 1, 4, 2, []Range{{1, 2}, {3, 4}}},
		{"remainder goes first", 1, 5, 2, []Range{{1, 3}, {4, 5}}},
		{"more workers than pages", 3, 4, 8, []Range{{3, 3}, {4, 4}}},
		{"zero workers", 1, 2, 0, []Range{{1, 2}}},
		{"empty range", 5, 4, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRange(tt.first, tt.last, tt.n)
			assert.Equal(t, tt.want, got)

			total := 0
			for _, c := range got {
				total += c.Len()
			}
			assert.Equal(t, max(tt.last-tt.first+1, 0), total)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := New(Config{Format: "jpg"}).Config()
	assert.Equal(t, 200, cfg.DPI)
	assert.Equal(t, FormatJPEG, cfg.Format)
	assert.Equal(t, 1, cfg.ThreadCount)
}
