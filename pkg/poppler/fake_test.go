package poppler

import (
	"context"
	"sync"
)

type call struct {
	name string
	args []string
}

// fakeExecutor records calls and answers them with handle
type fakeExecutor struct {
	mu     sync.Mutex
	calls  []call
	handle func(ctx context.Context, name string, args []string) ([]byte, []byte, error)
}

func (f *fakeExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{name: name, args: args})
	f.mu.Unlock()
	return f.handle(ctx, name, args)
}

func (f *fakeExecutor) callsTo(name string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// argValue returns the value following flag in args
func argValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

const pdfinfoOutput = `Title:           Quarterly report
Producer:        LibreOffice 7.3
Tagged:          no
UserProperties:  no
Form:            none
Pages:           5
Encrypted:       no
Page size:       612 x 792 pts (letter)
Page rot:        0
File size:       35412 bytes
Optimized:       no
PDF version:     1.5
`
