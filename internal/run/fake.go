package run

import (
	"context"
	"strings"
	"sync"
)

// Fake is a Runner for tests. It records every invocation and returns
// injected errors and outputs keyed by command-line prefix.
type Fake struct {
	mu sync.Mutex

	// calls holds the full command line of each invocation, in order.
	calls []string

	// Errors maps a command-line prefix to the error Run or Output
	// should return when the invocation matches it.
	Errors map[string]error

	// Outputs maps a command-line prefix to the standard output Output
	// should return.
	Outputs map[string]string
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		Errors:  make(map[string]error),
		Outputs: make(map[string]string),
	}
}

// Calls returns the recorded command lines in invocation order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether any recorded command line starts with prefix.
func (f *Fake) Called(prefix string) bool {
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *Fake) record(name string, args []string) string {
	line := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, line)
	f.mu.Unlock()
	return line
}

func (f *Fake) match(line string, m map[string]error) error {
	for prefix, err := range m {
		if strings.HasPrefix(line, prefix) {
			return err
		}
	}
	return nil
}

// Run records the invocation and returns the injected error, if any.
func (f *Fake) Run(_ context.Context, name string, args ...string) error {
	line := f.record(name, args)
	return f.match(line, f.Errors)
}

// Output records the invocation and returns the injected output and error.
func (f *Fake) Output(_ context.Context, name string, args ...string) (string, error) {
	line := f.record(name, args)
	if err := f.match(line, f.Errors); err != nil {
		return "", err
	}
	for prefix, out := range f.Outputs {
		if strings.HasPrefix(line, prefix) {
			return out, nil
		}
	}
	return "", nil
}
