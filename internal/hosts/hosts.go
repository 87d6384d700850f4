// Package hosts manages the loopback host identity entry.
package hosts

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// File edits the system hosts table and sets the kernel hostname.
type File struct {
	path   string
	runner run.Runner
}

// New returns a File for the hosts table at path.
func New(path string, r run.Runner) *File {
	return &File{path: path, runner: r}
}

// EnsureEntry appends a loopback alias for hostname unless one already
// exists. It reports whether a line was added. The check-then-append is
// not safe against concurrent editors of the hosts table; the tool is
// the only expected writer while an action runs.
func (f *File) EnsureEntry(hostname string) (bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read hosts table: %w", err)
	}

	if hasEntry(string(data), hostname) {
		return false, nil
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open hosts table: %w", err)
	}
	defer file.Close()

	entry := fmt.Sprintf("127.0.0.1\t%s\n", hostname)
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		entry = "\n" + entry
	}
	if _, err := file.WriteString(entry); err != nil {
		return false, fmt.Errorf("failed to append hosts entry: %w", err)
	}
	return true, nil
}

// hasEntry reports whether hostname appears as a name field of any
// non-comment line.
func hasEntry(content, hostname string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		for _, name := range fields[1:] {
			if name == hostname {
				return true
			}
		}
	}
	return false
}

// SetHostname sets the kernel-visible hostname via hostnamectl.
func (f *File) SetHostname(ctx context.Context, hostname string) error {
	return f.runner.Run(ctx, "hostnamectl", "set-hostname", hostname)
}
