// Package resolvconf manages the system resolver pointer file.
//
// The file is pinned with the filesystem immutable attribute so DHCP
// clients and network managers cannot rewrite it. The attribute must be
// cleared before any rewrite or deletion; the kernel rejects both while
// it is set.
package resolvconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// File manages a resolver pointer file and its immutable attribute.
type File struct {
	path   string
	runner run.Runner
}

// New returns a File for the pointer file at path.
func New(path string, r run.Runner) *File {
	return &File{path: path, runner: r}
}

// Path returns the pointer file location.
func (f *File) Path() string {
	return f.path
}

// Render returns the pointer file content for the given nameservers.
func Render(nameservers []string) string {
	var b strings.Builder
	for _, ns := range nameservers {
		fmt.Fprintf(&b, "nameserver %s\n", ns)
	}
	return b.String()
}

// Write replaces the pointer file with entries for the given
// nameservers. The caller must have cleared the immutable attribute
// first.
func (f *File) Write(nameservers []string) error {
	if err := os.WriteFile(f.path, []byte(Render(nameservers)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

// Read returns the pointer file content. A missing file yields an empty
// string.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return string(data), nil
}

// Remove deletes the pointer file. A missing file is not an error. The
// caller must have cleared the immutable attribute first; removal fails
// while it is set.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", f.path, err)
	}
	return nil
}

// Locked reports whether the immutable attribute is set. A missing file
// is never locked. The answer comes from lsattr's flag field, the one
// piece of external command output this tool interprets.
func (f *File) Locked(ctx context.Context) (bool, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return false, nil
	}

	out, err := f.runner.Output(ctx, "lsattr", "-d", f.path)
	if err != nil {
		return false, fmt.Errorf("failed to query attributes of %s: %w", f.path, err)
	}

	fields := strings.Fields(out)
	if len(fields) == 0 {
		return false, fmt.Errorf("unexpected lsattr output for %s: %q", f.path, out)
	}
	return strings.ContainsRune(fields[0], 'i'), nil
}

// Lock sets the immutable attribute.
func (f *File) Lock(ctx context.Context) error {
	return f.runner.Run(ctx, "chattr", "+i", f.path)
}

// Unlock clears the immutable attribute.
func (f *File) Unlock(ctx context.Context) error {
	return f.runner.Run(ctx, "chattr", "-i", f.path)
}

// EnsureUnlocked clears the immutable attribute when it is set and is a
// no-op otherwise, so sequences can always call it before a rewrite or
// deletion.
func (f *File) EnsureUnlocked(ctx context.Context) error {
	locked, err := f.Locked(ctx)
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}
	return f.Unlock(ctx)
}
