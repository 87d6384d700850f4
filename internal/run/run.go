// Package run executes external commands on behalf of provisioning steps.
//
// Every system mutation this tool performs goes through a package manager,
// a service manager, or one of the resolver's own utilities. The Runner
// interface keeps those invocations behind a seam so sequences can be
// exercised in tests without touching the host.
package run

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner invokes external commands.
type Runner interface {
	// Run executes the command and returns an error on non-zero exit.
	// The error includes the command's combined output.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its trimmed standard output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// System returns a Runner backed by os/exec.
func System() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}
	return strings.TrimSpace(string(output)), nil
}
