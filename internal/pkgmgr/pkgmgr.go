// Package pkgmgr wraps the system package manager.
//
// Only apt is supported: the provisioning sequences target Debian-family
// hosts, matching the resolver package name they install.
package pkgmgr

import (
	"context"

	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// Manager installs and removes system packages through apt-get.
type Manager struct {
	runner run.Runner
}

// New returns a Manager using the given runner.
func New(r run.Runner) *Manager {
	return &Manager{runner: r}
}

// UpdateIndex refreshes the package index.
func (m *Manager) UpdateIndex(ctx context.Context) error {
	return m.runner.Run(ctx, "apt-get", "update")
}

// Install installs the named package non-interactively.
func (m *Manager) Install(ctx context.Context, pkg string) error {
	return m.runner.Run(ctx, "apt-get", "install", "-y", pkg)
}

// Purge removes the named package together with its configuration.
func (m *Manager) Purge(ctx context.Context, pkg string) error {
	return m.runner.Run(ctx, "apt-get", "purge", "-y", pkg)
}
