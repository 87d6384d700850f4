// Package svcmgr wraps systemctl for the units the provisioning
// sequences manage.
package svcmgr

import (
	"context"

	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// Manager controls systemd units.
type Manager struct {
	runner run.Runner
}

// New returns a Manager using the given runner.
func New(r run.Runner) *Manager {
	return &Manager{runner: r}
}

// Start starts the unit.
func (m *Manager) Start(ctx context.Context, unit string) error {
	return m.runner.Run(ctx, "systemctl", "start", unit)
}

// Stop stops the unit.
func (m *Manager) Stop(ctx context.Context, unit string) error {
	return m.runner.Run(ctx, "systemctl", "stop", unit)
}

// Enable enables the unit at boot.
func (m *Manager) Enable(ctx context.Context, unit string) error {
	return m.runner.Run(ctx, "systemctl", "enable", unit)
}

// Disable disables the unit at boot.
func (m *Manager) Disable(ctx context.Context, unit string) error {
	return m.runner.Run(ctx, "systemctl", "disable", unit)
}

// Restart restarts the unit.
func (m *Manager) Restart(ctx context.Context, unit string) error {
	return m.runner.Run(ctx, "systemctl", "restart", unit)
}

// IsActive reports whether the unit is currently active.
func (m *Manager) IsActive(ctx context.Context, unit string) bool {
	return m.runner.Run(ctx, "systemctl", "is-active", "--quiet", unit) == nil
}

// Exists reports whether the unit is known to systemd.
func (m *Manager) Exists(ctx context.Context, unit string) bool {
	out, err := m.runner.Output(ctx, "systemctl", "show", "-p", "LoadState", "--value", unit)
	if err != nil {
		return false
	}
	return out == "loaded"
}
