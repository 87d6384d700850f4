// Package unbound renders and manages the resolver's configuration and
// invokes its own utilities for key setup and validation.
package unbound

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// Unit is the systemd unit name of the resolver.
const Unit = "unbound"

// Package is the distribution package name of the resolver.
const Package = "unbound"

// Manager owns the resolver's configuration directory and utilities.
type Manager struct {
	confDir  string
	confPath string
	runner   run.Runner
}

// New returns a Manager for the given configuration directory and
// drop-in path.
func New(confDir, confPath string, r run.Runner) *Manager {
	return &Manager{confDir: confDir, confPath: confPath, runner: r}
}

// ConfPath returns the drop-in configuration file location.
func (m *Manager) ConfPath() string {
	return m.confPath
}

// Render returns the drop-in configuration for the given upstream
// forwarders. Everything except the forwarder list is fixed.
func Render(forwarders []string) string {
	var b strings.Builder
	b.WriteString(`server:
    interface: 127.0.0.1
    interface: ::1
    port: 53
    do-ip4: yes
    do-ip6: yes
    do-udp: yes
    do-tcp: yes
    access-control: 127.0.0.0/8 allow
    access-control: ::1 allow
    hide-identity: yes
    hide-version: yes
    harden-glue: yes
    harden-dnssec-stripped: yes
    use-caps-for-id: yes
    prefetch: yes
    cache-min-ttl: 300
    cache-max-ttl: 86400

forward-zone:
    name: "."
`)
	for _, addr := range forwarders {
		fmt.Fprintf(&b, "    forward-addr: %s\n", addr)
	}
	return b.String()
}

// WriteConfig overwrites the drop-in configuration wholesale. No
// merging with existing content ever happens.
func (m *Manager) WriteConfig(forwarders []string) error {
	if err := os.MkdirAll(filepath.Dir(m.confPath), 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	if err := os.WriteFile(m.confPath, []byte(Render(forwarders)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.confPath, err)
	}
	return nil
}

// ConfigPresent reports whether the drop-in configuration exists.
func (m *Manager) ConfigPresent() bool {
	_, err := os.Stat(m.confPath)
	return err == nil
}

// Check validates the resolver configuration with unbound-checkconf.
// It runs before any restart so a bad config never takes the running
// resolver down.
func (m *Manager) Check(ctx context.Context) error {
	return m.runner.Run(ctx, "unbound-checkconf")
}

// SetupControl generates the control channel keys with
// unbound-control-setup.
func (m *Manager) SetupControl(ctx context.Context) error {
	return m.runner.Run(ctx, "unbound-control-setup")
}

// RemoveAll deletes the resolver's configuration directory.
func (m *Manager) RemoveAll() error {
	if err := os.RemoveAll(m.confDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", m.confDir, err)
	}
	return nil
}
