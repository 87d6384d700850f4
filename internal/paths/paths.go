// Package paths collects the fixed filesystem locations unboundctl manages.
//
// Unlike per-user tools, everything here lives in system locations: the
// resolver package owns /etc/unbound, the C library reads /etc/resolv.conf,
// and the hosts table is /etc/hosts. The struct exists so tests can point
// every consumer at a temporary directory.
package paths

import "path/filepath"

// Paths holds the filesystem locations used by the provisioning actions.
type Paths struct {
	// UnboundDir is the resolver's configuration directory, removed
	// wholesale on uninstall.
	UnboundDir string

	// UnboundConf is the drop-in configuration file written on install.
	UnboundConf string

	// ResolvConf is the system resolver pointer file.
	ResolvConf string

	// HostsFile is the system hosts table.
	HostsFile string

	// ConfigFile is the unboundctl configuration file.
	ConfigFile string

	// ActionLog is the per-action log file.
	ActionLog string
}

// System returns the production paths.
func System() Paths {
	return Paths{
		UnboundDir:  "/etc/unbound",
		UnboundConf: "/etc/unbound/unbound.conf.d/unboundctl.conf",
		ResolvConf:  "/etc/resolv.conf",
		HostsFile:   "/etc/hosts",
		ConfigFile:  "/etc/unboundctl/config.yaml",
		ActionLog:   "/var/log/unboundctl.log",
	}
}

// Under returns paths rooted at dir, mirroring the production layout.
// Intended for tests.
func Under(dir string) Paths {
	return Paths{
		UnboundDir:  filepath.Join(dir, "unbound"),
		UnboundConf: filepath.Join(dir, "unbound", "unbound.conf.d", "unboundctl.conf"),
		ResolvConf:  filepath.Join(dir, "resolv.conf"),
		HostsFile:   filepath.Join(dir, "hosts"),
		ConfigFile:  filepath.Join(dir, "config.yaml"),
		ActionLog:   filepath.Join(dir, "unboundctl.log"),
	}
}
