// Package provision sequences the system changes behind each
// user-facing action.
//
// Every action is a linear list of named steps over external systems:
// the package manager, systemd, the resolver's utilities, and a handful
// of files under /etc. Steps run in order and the first failure aborts
// the action. Nothing is rolled back; a partially applied state is an
// accepted outcome, and re-running the action converges because every
// step either checks before mutating or overwrites wholesale.
package provision

import (
	"context"
	"fmt"

	"github.com/Salarvand-Education/unboundctl/internal/config"
	"github.com/Salarvand-Education/unboundctl/internal/hosts"
	"github.com/Salarvand-Education/unboundctl/internal/logging"
	"github.com/Salarvand-Education/unboundctl/internal/notify"
	"github.com/Salarvand-Education/unboundctl/internal/paths"
	"github.com/Salarvand-Education/unboundctl/internal/pkgmgr"
	"github.com/Salarvand-Education/unboundctl/internal/resolvconf"
	"github.com/Salarvand-Education/unboundctl/internal/run"
	"github.com/Salarvand-Education/unboundctl/internal/svcmgr"
	"github.com/Salarvand-Education/unboundctl/internal/unbound"
)

// stubResolverUnit is the competing local stub resolver that must be
// out of the way before the pointer file is pinned to Unbound.
const stubResolverUnit = "systemd-resolved"

// Step is one named unit of work inside an action.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Sequencer executes the provisioning actions.
type Sequencer struct {
	cfg     *config.Config
	out     *notify.Printer
	actions *logging.ActionLog

	packages *pkgmgr.Manager
	units    *svcmgr.Manager
	resolver *unbound.Manager
	pointer  *resolvconf.File
	hosts    *hosts.File
}

// New wires a Sequencer from the configuration, the filesystem layout,
// and a command runner.
func New(cfg *config.Config, p paths.Paths, r run.Runner, out *notify.Printer) *Sequencer {
	return &Sequencer{
		cfg:      cfg,
		out:      out,
		actions:  logging.NewActionLog(cfg.Logging.ActionLog),
		packages: pkgmgr.New(r),
		units:    svcmgr.New(r),
		resolver: unbound.New(p.UnboundDir, p.UnboundConf, r),
		pointer:  resolvconf.New(p.ResolvConf, r),
		hosts:    hosts.New(p.HostsFile, r),
	}
}

// Resolver exposes the unbound manager for status reporting.
func (s *Sequencer) Resolver() *unbound.Manager { return s.resolver }

// Pointer exposes the resolver pointer file for status reporting.
func (s *Sequencer) Pointer() *resolvconf.File { return s.pointer }

// Units exposes the service manager for status reporting.
func (s *Sequencer) Units() *svcmgr.Manager { return s.units }

// runSteps executes the steps in order, announcing each one and
// aborting on the first error. The action's outcome lands in the
// action log either way.
func (s *Sequencer) runSteps(ctx context.Context, action string, steps []Step) error {
	for i, step := range steps {
		s.out.Stepf("%d. %s", i+1, step.Name)
		if err := step.Run(ctx); err != nil {
			err = fmt.Errorf("%s: %w", step.Name, err)
			s.out.Errorf("%s failed: %v", action, err)
			s.actions.Record(action, err)
			return err
		}
	}
	s.out.Successf("%s complete", action)
	s.actions.Record(action, nil)
	return nil
}

// SetHostIdentity ensures the loopback hostname alias exists and sets
// the kernel hostname.
func (s *Sequencer) SetHostIdentity(ctx context.Context) error {
	return s.runSteps(ctx, "set host identity", s.hostIdentitySteps())
}

func (s *Sequencer) hostIdentitySteps() []Step {
	return []Step{
		{
			Name: "ensure hosts table entry",
			Run: func(ctx context.Context) error {
				added, err := s.hosts.EnsureEntry(s.cfg.Hostname)
				if err != nil {
					return err
				}
				if !added {
					logging.Debug("hosts entry already present", "hostname", s.cfg.Hostname)
				}
				return nil
			},
		},
		{
			Name: "set kernel hostname",
			Run: func(ctx context.Context) error {
				return s.hosts.SetHostname(ctx, s.cfg.Hostname)
			},
		},
	}
}

// Install provisions the resolver end to end: host identity, package,
// control keys, configuration, validation, restart.
func (s *Sequencer) Install(ctx context.Context) error {
	steps := s.hostIdentitySteps()
	steps = append(steps,
		Step{Name: "refresh package index", Run: s.packages.UpdateIndex},
		Step{Name: "install resolver package", Run: func(ctx context.Context) error {
			return s.packages.Install(ctx, unbound.Package)
		}},
		Step{Name: "generate control keys", Run: s.resolver.SetupControl},
		Step{Name: "write resolver configuration", Run: func(ctx context.Context) error {
			return s.resolver.WriteConfig(s.cfg.Forwarders)
		}},
		Step{Name: "validate resolver configuration", Run: s.resolver.Check},
		Step{Name: "restart resolver service", Run: func(ctx context.Context) error {
			return s.units.Restart(ctx, unbound.Unit)
		}},
	)
	return s.runSteps(ctx, "install", steps)
}

// ConfigureDNS pins the system resolver pointer file to the local
// resolver and protects it with the immutable attribute.
func (s *Sequencer) ConfigureDNS(ctx context.Context) error {
	steps := []Step{
		{
			Name: "disable competing stub resolver",
			Run: func(ctx context.Context) error {
				if !s.units.Exists(ctx, stubResolverUnit) {
					logging.Debug("stub resolver unit not present", "unit", stubResolverUnit)
					return nil
				}
				if err := s.units.Stop(ctx, stubResolverUnit); err != nil {
					return err
				}
				return s.units.Disable(ctx, stubResolverUnit)
			},
		},
		{
			// The attribute must be cleared before the delete below;
			// the kernel refuses to unlink an immutable file.
			Name: "unlock resolver pointer",
			Run:  s.pointer.EnsureUnlocked,
		},
		{
			Name: "replace resolver pointer",
			Run: func(ctx context.Context) error {
				if err := s.pointer.Remove(); err != nil {
					return err
				}
				return s.pointer.Write(s.cfg.Nameservers)
			},
		},
		{
			Name: "lock resolver pointer",
			Run:  s.pointer.Lock,
		},
	}
	return s.runSteps(ctx, "configure dns", steps)
}

// Restart restarts the resolver service.
func (s *Sequencer) Restart(ctx context.Context) error {
	steps := []Step{
		{Name: "restart resolver service", Run: func(ctx context.Context) error {
			return s.units.Restart(ctx, unbound.Unit)
		}},
	}
	return s.runSteps(ctx, "restart", steps)
}

// Uninstall removes the resolver package, its configuration directory,
// and the pinned pointer file.
func (s *Sequencer) Uninstall(ctx context.Context) error {
	steps := []Step{
		{Name: "purge resolver package", Run: func(ctx context.Context) error {
			return s.packages.Purge(ctx, unbound.Package)
		}},
		{Name: "remove resolver configuration", Run: func(ctx context.Context) error {
			return s.resolver.RemoveAll()
		}},
		{Name: "unlock resolver pointer", Run: s.pointer.EnsureUnlocked},
		{Name: "delete resolver pointer", Run: func(ctx context.Context) error {
			return s.pointer.Remove()
		}},
	}
	return s.runSteps(ctx, "uninstall", steps)
}
