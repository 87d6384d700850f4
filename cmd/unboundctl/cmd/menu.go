package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

// menuActions holds the callbacks behind the numbered menu entries so
// the loop can be exercised in tests without touching the system.
type menuActions struct {
	install      func() error
	configureDNS func() error
	restart      func() error
	uninstall    func() error
	hints        func(w io.Writer)
}

// defaultMenuActions wires the menu to the real sequencer. Elevation
// happens once, before the loop, because every mutating entry needs it.
func defaultMenuActions() menuActions {
	if err := privilege.RequireRoot("managing packages, services, and /etc files"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
		os.Exit(1)
	}
	cfg := loadConfig()
	seq := newSequencer(cfg)
	ctx := context.Background()
	return menuActions{
		install:      func() error { return seq.Install(ctx) },
		configureDNS: func() error { return seq.ConfigureDNS(ctx) },
		restart:      func() error { return seq.Restart(ctx) },
		uninstall:    func() error { return seq.Uninstall(ctx) },
		hints:        printHints,
	}
}

// menuLoop reads choices until the user exits or an action fails. It
// returns the process exit code: 0 for a chosen exit or end of input,
// 1 for a failed action. Invalid choices only re-prompt.
func menuLoop(in io.Reader, out io.Writer, actions menuActions) int {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, `
unboundctl — Unbound DNS resolver provisioning

  1) Install Unbound
  2) Configure system DNS
  3) Restart Unbound
  4) Uninstall Unbound
  5) Usage hints
  6) Exit

Select an option [1-6]: `)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0
		}

		var action func() error
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			action = actions.install
		case "2":
			action = actions.configureDNS
		case "3":
			action = actions.restart
		case "4":
			action = actions.uninstall
		case "5":
			if actions.hints != nil {
				actions.hints(out)
			}
			continue
		case "6":
			return 0
		default:
			fmt.Fprintln(out, "Invalid choice, enter a number between 1 and 6.")
			continue
		}

		if action == nil {
			continue
		}
		if err := action(); err != nil {
			return 1
		}
	}
}

// printHints writes the static usage guidance.
func printHints(w io.Writer) {
	fmt.Fprint(w, `
Usage hints:

  - Query the local resolver:        dig @127.0.0.1 example.com
  - Inspect resolver statistics:     unbound-control stats_noreset
  - Follow the service log:          journalctl -u unbound -f
  - Validate configuration changes:  unbound-checkconf
  - /etc/resolv.conf is locked with the immutable attribute; run
    'unboundctl dns' again after changing nameservers instead of
    editing it by hand.
`)
}
