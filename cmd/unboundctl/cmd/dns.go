package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "Pin the system resolver to the local Unbound instance (requires sudo)",
	Long: `Configure system DNS:

  1. Stop and disable systemd-resolved when present
  2. Clear the immutable attribute on /etc/resolv.conf if set
  3. Replace the file with the configured nameserver entries
  4. Re-set the immutable attribute

The immutable attribute keeps DHCP clients and network managers from
rewriting the file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := privilege.RequireRoot("managing services and /etc/resolv.conf"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
			os.Exit(1)
		}

		seq := newSequencer(loadConfig())
		runAction(func() error { return seq.ConfigureDNS(cmd.Context()) })
	},
}

func init() {
	rootCmd.AddCommand(dnsCmd)
}
