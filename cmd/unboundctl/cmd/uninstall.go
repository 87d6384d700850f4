package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove Unbound and its configuration (requires sudo)",
	Long: `Uninstall removes what install and dns put in place:

  1. Purge the unbound package
  2. Delete /etc/unbound
  3. Clear the immutable attribute on /etc/resolv.conf
  4. Delete /etc/resolv.conf

The host is left without a resolver pointer file; reconfigure DNS or
restore your network manager's resolv.conf handling afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := privilege.RequireRoot("removing packages and /etc files"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
			os.Exit(1)
		}

		seq := newSequencer(loadConfig())
		runAction(func() error { return seq.Uninstall(cmd.Context()) })
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
