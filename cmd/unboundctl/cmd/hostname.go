package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

var hostnameCmd = &cobra.Command{
	Use:   "hostname",
	Short: "Set the host identity without installing (requires sudo)",
	Long: `Ensure the loopback hostname alias exists in /etc/hosts and set the
kernel hostname. Install runs the same steps first; this command is for
applying a hostname change on its own.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := privilege.RequireRoot("editing /etc/hosts and setting the hostname"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
			os.Exit(1)
		}

		seq := newSequencer(loadConfig())
		runAction(func() error { return seq.SetHostIdentity(cmd.Context()) })
	},
}

func init() {
	rootCmd.AddCommand(hostnameCmd)
}
