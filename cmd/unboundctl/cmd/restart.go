package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the Unbound service (requires sudo)",
	Long:  `Restart the unbound systemd unit.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := privilege.RequireRoot("restarting the unbound service"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
			os.Exit(1)
		}

		seq := newSequencer(loadConfig())
		runAction(func() error { return seq.Restart(cmd.Context()) })
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}
