package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/dnscheck"
	"github.com/Salarvand-Education/unboundctl/internal/privilege"
)

var installSkipProbe bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install and configure Unbound (requires sudo)",
	Long: `Install provisions the resolver end to end:

  1. Ensure the loopback hostname alias and kernel hostname
  2. Refresh the package index and install the unbound package
  3. Generate the control channel keys
  4. Write the resolver configuration
  5. Validate it with unbound-checkconf
  6. Restart the unbound service

The first failing step aborts the sequence; already-applied steps are
not rolled back. Re-running install converges to the same state.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := privilege.RequireRoot("installing packages and writing /etc files"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to elevate privileges: %v\n", err)
			os.Exit(1)
		}

		cfg := loadConfig()
		seq := newSequencer(cfg)
		runAction(func() error { return seq.Install(cmd.Context()) })

		if installSkipProbe {
			return
		}
		probe := dnscheck.Probe{Server: cfg.Probe.Server, Name: cfg.Probe.Name}
		if _, err := probe.Run(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "resolver installed but not answering: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Resolver answering on " + cfg.Probe.Server)
	},
}

func init() {
	installCmd.Flags().BoolVar(&installSkipProbe, "skip-probe", false, "Skip the post-install resolution probe")
	rootCmd.AddCommand(installCmd)
}
