package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/dnscheck"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the local resolver with a DNS query",
	Long: `Send an A query for the configured probe name to the local resolver
and report whether it answers. Exits non-zero on failure.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		probe := dnscheck.Probe{Server: cfg.Probe.Server, Name: cfg.Probe.Name}
		rtt, err := probe.Run(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s answered for %s in %s\n", cfg.Probe.Server, cfg.Probe.Name, rtt)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
