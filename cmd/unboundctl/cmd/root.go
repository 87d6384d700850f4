// Package cmd provides the CLI commands for unboundctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/config"
	"github.com/Salarvand-Education/unboundctl/internal/logging"
	"github.com/Salarvand-Education/unboundctl/internal/notify"
	"github.com/Salarvand-Education/unboundctl/internal/paths"
	"github.com/Salarvand-Education/unboundctl/internal/provision"
	"github.com/Salarvand-Education/unboundctl/internal/run"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "unboundctl",
	Short: "Provision and manage the Unbound DNS resolver",
	Long: `unboundctl automates installing, configuring, restarting, and
uninstalling the Unbound DNS resolver on a Linux host, and pins
/etc/resolv.conf to the local resolver.

Run without a subcommand for the interactive menu, or use the
subcommands directly:

  unboundctl install      Install and configure Unbound
  unboundctl dns          Pin the system resolver to Unbound
  unboundctl restart      Restart the Unbound service
  unboundctl uninstall    Remove Unbound and its configuration
  unboundctl status       Show resolver and pointer file state
  unboundctl check        Probe the local resolver with a DNS query`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(menuLoop(os.Stdin, os.Stdout, defaultMenuActions()))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("unboundctl version {{.Version}}\ncommit: %s\nbuilt: %s\n", Commit, BuildDate))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", paths.System().ConfigFile, "Path to the configuration file")
}

// loadConfig reads the configuration file and sets up logging. Errors
// are fatal: every action depends on a valid configuration.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(logging.ParseLevel(cfg.Logging.Level), os.Stderr)
	return cfg
}

// newSequencer wires a Sequencer against the live system.
func newSequencer(cfg *config.Config) *provision.Sequencer {
	return provision.New(cfg, paths.System(), run.System(), notify.New(os.Stdout))
}

// runAction executes one provisioning action and terminates the
// process with exit code 1 on failure.
func runAction(action func() error) {
	if err := action(); err != nil {
		os.Exit(1)
	}
}
