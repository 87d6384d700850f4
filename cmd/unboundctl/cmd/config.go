package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Salarvand-Education/unboundctl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and initialize the unboundctl configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the effective configuration: defaults overlaid with the file, if present.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render configuration: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Write the default configuration to the config path unless it already exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(os.Stderr, "%s already exists\n", configPath)
			os.Exit(1)
		}
		if err := config.Default().SaveToFile(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configPath)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
