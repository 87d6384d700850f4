package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Show usage hints for the provisioned resolver",
	Run: func(cmd *cobra.Command, args []string) {
		printHints(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(hintsCmd)
}
