package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starfield/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the starfield version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "starfield v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
