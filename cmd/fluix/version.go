package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fluix"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fluix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fluix version %s\n", strings.TrimSpace(fluix.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
