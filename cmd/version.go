package cmd

import (
	"fmt"

	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swift-bridge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "swift-bridge v%s\n", core.Version)
	},
}
