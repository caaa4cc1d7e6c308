package cmd

import (
	"fmt"

	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mcpcall %s (commit: %s, mcp: %s)\n", version, commit, protocol.MCPVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
