package cmd

import (
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools the server exposes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := protocol.ToolsListRequest()
		if err != nil {
			return err
		}
		return runRequest(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
