package cmd

import (
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Send an initialize handshake request",
	Long: `Sends the MCP capability-negotiation request (protocol revision ` + protocol.MCPVersion + `)
and prints the server's advertised info and capabilities.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := protocol.InitializeRequest()
		if err != nil {
			return err
		}
		return runRequest(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
