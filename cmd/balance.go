package cmd

import (
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:     "balance <wallet_address>",
	Short:   "Look up the ETH balance of a wallet",
	Example: "  mcpcall balance 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The address goes through verbatim; the server validates it.
		msg, err := protocol.BalanceRequest(args[0])
		if err != nil {
			return err
		}
		return runRequest(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
