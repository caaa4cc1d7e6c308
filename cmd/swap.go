package cmd

import (
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var swapCmd = &cobra.Command{
	Use:   "swap <from_token> <to_token> <amount> <wallet_address>",
	Short: "Request a token swap",
	Long: `Sends a swap_tokens call. The amount is passed through as-is and the
slippage tolerance is fixed at 50 bps; both are interpreted server-side.`,
	Example: "  mcpcall swap 0x0000000000000000000000000000000000000000 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48 0.1 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := protocol.SwapRequest(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		return runRequest(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(swapCmd)
}
