package cmd

import (
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:     "price <token_address>",
	Short:   "Look up the price of a token",
	Example: "  mcpcall price 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := protocol.TokenPriceRequest(args[0])
		if err != nil {
			return err
		}
		return runRequest(cmd, msg)
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
