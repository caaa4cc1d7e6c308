package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagServer  string
	flagCommand string
	flagTimeout time.Duration
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mcpcall",
	Short: "Manual test client for stdio MCP servers",
	Long: `mcpcall sends a single JSON-RPC request to an MCP server subprocess
and pretty-prints whatever comes back. Each invocation launches a fresh
server process, writes one newline-terminated request to its stdin, and
waits for it to exit.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "Named server entry from config")
	rootCmd.PersistentFlags().StringVarP(&flagCommand, "command", "c", "", "Ad-hoc server command line (overrides config)")
	rootCmd.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", 0, "How long to wait for the server to exit (default: config timeout or 30s)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Mirror debug logs to stderr")
}
