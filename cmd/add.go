package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davebream/mcpcall/internal/config"
	"github.com/spf13/cobra"
)

var (
	addJSON    bool
	addDefault bool
)

var addCmd = &cobra.Command{
	Use:   "add <name> <command> [args...]",
	Short: "Register a server launch spec in config",
	Long: `Add a server to the mcpcall config so protocol commands can target it
with --server (or by default, with --default). Put server arguments that
start with dashes after a -- separator.

Examples:
  mcpcall add eth eth-trading-server -- --network mainnet
  echo '{"command":"cargo","args":["run","--release"]}' | mcpcall add eth --json -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		var sc *config.ServerConfig

		if addJSON {
			// Read JSON from remaining args or stdin
			var data []byte
			var err error

			if len(args) >= 2 && args[1] == "-" {
				data, err = io.ReadAll(io.LimitReader(os.Stdin, 1<<20)) // 1 MB limit
			} else if len(args) >= 2 {
				data = []byte(args[1])
			} else {
				return fmt.Errorf("--json requires a JSON string or '-' for stdin")
			}

			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			sc = &config.ServerConfig{}
			if err := json.Unmarshal(data, sc); err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}
		} else {
			if len(args) < 2 {
				return fmt.Errorf("usage: mcpcall add <name> <command> [args...]")
			}
			sc = &config.ServerConfig{
				Command: args[1],
				Args:    args[2:],
			}
		}

		cfgPath, err := config.FindConfigFile()
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			cfg = config.DefaultConfig()
		}

		if _, exists := cfg.Servers[name]; exists {
			return fmt.Errorf("server %q already exists. Use 'mcpcall remove %s' first", name, name)
		}

		cfg.Servers[name] = sc
		if addDefault || len(cfg.Servers) == 1 {
			cfg.DefaultServer = name
		}
		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", name, cfgPath)
		if cfg.DefaultServer == name {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now the default server\n", name)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addJSON, "json", false, "Parse server config from JSON")
	addCmd.Flags().BoolVar(&addDefault, "default", false, "Make this server the default target")
	rootCmd.AddCommand(addCmd)
}
