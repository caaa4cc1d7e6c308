package cmd

import (
	"fmt"

	"github.com/davebream/mcpcall/internal/config"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a server from config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfgPath, err := config.FindConfigFile()
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if _, exists := cfg.Servers[name]; !exists {
			return fmt.Errorf("server %q not found in config", name)
		}

		delete(cfg.Servers, name)
		if cfg.DefaultServer == name {
			cfg.DefaultServer = ""
		}
		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", name, cfgPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
