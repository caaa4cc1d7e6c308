package cmd

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/davebream/mcpcall/internal/config"
	"github.com/spf13/cobra"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List configured servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.FindConfigFile()
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config found. Use 'mcpcall add' to register a server.")
			return nil
		}

		if len(cfg.Servers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No servers configured.")
			return nil
		}

		names := make([]string, 0, len(cfg.Servers))
		for name := range cfg.Servers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			sc := cfg.Servers[name]
			marker := " "
			if name == cfg.DefaultServer {
				marker = "*"
			}
			status := "ok"
			if _, err := exec.LookPath(sc.Command); err != nil {
				status = "command not in PATH"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s %s (%s)\n",
				marker, name, sc.Command, strings.Join(sc.Args, " "), status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serversCmd)
}
