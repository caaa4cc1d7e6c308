package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/davebream/mcpcall/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check mcpcall installation and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		allOK := true

		// 1. Config file
		var cfg *config.Config
		cfgPath, err := config.FindConfigFile()
		if err != nil {
			fmt.Fprintf(out, "Config:  FAIL (cannot determine path: %v)\n", err)
			allOK = false
		} else if _, statErr := os.Stat(cfgPath); statErr != nil {
			fmt.Fprintf(out, "Config:  WARN (not present at %s, --command still works)\n", cfgPath)
		} else {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				fmt.Fprintf(out, "Config:  FAIL (%v)\n", err)
				allOK = false
			} else {
				fmt.Fprintf(out, "Config:  OK (%d servers, %s)\n", len(cfg.Servers), cfgPath)
			}
		}

		// 2. Log directory writable
		logDir, err := config.LogDir()
		if err != nil {
			fmt.Fprintf(out, "Logs:    FAIL (cannot determine path: %v)\n", err)
			allOK = false
		} else if err := config.EnsureDir(logDir, 0700); err != nil {
			fmt.Fprintf(out, "Logs:    FAIL (%v)\n", err)
			allOK = false
		} else {
			probe := filepath.Join(logDir, ".doctor-probe")
			if err := os.WriteFile(probe, nil, 0600); err != nil {
				fmt.Fprintf(out, "Logs:    FAIL (not writable: %v)\n", err)
				allOK = false
			} else {
				os.Remove(probe)
				fmt.Fprintf(out, "Logs:    OK (%s)\n", logDir)
			}
		}

		// 3. Default server resolvable
		if cfg != nil && cfg.DefaultServer != "" {
			if _, err := cfg.Server(""); err != nil {
				fmt.Fprintf(out, "Default: FAIL (%v)\n", err)
				allOK = false
			} else {
				fmt.Fprintf(out, "Default: OK (%s)\n", cfg.DefaultServer)
			}
		}

		// 4. Server commands in PATH
		if cfg != nil {
			for name, sc := range cfg.Servers {
				if _, err := exec.LookPath(sc.Command); err != nil {
					fmt.Fprintf(out, "Server %s: WARN (command %q not found in PATH)\n", name, sc.Command)
				} else {
					fmt.Fprintf(out, "Server %s: OK (%s)\n", name, sc.Command)
				}
			}
		}

		if !allOK {
			return fmt.Errorf("some checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
