package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the mcpcall configuration directory.
// Respects MCPCALL_CONFIG_DIR override.
func ConfigDir() (string, error) {
	if dir := os.Getenv("MCPCALL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "mcpcall"), nil
}

// LogDir returns the directory for mcpcall log files.
func LogDir() (string, error) {
	if runtime.GOOS == "darwin" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("log dir: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", "mcpcall"), nil
	}
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "logs"), nil
}

// ConfigFilePath returns the path where a new config is created.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// FindConfigFile returns the first existing config file, trying JSON
// then the YAML spellings. Falls back to the JSON path when none exist
// yet, so callers always get a usable creation target.
func FindConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return filepath.Join(dir, "config.json"), nil
}
