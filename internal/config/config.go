package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig describes how to launch one MCP server subprocess.
type ServerConfig struct {
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

type Config struct {
	DefaultServer string                   `json:"default_server,omitempty" yaml:"default_server,omitempty"`
	Timeout       string                   `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	LogLevel      string                   `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Servers       map[string]*ServerConfig `json:"servers" yaml:"servers"`
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:  "30s",
		LogLevel: "info",
		Servers:  make(map[string]*ServerConfig),
	}
}

// Load reads a config file, JSON or YAML by extension.
func Load(path string) (*Config, error) {
	// Verify file permissions before reading (env may hold RPC keys)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return nil, fmt.Errorf("config file %s has insecure permissions %o (expected 0600). Fix with: chmod 600 %s", path, perm, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if cfg.Servers == nil {
		cfg.Servers = make(map[string]*ServerConfig)
	}
	return &cfg, nil
}

// Save writes the config atomically, JSON or YAML by extension.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return AtomicWriteFile(path, data, 0600)
}

// Server resolves a named launch spec. An empty name falls back to
// default_server, then to the sole entry if exactly one is configured.
func (c *Config) Server(name string) (*ServerConfig, error) {
	if name == "" {
		name = c.DefaultServer
	}
	if name == "" && len(c.Servers) == 1 {
		for only := range c.Servers {
			name = only
		}
	}
	if name == "" {
		return nil, fmt.Errorf("no server selected: use --server, set default_server, or pass --command")
	}
	sc, ok := c.Servers[name]
	if !ok {
		return nil, fmt.Errorf("unknown server %q in config", name)
	}
	return sc, nil
}

// ParseTimeout returns the configured timeout or fallback when unset.
func (c *Config) ParseTimeout(fallback time.Duration) (time.Duration, error) {
	if c.Timeout == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

var envVarPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// ResolveEnv resolves $VAR references in env values from the process environment.
func ResolveEnv(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	resolved := make(map[string]string, len(env))
	for k, v := range env {
		resolved[k] = envVarPattern.ReplaceAllStringFunc(v, func(match string) string {
			return os.Getenv(match[1:]) // strip leading $
		})
	}
	return resolved
}
