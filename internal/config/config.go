package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds interpreter settings. Every field has a working default so
// running without a config file is the normal case.
type Config struct {
	HomeDir     string   `yaml:"home_dir"`
	HistoryFile string   `yaml:"history_file"`
	Plugins     []string `yaml:"plugins"`
}

// Load reads the config file if it exists and fills in defaults for
// anything left unset. The home directory defaults to the HOME environment
// variable, which is also what the cd builtin falls back to.
func Load(file string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if cfg.HomeDir == "" {
		cfg.HomeDir = os.Getenv("HOME")
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.HomeDir, ".smallsh_history")
	}

	return cfg, nil
}
