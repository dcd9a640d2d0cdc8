package main

import (
	"fmt"
	"os"
	"path/filepath"

	"smallsh/internal/config"
	"smallsh/internal/shell"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: error loading config: %v\n", err)
		os.Exit(1)
	}

	s, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: error initializing shell: %v\n", err)
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		os.Exit(1)
	}
}

func configPath() string {
	return filepath.Join(os.Getenv("HOME"), ".smallsh.yml")
}
