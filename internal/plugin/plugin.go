// Package plugin loads user-supplied commands that the dispatcher consults
// after the fixed builtin table misses.
package plugin

import (
	"fmt"
	"plugin"
)

// Plugin is an in-process command loaded from a Go plugin object.
type Plugin interface {
	Name() string
	Execute(args []string) error
}

// Load opens the plugin object at path and resolves its exported Plugin
// symbol.
func Load(path string) (Plugin, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plugin: %w", err)
	}

	sym, err := p.Lookup("Plugin")
	if err != nil {
		return nil, fmt.Errorf("plugin does not export 'Plugin' symbol: %w", err)
	}

	cmd, ok := sym.(Plugin)
	if !ok {
		return nil, fmt.Errorf("plugin does not implement the Plugin interface")
	}

	return cmd, nil
}
