// An example smallsh plugin. Build with:
//
//	go build -buildmode=plugin -o example.so ./plugins/examples
//
// then list the resulting path under "plugins" in ~/.smallsh.yml.
package main

import (
	"fmt"

	"smallsh/internal/plugin"
)

type examplePlugin struct{}

func (examplePlugin) Name() string {
	return "example"
}

func (examplePlugin) Execute(args []string) error {
	fmt.Println("example plugin executed with args:", args)
	return nil
}

// Plugin is the symbol the loader resolves.
var Plugin examplePlugin

var _ plugin.Plugin = Plugin

// main is never called; it exists so the package also compiles with the
// default buildmode (e.g. under "go build ./...").
func main() {}
