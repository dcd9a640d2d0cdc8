package shell

import (
	"fmt"
	"os"
)

// runBuiltin matches args[0] against the fixed builtin table, exact match,
// first match wins. It reports whether the command was handled in-process
// and whether the control loop should keep running.
func (s *Shell) runBuiltin(args []string) (handled, keepGoing bool) {
	switch args[0] {
	case "cd":
		s.changeDirectory(args[1:])
		return true, true
	case "exit":
		s.jobs.KillAll()
		return true, false
	case "status":
		fmt.Fprintln(s.stdout, s.last)
		return true, true
	}
	return false, true
}

// changeDirectory implements cd. No argument and the literal "~" both mean
// the home directory. A failed chdir is reported and the interpreter keeps
// running in its current directory.
func (s *Shell) changeDirectory(args []string) {
	dir := s.config.HomeDir
	if len(args) > 0 && args[0] != "~" {
		dir = args[0]
	}
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.stderr, "smallsh: cd: %v\n", err)
	}
}
