package shell

import "strings"

// Command is one parsed input line after control syntax has been stripped
// out of the argument vector. It is owned by a single loop iteration.
type Command struct {
	Args       []string
	InputFile  string
	OutputFile string
	Background bool
}

// Empty reports whether the line is a no-op: blank, or a comment whose
// first token begins with '#'.
func (c Command) Empty() bool {
	return len(c.Args) == 0 || strings.HasPrefix(c.Args[0], "#")
}

// Parse splits an expanded line into whitespace-delimited tokens. The
// tokens ">" and "<" consume the following token as the output and input
// redirection path and contribute nothing to Args; they may appear in
// either order and are recognized by exact match only, with no quoting. A
// redirection operator with nothing after it is treated as absent. A
// trailing "&" token is always stripped but marks the command as
// background only when backgroundAllowed is set.
func Parse(line string, backgroundAllowed bool) Command {
	var cmd Command

	tokens := strings.Fields(line)
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case ">":
			if i+1 < len(tokens) {
				i++
				cmd.OutputFile = tokens[i]
			}
		case "<":
			if i+1 < len(tokens) {
				i++
				cmd.InputFile = tokens[i]
			}
		default:
			cmd.Args = append(cmd.Args, tokens[i])
		}
	}

	if n := len(cmd.Args); n > 0 && cmd.Args[n-1] == "&" {
		cmd.Args = cmd.Args[:n-1]
		cmd.Background = backgroundAllowed
	}

	return cmd
}
