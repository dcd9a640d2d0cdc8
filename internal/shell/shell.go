// Package shell implements the smallsh interpreter: a prompt-read-execute
// loop with $$ expansion, cd/exit/status builtins, <,> redirection and
// trailing-& background execution gated by a SIGTSTP-toggled flag.
package shell

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/chzyer/readline"
	"smallsh/internal/config"
	"smallsh/internal/history"
	"smallsh/internal/plugin"
)

const prompt = ": "

type Shell struct {
	config  *config.Config
	history *history.History
	plugins map[string]plugin.Plugin
	jobs    *JobTable
	reader  *readline.Instance
	sigChan chan os.Signal
	pid     int

	// last holds the status of the most recent foreground command; its
	// zero value reads as "exit value 0".
	last Status

	// bgOK is the background-permission flag. It is the only state shared
	// with the signal goroutine, so it stays a single atomic word.
	bgOK atomic.Bool

	stdout  io.Writer
	stderr  io.Writer
	notices io.Writer
}

func New(cfg *config.Config) (*Shell, error) {
	hist, err := history.New(cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing history: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}

	s := &Shell{
		config:  cfg,
		history: hist,
		plugins: make(map[string]plugin.Plugin),
		jobs:    NewJobTable(),
		reader:  rl,
		sigChan: make(chan os.Signal, 1),
		pid:     os.Getpid(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		notices: os.Stdout,
	}
	s.bgOK.Store(true)

	for _, path := range cfg.Plugins {
		p, err := plugin.Load(path)
		if err != nil {
			fmt.Fprintf(s.stderr, "smallsh: plugin %s: %v\n", path, err)
			continue
		}
		s.plugins[p.Name()] = p
	}

	return s, nil
}

// Run is the control loop. Each iteration reaps finished background
// processes, prompts, reads one line, expands $$, tokenizes and dispatches.
// It returns after the exit builtin or end of input, both of which kill any
// remaining background processes first.
func (s *Shell) Run() error {
	s.setupSignalHandling()
	defer s.teardownSignalHandling()
	defer s.reader.Close()

	for {
		s.jobs.Check(s.stdout)

		line, err := s.reader.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			s.jobs.KillAll()
			return nil
		} else if err != nil {
			return err
		}

		line = ExpandPID(line, s.pid)

		cmd := Parse(line, s.bgOK.Load())
		if cmd.Empty() {
			continue
		}
		s.history.Append(line)

		if handled, keepGoing := s.runBuiltin(cmd.Args); handled {
			if !keepGoing {
				return nil
			}
			continue
		}

		if p, ok := s.plugins[cmd.Args[0]]; ok {
			if err := p.Execute(cmd.Args[1:]); err != nil {
				fmt.Fprintf(s.stderr, "smallsh: %s: %v\n", cmd.Args[0], err)
			}
			continue
		}

		s.runExternal(cmd)
	}
}
