package shell

import (
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	foregroundOnlyNotice = "\nEntering foreground-only mode (& is now ignored)\n: "
	backgroundOKNotice   = "\nExiting foreground-only mode\n: "
)

// setupSignalHandling keeps the interpreter alive across SIGINT and routes
// SIGTSTP to the background-permission toggle. Catching them here also
// means exec restores default dispositions in child processes, so Ctrl+C
// still kills a foreground child while the interpreter returns to the
// prompt.
func (s *Shell) setupSignalHandling() {
	signal.Notify(s.sigChan, syscall.SIGINT, syscall.SIGTSTP)
	go s.handleSignals()
}

func (s *Shell) teardownSignalHandling() {
	signal.Stop(s.sigChan)
}

func (s *Shell) handleSignals() {
	for sig := range s.sigChan {
		switch sig {
		case syscall.SIGTSTP:
			s.toggleBackground()
		case syscall.SIGINT:
			// Swallowed. A foreground child receives its own copy from
			// the terminal; the interpreter itself must survive.
		}
	}
}

// toggleBackground flips the background-permission flag and writes the
// fixed notice straight to the output stream, unbuffered. Nothing else may
// be touched here: the main loop can be at any point, including mid-wait.
func (s *Shell) toggleBackground() {
	notices := s.notices
	if notices == nil {
		notices = os.Stdout
	}
	if s.bgOK.CompareAndSwap(true, false) {
		_, _ = io.WriteString(notices, foregroundOnlyNotice)
		return
	}
	s.bgOK.Store(true)
	_, _ = io.WriteString(notices, backgroundOKNotice)
}
