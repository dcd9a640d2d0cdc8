package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"
)

// Status records how the most recent foreground command ended: either a
// normal exit code or the number of the terminating signal. The zero value
// reads as "exit value 0", the documented state before any foreground
// command has completed.
type Status struct {
	Signaled bool
	Code     int
}

func (st Status) String() string {
	if st.Signaled {
		return fmt.Sprintf("terminated by signal %d", st.Code)
	}
	return fmt.Sprintf("exit value %d", st.Code)
}

// runExternal launches a non-builtin command. Background commands are
// registered and left to run; foreground commands are waited for and their
// status recorded. Launch failures abandon the command and leave the loop
// running.
func (s *Shell) runExternal(cmd Command) {
	stdin, stdout, opened, err := openRedirects(cmd)
	if err != nil {
		fmt.Fprintf(s.stderr, "smallsh: %v\n", err)
		if !cmd.Background {
			s.last = Status{Code: 1}
		}
		return
	}

	proc := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	proc.Stdin = stdin
	proc.Stdout = stdout
	proc.Stderr = os.Stderr
	if cmd.Background {
		// Own process group: terminal-generated SIGINT/SIGTSTP reach only
		// the foreground.
		proc.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	}

	err = proc.Start()
	for _, f := range opened {
		f.Close()
	}
	if err != nil {
		fmt.Fprintf(s.stderr, "smallsh: %s: %v\n", shellquote.Join(cmd.Args...), err)
		if !cmd.Background {
			s.last = Status{Code: 1}
		}
		return
	}

	pid := proc.Process.Pid
	if cmd.Background {
		fmt.Fprintf(s.stdout, "background pid is %d\n", pid)
		s.jobs.Add(pid, cmd.Args)
		return
	}

	s.last = waitForeground(pid)
	if s.last.Signaled {
		fmt.Fprintf(s.stdout, "%s\n", s.last)
	}
}

// openRedirects resolves the command's standard input and output. Files
// named by the redirection spec win; an unredirected stream of a background
// command is bound to the null device; everything else inherits the
// interpreter's streams. The returned opened slice holds the files the
// parent must close once the child has started.
func openRedirects(cmd Command) (stdin, stdout *os.File, opened []*os.File, err error) {
	stdin, stdout = os.Stdin, os.Stdout

	closeOpened := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	switch {
	case cmd.InputFile != "":
		f, err := os.Open(cmd.InputFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("cannot open %s for input: %v", cmd.InputFile, err)
		}
		stdin = f
		opened = append(opened, f)
	case cmd.Background:
		f, err := os.Open(os.DevNull)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("cannot open %s for input: %v", os.DevNull, err)
		}
		stdin = f
		opened = append(opened, f)
	}

	switch {
	case cmd.OutputFile != "":
		f, err := os.OpenFile(cmd.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			closeOpened()
			return nil, nil, nil, fmt.Errorf("cannot open %s for output: %v", cmd.OutputFile, err)
		}
		stdout = f
		opened = append(opened, f)
	case cmd.Background:
		f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			closeOpened()
			return nil, nil, nil, fmt.Errorf("cannot open %s for output: %v", os.DevNull, err)
		}
		stdout = f
		opened = append(opened, f)
	}

	return stdin, stdout, opened, nil
}

// waitForeground blocks until the child exits or dies from a signal. A
// child that is merely stopped is continued and the wait retried, so a
// foreground command cannot be suspended out from under the loop.
func waitForeground(pid int) Status {
	var ws unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &ws, unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return Status{Code: 1}
		}
		switch {
		case ws.Exited():
			return Status{Code: ws.ExitStatus()}
		case ws.Signaled():
			return Status{Signaled: true, Code: int(ws.Signal())}
		case ws.Stopped():
			_ = unix.Kill(pid, unix.SIGCONT)
		}
	}
}
