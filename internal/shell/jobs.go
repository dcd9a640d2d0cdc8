package shell

import (
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"
)

// Job is one outstanding background process. An entry lives in the table
// from launch until its completion has been reported.
type Job struct {
	Pid     int
	Command string
}

// JobTable tracks background processes. The wait and kill hooks exist so
// tests can run against fake processes.
type JobTable struct {
	jobs []Job
	wait func(pid int) (done bool, st Status)
	kill func(pid int) error
}

func NewJobTable() *JobTable {
	return &JobTable{wait: reapBackground, kill: killProcess}
}

// Add registers a freshly launched background process.
func (t *JobTable) Add(pid int, args []string) {
	t.jobs = append(t.jobs, Job{Pid: pid, Command: shellquote.Join(args...)})
}

// Check polls every tracked process without blocking and reports each
// completion to w. Reaped entries are compacted away, so a completion is
// reported exactly once and the table never fills up.
func (t *JobTable) Check(w io.Writer) {
	remaining := t.jobs[:0]
	for _, job := range t.jobs {
		done, st := t.wait(job.Pid)
		if !done {
			remaining = append(remaining, job)
			continue
		}
		fmt.Fprintf(w, "background pid %d is done: %s\n", job.Pid, st)
	}
	t.jobs = remaining
}

// KillAll forcibly terminates every tracked process. It does not wait for
// them to die; it runs only while the interpreter is exiting.
func (t *JobTable) KillAll() {
	for _, job := range t.jobs {
		_ = t.kill(job.Pid)
	}
	t.jobs = nil
}

// Jobs returns a copy of the outstanding entries in launch order.
func (t *JobTable) Jobs() []Job {
	return append([]Job{}, t.jobs...)
}

func (t *JobTable) Len() int {
	return len(t.jobs)
}

func reapBackground(pid int) (bool, Status) {
	var ws unix.WaitStatus
	wpid, err := unix.Wait4(pid, &ws, unix.WNOHANG, nil)
	if err != nil || wpid != pid {
		return false, Status{}
	}
	switch {
	case ws.Exited():
		return true, Status{Code: ws.ExitStatus()}
	case ws.Signaled():
		return true, Status{Signaled: true, Code: int(ws.Signal())}
	}
	return false, Status{}
}

func killProcess(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}
