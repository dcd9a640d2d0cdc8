package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smallsh/internal/config"
)

type testShell struct {
	*Shell
	out    *bytes.Buffer
	errOut *bytes.Buffer
	killed *[]int
}

func newTestShell(t *testing.T) *testShell {
	t.Helper()

	var out, errOut bytes.Buffer
	killed := []int{}
	s := &Shell{
		config: &config.Config{HomeDir: t.TempDir()},
		jobs:   newTestJobTable(&fakeWaiter{done: map[int]Status{}}, &killed),
		stdout: &out,
		stderr: &errOut,
	}
	s.notices = &out
	s.bgOK.Store(true)
	return &testShell{Shell: s, out: &out, errOut: &errOut, killed: &killed}
}

// chdirTemp moves the process into a fresh directory and restores the
// original working directory when the test finishes.
func chdirTemp(t *testing.T) string {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestChangeDirectoryNoArgumentGoesHome(t *testing.T) {
	chdirTemp(t)
	s := newTestShell(t)

	handled, keepGoing := s.runBuiltin([]string{"cd"})
	assert.True(t, handled)
	assert.True(t, keepGoing)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, mustEval(t, s.config.HomeDir), mustEval(t, wd))
}

func TestChangeDirectoryTildeGoesHome(t *testing.T) {
	chdirTemp(t)
	s := newTestShell(t)

	s.runBuiltin([]string{"cd", "~"})

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, mustEval(t, s.config.HomeDir), mustEval(t, wd))
}

func TestChangeDirectoryPath(t *testing.T) {
	base := chdirTemp(t)
	s := newTestShell(t)

	sub := filepath.Join(base, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	s.runBuiltin([]string{"cd", sub})

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, mustEval(t, sub), mustEval(t, wd))
	assert.Empty(t, s.errOut.String())
}

func TestChangeDirectoryBadPathReportsAndStays(t *testing.T) {
	base := chdirTemp(t)
	s := newTestShell(t)

	s.runBuiltin([]string{"cd", "/nonexistent-smallsh-dir"})

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, mustEval(t, base), mustEval(t, wd))
	assert.Contains(t, s.errOut.String(), "smallsh: cd:")
}

func TestStatusInitiallyReportsExitValueZero(t *testing.T) {
	s := newTestShell(t)

	handled, keepGoing := s.runBuiltin([]string{"status"})
	assert.True(t, handled)
	assert.True(t, keepGoing)
	assert.Equal(t, "exit value 0\n", s.out.String())
}

func TestStatusReportsLastForegroundResult(t *testing.T) {
	cases := []struct {
		name string
		last Status
		want string
	}{
		{"normal exit", Status{Code: 7}, "exit value 7\n"},
		{"signal death", Status{Signaled: true, Code: 9}, "terminated by signal 9\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShell(t)
			s.last = tc.last

			s.runBuiltin([]string{"status"})
			assert.Equal(t, tc.want, s.out.String())
		})
	}
}

func TestExitKillsTrackedBackgroundProcesses(t *testing.T) {
	s := newTestShell(t)
	s.jobs.Add(301, []string{"sleep", "100"})
	s.jobs.Add(302, []string{"sleep", "200"})

	handled, keepGoing := s.runBuiltin([]string{"exit"})
	assert.True(t, handled)
	assert.False(t, keepGoing)
	assert.Equal(t, []int{301, 302}, *s.killed)
	assert.Equal(t, 0, s.jobs.Len())
}

func TestUnknownCommandNotHandled(t *testing.T) {
	s := newTestShell(t)

	handled, keepGoing := s.runBuiltin([]string{"ls"})
	assert.False(t, handled)
	assert.True(t, keepGoing)
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
