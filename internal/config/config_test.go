package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "no-such-config.yml"))
	require.NoError(t, err)

	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, filepath.Join(home, ".smallsh_history"), cfg.HistoryFile)
	assert.Empty(t, cfg.Plugins)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	contents := "home_dir: /srv/home\nhistory_file: /tmp/hist\nplugins:\n  - /opt/plugins/example.so\n"
	require.NoError(t, os.WriteFile(file, []byte(contents), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "/srv/home", cfg.HomeDir)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.Equal(t, []string{"/opt/plugins/example.so"}, cfg.Plugins)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	file := filepath.Join(home, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte("history_file: /tmp/hist\n"), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(":\n\t- not yaml"), 0644))

	_, err := Load(file)
	assert.Error(t, err)
}
