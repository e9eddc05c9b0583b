package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose = "", false

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`plane:
  center: [0, 0, 1]
  axis_u: [1, 0, 0]
  axis_v: [0, 1, 0]
  width: 5
  height: 5
log:
  level: error
`), 0644))
	return path
}

func TestInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "planectl", "config.yaml")

	out, err := run(t, "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	out, err = run(t, "inside", "--config", path, "1", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))
}

func TestInit_RepairsBrokenConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	broken := filepath.Join(home, ".planectl", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(broken), 0755))
	require.NoError(t, os.WriteFile(broken, []byte("log:\n  level: loud\n"), 0644))

	_, err := run(t, "inside", "1", "1", "1")
	require.Error(t, err)

	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, broken)

	out, err = run(t, "inside", "1", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo", "--config", writeTestConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "local point on plane (10, 1, 2)")
	assert.Contains(t, out, "Point lies inside the bounds of plane? false")
	assert.Contains(t, out, "local point transformed to global point (10, 1, 3)")
	assert.Contains(t, out, "global point transformed back to local point (10, 1, 2)")
}

func TestPointCommands(t *testing.T) {
	path := writeTestConfig(t)

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"to-global", "1", "1", "0"}, "(1, 1, 1)"},
		{[]string{"to-local", "1", "1", "1"}, "(1, 1, 0)"},
		{[]string{"inside", "1", "1", "1"}, "true"},
		{[]string{"inside", "1", "1", "2"}, "false"},
		{[]string{"inside", "--", "-10", "1", "1"}, "false"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			args := append([]string{tt.args[0], "--config", path}, tt.args[1:]...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(out))
		})
	}
}

func TestPointCommands_InvalidInput(t *testing.T) {
	path := writeTestConfig(t)

	_, err := run(t, "inside", "--config", path, "1", "x", "1")
	assert.Error(t, err)

	_, err = run(t, "to-local", "--config", path, "1", "1")
	assert.Error(t, err)
}
