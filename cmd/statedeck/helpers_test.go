package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// execute runs the root command in an isolated environment and returns
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("STATEDECK_CONFIG", "")
	env := filepath.Join(t.TempDir(), "missing.env")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--env-file", env}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
