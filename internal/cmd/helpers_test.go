package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestFile creates name with content in dir
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// createTestDir creates a directory holding the named empty files
func createTestDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		writeTestFile(t, dir, name, "")
	}
	return dir
}

// executeRoot runs the root command with args and stdin, returning stdout and stderr
func executeRoot(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCommand()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))

	// Never pick up a config file from the package directory
	configPath := filepath.Join(t.TempDir(), "none.yaml")
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// answers joins interactive answers into stdin content
func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
