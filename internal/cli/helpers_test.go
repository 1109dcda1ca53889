package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cliResult captures one command execution.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// execute runs the root command with args against stdin.
func execute(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// testDB returns a database path inside a fresh temp dir.
func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "apps.db")
}

// mustRun executes args and fails the test on error.
func mustRun(t *testing.T, db string, args ...string) string {
	t.Helper()
	res := execute(t, "", append([]string{"--db", db}, args...)...)
	require.NoError(t, res.Err, "stdout: %s\nstderr: %s", res.Stdout, res.Stderr)
	return res.Stdout
}

// seed adds the two applications used across the CLI tests.
func seed(t *testing.T, db string) {
	t.Helper()
	mustRun(t, db, "add",
		"-d", "Backend Engineer at Acme",
		"-s", "Applied",
		"--date", "2024-01-15",
		"--url", "https://acme.example/jobs/1")
	mustRun(t, db, "add",
		"-d", "SRE at Globex",
		"-s", "Interviewing",
		"--date", "2024-02-03",
		"--notes", "second round, onsite")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
