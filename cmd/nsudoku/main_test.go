package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := runCommand(t, "solve", "1.3..3.13.1..1.3")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")
	assert.Contains(t, out, "| 1 2 | 3 4 |")
}

func TestSolveCommandNoSolution(t *testing.T) {
	out, err := runCommand(t, "solve", "11..............")
	require.NoError(t, err)
	assert.Contains(t, out, "no solution")
}

func TestSolveCommandBadStrategy(t *testing.T) {
	_, err := runCommand(t, "solve", "--strategy", "dlx", "1.3..3.13.1..1.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestSolveCommandBadPuzzle(t *testing.T) {
	_, err := runCommand(t, "solve", "123")
	require.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.txt")
	content := "# two easy minis\n1.3..3.13.1..1.3\n................\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	out, err := runCommand(t, "bench", "--file", path, "--strategy", "naive,sorted")
	require.NoError(t, err)
	assert.Contains(t, out, "naive: 2 solved, 0 unsolved")
	assert.Contains(t, out, "sorted: 2 solved, 0 unsolved")
}

func TestBenchCommandNoFile(t *testing.T) {
	_, err := runCommand(t, "bench")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no puzzle file")
}

func TestTestCommand(t *testing.T) {
	out, err := runCommand(t, "test", "1.3..3.13.1..1.3")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")
}

func TestTestCommandByName(t *testing.T) {
	// stock sample names resolve without a database
	out, err := runCommand(t, "test", "--name", "simple-4")
	require.NoError(t, err)
	assert.Contains(t, out, "solved in")

	_, err = runCommand(t, "test", "--name", "simple-4", "1.3..3.13.1..1.3")
	require.ErrorContains(t, err, "not both")
}

func TestRunsCommand(t *testing.T) {
	out, err := runCommand(t, "runs", "--count", "5")
	if err != nil {
		t.Skipf("storage not available: %v", err)
	}
	assert.NotEmpty(t, out, "an empty store still reports something")
}
