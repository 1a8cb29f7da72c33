// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simpleiter/dominance"
	"github.com/katalvlaran/simpleiter/input"
	"github.com/katalvlaran/simpleiter/report"
	"github.com/katalvlaran/simpleiter/solver"
)

// execute runs the command tree with args and stdin, returning stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(ConfigEnv, "")
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--no-color"}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_Stdin(t *testing.T) {
	out, errOut, err := execute(t, "2\n1e-6\n1 5 2\n4 1 9\n", "solve")
	require.NoError(t, err)

	assert.Contains(t, out, "Matrix:\n[1, 5, 2]\n[4, 1, 9]\n")
	assert.Contains(t, out, "Iteration matrix norm (∞): 0.25")
	assert.Contains(t, out, "Iterations: 10\n")
	assert.Contains(t, out, "x1 = 2.26")
	assert.Contains(t, errOut, "Enter the number of equations (1-20):")
}

func TestSolve_InteractiveRetry(t *testing.T) {
	out, errOut, err := execute(t, "0\n2\n-1\n1e-6\n4 1\n4 1 9\n1 5 2\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(errOut, "try again"), errOut)
	assert.Contains(t, out, "Iterations: 10\n")
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "sys.txt", "2\n1e-6\n4 1 9\n1 5 2\n")
	out, errOut, err := execute(t, "", "solve", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Iterations: 10\n")
	assert.NotContains(t, errOut, "Enter")
}

func TestSolve_FileStopsOnFirstError(t *testing.T) {
	path := writeFile(t, "sys.txt", "2\n1e-6\n4 x 9\n4 1 9\n1 5 2\n")
	_, _, err := execute(t, "", "solve", "-f", path)
	require.ErrorIs(t, err, input.ErrBadNumber)
	var le *input.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
	assert.Equal(t, 2, le.Column)
}

func TestSolve_EpsilonFlagSkipsAccuracyLine(t *testing.T) {
	out, _, err := execute(t, "2\n4 1 9\n1 5 2\n", "solve", "--epsilon", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Iterations: 1\n")
}

func TestSolve_NoDominantOrder(t *testing.T) {
	_, _, err := execute(t, "2\n1e-6\n1 1 0\n1 1 0\n", "solve")
	require.ErrorIs(t, err, dominance.ErrNoDominantPermutation)
	assert.Contains(t, err.Error(), "no solution can be found")
}

func TestSolve_ZeroDiagonal(t *testing.T) {
	_, _, err := execute(t, "1\n1e-6\n0 3\n", "solve")
	require.ErrorIs(t, err, dominance.ErrZeroDiagonal)
}

func TestSolve_NonConvergence(t *testing.T) {
	_, _, err := execute(t, "", "solve", "-e", "1e-6", "-f",
		writeFile(t, "slow.txt", "2\n1 -0.99999 1\n-0.99999 1 1\n"))
	require.ErrorIs(t, err, solver.ErrNonConvergence)
}

func TestSolve_YAML(t *testing.T) {
	out, _, err := execute(t, "2\n1e-6\n1 5 2\n4 1 9\n", "solve", "--format", "yaml")
	require.NoError(t, err)
	assert.NotContains(t, out, "Matrix:")

	var doc report.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{1, 0}, doc.Order)
	assert.Equal(t, 10, doc.Iterations)
}

func TestSolve_BadFlags(t *testing.T) {
	_, _, err := execute(t, "", "solve", "--format", "xml")
	require.Error(t, err)

	_, _, err = execute(t, "", "solve", "--epsilon", "-1")
	require.ErrorIs(t, err, solver.ErrInvalidEpsilon)

	_, _, err = execute(t, "", "solve", "--file", filepath.Join(t.TempDir(), "none.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRandom(t *testing.T) {
	out, _, err := execute(t, "", "random", "--size", "4", "--seed", "7", "--epsilon", "1e-12")
	require.NoError(t, err)
	assert.Contains(t, out, "Matrix:\n")
	assert.Contains(t, out, "x4 = ")

	again, _, err := execute(t, "", "random", "--size", "4", "--seed", "7", "--epsilon", "1e-12")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRandom_Errors(t *testing.T) {
	_, _, err := execute(t, "", "random", "--size", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--epsilon is required")

	_, _, err = execute(t, "", "random", "--size", "21", "--epsilon", "1e-6")
	require.Error(t, err)

	_, _, err = execute(t, "", "random", "--epsilon", "1e-6")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "c.toml", "epsilon = \"0.5\"\nmax_size = 2\n[output]\nformat = \"yaml\"\n")
	out, _, err := execute(t, "2\n4 1 9\n1 5 2\n", "--config", cfg, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "iterations: 1\n")

	_, _, err = execute(t, "", "--config", cfg, "random", "--size", "3")
	require.Error(t, err)

	bad := writeFile(t, "bad.toml", "[solve]\nrounding = \"sideways\"\n")
	_, _, err = execute(t, "", "--config", bad, "solve")
	require.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	_, errOut, err := execute(t, "", "--log-level", "info", "--log-format", "json",
		"random", "-n", "2", "--seed", "1", "-e", "1e-6")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"solver: converged"`)

	_, _, err = execute(t, "", "--log-level", "loud", "version")
	require.NoError(t, err, "version skips config loading")
	_, _, err = execute(t, "", "--log-level", "loud", "random", "-n", "2", "-e", "1e-6")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "simpleiter v"+Version)
}
