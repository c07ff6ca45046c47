package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"statfn/internal/funcs"
	"statfn/internal/stats"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseArgs(t *testing.T) {
	reg := funcs.New(nil, nil)

	spec, _ := reg.Lookup("zTest")
	in, err := parseArgs(spec, []string{"1, 2,x", "5", "1"})
	require.NoError(t, err)
	require.Equal(t, []any{[]any{1.0, 2.0, "x"}, 5.0, 1.0}, in)

	spec, _ = reg.Lookup("mean")
	in, err = parseArgs(spec, []string{""})
	require.NoError(t, err)
	require.Equal(t, []any{[]any{}}, in)

	_, err = parseArgs(spec, nil)
	require.True(t, errors.Is(err, funcs.ErrSignature))
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "cdfUniform", "3", "2", "4")
	require.NoError(t, err)
	require.Equal(t, "0.5\n", out)

	out, err = execute(t, "eval", "regressionBeta", "1,2,3,4", "2,4,6,8")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	_, err = execute(t, "eval", "mean", "1,x")
	require.True(t, errors.Is(err, stats.ErrTypeKind))

	_, err = execute(t, "eval", "randomGamma", "2.5", "1")
	require.True(t, errors.Is(err, stats.ErrDomain))

	_, err = execute(t, "eval", "median", "1,2")
	require.True(t, errors.Is(err, funcs.ErrUnknownFunction))
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv.gz")
	out, err := execute(t, "run",
		"--runs", "1",
		"--draws", "200",
		"--cases", "poisson,normal",
		"--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "poisson")
	require.Contains(t, out, "Всего выборок: 400")

	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "run", "--cases", "nope", "--out", path)
	require.Error(t, err)
}
