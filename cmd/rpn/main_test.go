package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestArgs(t *testing.T) {
	out, err := execute(t, "", "2 ^ 3 ^ 2", "3 * -4")
	require.NoError(t, err)
	assert.Equal(t, "Result: 512\nResult: -12\n", out)
}

func TestStdin(t *testing.T) {
	out, err := execute(t, "(2 + 3) ^ 2\n\n  -2 ^ 3  \n")
	require.NoError(t, err)
	assert.Equal(t, "Result: 25\nResult: -8\n", out)
}

func TestInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 + 1\n2 * 2\n"), 0o644))
	out, err := execute(t, "", "--in", path, "3")
	require.NoError(t, err)
	assert.Equal(t, "Result: 2\nResult: 4\nResult: 3\n", out)
}

func TestFlags(t *testing.T) {
	out, err := execute(t, "", "--fmt", "%.2f", "--echo", "12 + 34 * (56 - 78 / 9)")
	require.NoError(t, err)
	assert.Equal(t, "12 34 56 78 9 / - * + : Result: 1621.33\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: \"%.1f\"\n  strict: true\n"), 0o644))

	out, err := execute(t, "", "--config", path, "1 / 8")
	require.NoError(t, err)
	assert.Equal(t, "Result: 0.1\n", out)

	_, err = execute(t, "", "--config", path, "1 +")
	var se *rpn.StackError
	assert.ErrorAs(t, err, &se)

	// Flags override the file.
	out, err = execute(t, "", "--config", path, "--strict=false", "1 +")
	require.NoError(t, err)
	assert.Equal(t, "Result: 1.0\n", out)
}

func TestLexErrorIsFatal(t *testing.T) {
	out, err := execute(t, "", "1 + 1", "1.2.3", "2 + 2")
	var le *rpn.LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "1.2.3", le.Text)
	assert.Equal(t, "Result: 2\n", out)
}

func TestStrict(t *testing.T) {
	_, err := execute(t, "", "--strict", "(1 + 2")
	var be *rpn.BracketError
	assert.ErrorAs(t, err, &be)

	out, err := execute(t, "", "(1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "Result: 0\n", out)
}

func TestEvalEmptyIsZero(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, eval(&b, "", &config.DefaultConfig().Output))
	assert.Equal(t, "Result: 0\n", b.String())

	err := eval(&b, "", &config.OutputConfig{Format: "%v", Strict: true})
	var ee *rpn.EmptyExpressionError
	assert.True(t, errors.As(err, &ee))
}
