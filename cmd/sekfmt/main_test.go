package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/sekfmt/internal/output"
	"github.com/rpgo/sekfmt/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementYAML = `customer:
  id: 17
  first_name: Anna
  last_name: Lindqvist
accounts:
  - id: 101
    account_type: Checking
    created: 2019-03-04
    balance: 1234.50
  - id: 102
    account_type: Savings
    created: 2020-11-20
    balance: -75.25
`

func kr(s string) string {
	return strings.NewReplacer(" ", "\u00a0", "-", "\u2212").Replace(s)
}

// run executes the CLI in isolation from any .env file or SEKFMT_* variables.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"SEKFMT_LOG_LEVEL", "SEKFMT_OUTPUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	envFile := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(envFile, nil, 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", envFile}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.yaml")
	require.NoError(t, os.WriteFile(path, []byte(statementYAML), 0o644))
	return path
}

func TestFormatCmd_Args(t *testing.T) {
	out, _, err := run(t, "", "format", "--", "1234.5", "0", "-42")
	require.NoError(t, err)
	assert.Equal(t, kr("1 234,50 kr")+"\n"+kr("0,00 kr")+"\n"+kr("-42,00 kr")+"\n", out)
}

func TestFormatCmd_Stdin(t *testing.T) {
	out, _, err := run(t, "1e6\n\n  0.005 \n", "format")
	require.NoError(t, err)
	assert.Equal(t, kr("1 000 000,00 kr")+"\n"+kr("0,01 kr")+"\n", out)
}

func TestFormatCmd_Invalid(t *testing.T) {
	_, _, err := run(t, "", "format", "12", "twelve")
	assert.ErrorIs(t, err, currency.ErrNotNumeric)

	_, _, err = run(t, "5\nNaN\n", "format")
	require.ErrorIs(t, err, currency.ErrNotNumeric)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFormatCmd_VerboseLogs(t *testing.T) {
	_, stderr, err := run(t, "", "--verbose", "format", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "formatted 1 amounts from arguments")
}

func TestStatementCmd_Console(t *testing.T) {
	out, _, err := run(t, "", "statement", "-f", writeStatement(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Customer: Anna Lindqvist (17)")
	assert.Contains(t, out, "Total (2 accounts): "+kr("1 159,25 kr"))
}

func TestStatementCmd_Formats(t *testing.T) {
	path := writeStatement(t)

	out, _, err := run(t, "", "statement", "-f", path, "-o", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AccountID,Type,Created,Balance,BalanceFormatted\n"))

	out, _, err = run(t, "", "statement", "-f", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"currency": "SEK"`)

	_, _, err = run(t, "", "statement", "-f", path, "-o", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestStatementCmd_OutputFromEnv(t *testing.T) {
	path := writeStatement(t)
	envFile := filepath.Join(t.TempDir(), "cli.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SEKFMT_OUTPUT=csv\n"), 0o644))

	out, _, err := run(t, "", "--env-file", envFile, "statement", "-f", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AccountID,"))
}

func TestStatementCmd_Choices(t *testing.T) {
	out, _, err := run(t, "", "statement", "-f", writeStatement(t), "--choices")
	require.NoError(t, err)
	assert.Equal(t,
		"101: current balance: "+kr("1 234,50 kr")+"\n"+
			"102: current balance: "+kr("-75,25 kr")+"\n",
		out)
}

func TestStatementCmd_Account(t *testing.T) {
	path := writeStatement(t)

	out, _, err := run(t, "", "statement", "-f", path, "--account", "102")
	require.NoError(t, err)
	assert.Equal(t, "102: current balance: "+kr("-75,25 kr")+"\n", out)

	_, _, err = run(t, "", "statement", "-f", path, "--account", "999")
	assert.ErrorContains(t, err, "account 999 not found for customer 17")

	_, _, err = run(t, "", "statement", "-f", path, "--account", "101", "--choices")
	assert.Error(t, err)
}

func TestStatementCmd_SaveDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "", "statement", "-f", writeStatement(t), "-o", "html", "--save-dir", dir)
	require.NoError(t, err)

	name := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(name))
	assert.Equal(t, ".html", filepath.Ext(name))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Anna Lindqvist</h1>")
}

func TestStatementCmd_Errors(t *testing.T) {
	_, _, err := run(t, "", "statement")
	assert.ErrorContains(t, err, `required flag(s) "file" not set`)

	_, _, err = run(t, "", "statement", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "format", "1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
