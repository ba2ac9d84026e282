package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earlysvahn/ata/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := Execute(context.Background(), cmd)
	return out.String(), errOut.String(), err
}

func TestUnrecognizedSubcommand(t *testing.T) {
	_, stderr, err := execute(t, "foobar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized subcommand")
	assert.Contains(t, stderr, `unrecognized subcommand "foobar"`)
}

func TestNoBuiltinSubcommands(t *testing.T) {
	for _, args := range [][]string{
		{"completion"},
		{"completion", "bash"},
		{"help"},
		{"man"},
	} {
		t.Run(args[0], func(t *testing.T) {
			stdout, stderr, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, stderr, `unrecognized subcommand "`+args[0]+`"`)
			assert.NotContains(t, stdout, "complete -")
		})
	}
}

func TestUnrecognizedFlag(t *testing.T) {
	_, stderr, err := execute(t, "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized argument")
	assert.Contains(t, stderr, "unrecognized argument: unknown flag: --bogus")
}

func TestHelp(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ata")
	assert.Contains(t, stdout, "--config")
	assert.Contains(t, stdout, "--print-shortcuts")
	assert.NotContains(t, stdout, "[command]")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestPrintShortcuts(t *testing.T) {
	stdout, _, err := execute(t, "--print-shortcuts", "--config", "does-not-matter.toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ctrl-R")
}

func TestMissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ata.toml")
	_, stderr, err := execute(t, "--config="+path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotFound)
	assert.Contains(t, stderr, "config file not found: "+path+"\n")
	assert.Contains(t, stderr, "Usage: `ata --config=<Path to ata.toml>` or have ata.toml in the current dir.\n")
	assert.NotContains(t, stderr, "dir..")
}

func TestMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ata.toml")
	require.NoError(t, os.WriteFile(path, []byte("model = \"m\"\n"), 0o600))

	_, _, err := execute(t, "-c", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)
}
