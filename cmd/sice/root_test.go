package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/sice/internal/config"
)

// isolate keeps config lookup away from the developer's own files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("0.1.0-test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RequiresFileName(t *testing.T) {
	isolate(t)
	_, err := execute(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "accepts 1 arg")
}

func TestRoot_RejectsTooManyArgs(t *testing.T) {
	isolate(t)
	_, err := execute(t, "a.conf", "b.conf")
	require.Error(t, err)
}

func TestRoot_InvalidSeparatorFailsBeforeOpeningFile(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "-s", "ab", "ircd.conf")
	require.ErrorIs(t, err, config.ErrInvalidSeparator)
	require.NoFileExists(t, filepath.Join(dir, "ircd.conf"))
}

func TestRoot_Version(t *testing.T) {
	isolate(t)
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, "0.1.0-test")
}

func TestConfigCmd_PrintsEffectiveConfig(t *testing.T) {
	isolate(t)
	out, err := execute(t, "config", "--tab-width", "8")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 8")
	require.Contains(t, out, "log_file: sice.log")
}

func TestConfigCmd_ReadsProjectConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".sice.yaml"), "tab_width: 2\ntheme:\n  comment: \"#00ffff\"\n")

	out, err := execute(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 2")
	require.Contains(t, out, "#00ffff")
}

func TestConfigCmd_FlagOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".sice.yaml"), "tab_width: 2\n")

	out, err := execute(t, "config", "--tab-width", "6")
	require.NoError(t, err)
	require.Contains(t, out, "tab_width: 6")
}

func TestConfigCmd_ExplicitMissingConfigFails(t *testing.T) {
	dir := isolate(t)
	_, err := execute(t, "config", "-c", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}
