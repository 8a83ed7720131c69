package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/luastubgen/pkg/action/generate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateAndVerifyCommands(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	manifest := filepath.Join(dir, "cmdtest.pplugin")
	require.NoError(t, os.WriteFile(manifest, []byte(`{"exportedMethods": [{"name": "Hello"}]}`), 0o644))
	stubPath := filepath.Join(out, "pps", "cmdtest.lua")

	stdout, err := execute(t, "generate", manifest, "-o", out, "--provenance", "cmd-test")
	require.NoError(t, err)
	require.Contains(t, stdout, "Stub generated at: "+stubPath)
	data, err := os.ReadFile(stubPath)
	require.NoError(t, err)
	require.Equal(t, "-- Generated from cmdtest.pplugin by cmd-test\n\n--- No description provided.\nfunction Hello() end\n", string(data))

	_, err = execute(t, "generate", manifest, "-o", out)
	require.ErrorIs(t, err, generate.ErrOutputExists)

	_, err = execute(t, "generate", manifest, "-o", out, "--override")
	require.NoError(t, err)

	stdout, err = execute(t, "verify", manifest, "-o", out, "--provenance", "cmd-test")
	require.NoError(t, err)
	require.Contains(t, stdout, "1 stub(s) up to date")
}

func TestGenerateCommandMissingOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "x.pplugin")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0o644))

	_, err := execute(t, "generate", manifest, "-o", filepath.Join(dir, "nope"))
	require.ErrorIs(t, err, generate.ErrOutputDirNotFound)
}

func TestParseLevel(t *testing.T) {
	ll, err := parseLevel("TRACE")
	require.NoError(t, err)
	require.Equal(t, levelTrace, ll)

	ll, err = parseLevel("debug+1")
	require.NoError(t, err)
	require.Equal(t, "DEBUG+1", ll.String())

	_, err = parseLevel("loud")
	require.Error(t, err)
}
