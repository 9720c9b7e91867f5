package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "login.wire")
	source := "wireframe clean\n    Button \"OK\"\n/wireframe\n"
	require.NoError(t, os.WriteFile(input, []byte(source), 0o644))

	out := filepath.Join(dir, "login.svg")
	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"render", input, "-o", out})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "OK")
}

func TestRenderCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.wire")
	require.NoError(t, os.WriteFile(input, []byte("Label \"hello\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"render", input, "-o", "-"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), "<svg")
}

func TestRenderCommand_StrictFailsOnDiagnostics(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dup.wire")
	source := "Button :save \"A\"\nButton :save \"B\"\n"
	require.NoError(t, os.WriteFile(input, []byte(source), 0o644))

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"render", input, "-o", "-", "--strict", "--no-color"})
	t.Cleanup(func() { renderStrict = false })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "duplicate id")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.wire")
	require.NoError(t, os.WriteFile(good, []byte("Button \"OK\"\n"), 0o644))
	bad := filepath.Join(dir, "bad.wire")
	require.NoError(t, os.WriteFile(bad, []byte("Button \"OK\" shiny\n"), 0o644))

	t.Run("clean file passes", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stdout)
		rootCmd.SetArgs([]string{"check", good})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, stdout.String(), "ok")
	})

	t.Run("diagnostics fail the check", func(t *testing.T) {
		var stderr bytes.Buffer
		rootCmd.SetOut(&stderr)
		rootCmd.SetErr(&stderr)
		rootCmd.SetArgs([]string{"check", bad, "--no-color"})
		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unknown modifier")
	})
}
