package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runVersion(cmd, nil)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "wireframe v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestRunThemes(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runThemes(cmd, nil)
	require.NoError(t, err)

	for _, name := range []string{"blueprint", "clean", "realistic", "sketch"} {
		assert.Contains(t, buf.String(), name)
	}
}
