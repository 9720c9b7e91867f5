package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wireframe.yaml")
	yaml := `theme: sketch
width: 1024
height: 768
scale: 2
seed: 42
output: dist
strict: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sketch", cfg.Theme)
	assert.Equal(t, float64(1024), cfg.Width)
	assert.Equal(t, float64(768), cfg.Height)
	assert.Equal(t, float64(2), cfg.Scale)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "dist", cfg.Output)
	assert.True(t, cfg.Strict)
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_MissingDefaultIsEmpty(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wireframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	type tc struct {
		cfg   Config
		input string
		want  string
	}

	tests := map[string]tc{
		"sibling svg": {
			input: filepath.Join("screens", "login.wire"),
			want:  filepath.Join("screens", "login.svg"),
		},
		"output directory": {
			cfg:   Config{Output: "dist"},
			input: filepath.Join("screens", "login.wire"),
			want:  filepath.Join("dist", "login.svg"),
		},
		"stdin stays stdout": {
			input: "-",
			want:  "-",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputPath(&tt.cfg, tt.input))
		})
	}
}
