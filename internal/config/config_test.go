package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/glquad/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glquad.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "Hello Manson", cfg.Window.Title)
	assert.Equal(t, 1, cfg.Window.SwapInterval)
	assert.Equal(t, "res/shaders/Basic.shader", cfg.Shader.Path)
	assert.Equal(t, "u_Color", cfg.Shader.Uniform)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
frame_rate = 30

[window]
title = "quad"
width = 800

[shader]
watch = true

[color]
green = 0.5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quad", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.True(t, cfg.Shader.Watch)
	assert.Equal(t, "u_Color", cfg.Shader.Uniform)
	assert.Equal(t, float32(0.5), cfg.Color.Green)
	assert.Equal(t, float32(0.8), cfg.Color.Blue)
	assert.Equal(t, 30, cfg.FrameRate)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[window]\nfullscreen = true\n")

	_, err := config.Load(path)

	var strict *toml.StrictMissingError
	assert.ErrorAs(t, err, &strict)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0
	cfg.Shader.Uniform = ""
	cfg.Log.Level = "verbose"
	cfg.Color.Step = 0

	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "window size must be positive")
	assert.Contains(t, err.Error(), "uniform name is empty")
	assert.Contains(t, err.Error(), `log level "verbose"`)
	assert.Contains(t, err.Error(), "color step must be positive")
}

func TestValidate_WatchNeedsPath(t *testing.T) {
	cfg := config.Default()
	cfg.Shader.Path = ""
	cfg.Shader.Watch = true

	assert.ErrorContains(t, cfg.Validate(), "watch requires a shader path")
}

func TestEncodeRoundTripsThroughLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Title = "encoded"
	data, err := cfg.Encode()
	require.NoError(t, err)

	loaded, err := config.Load(writeConfig(t, string(data)))
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}
