// Package config holds the demo settings and reads them from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kjkrol/glquad/res"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Shader ShaderConfig `toml:"shader"`
	Color  ColorConfig  `toml:"color"`
	Log    LogConfig    `toml:"log"`

	// FrameRate caps rendering when non-zero. Leave at zero with a swap
	// interval of 1 to follow the display refresh.
	FrameRate int `toml:"frame_rate"`
	// EventsPerFrame limits how many queued events are handled between two
	// frames. Zero handles all of them.
	EventsPerFrame int `toml:"events_per_frame"`
}

type WindowConfig struct {
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	SwapInterval int    `toml:"swap_interval"`
	Resizable    bool   `toml:"resizable"`
}

type ShaderConfig struct {
	// Path of the combined shader resource. Empty selects the embedded copy.
	Path    string `toml:"path"`
	Uniform string `toml:"uniform"`
	Watch   bool   `toml:"watch"`
}

// ColorConfig drives the animated uniform. The red channel pulses; the
// other channels are fixed.
type ColorConfig struct {
	Green     float32 `toml:"green"`
	Blue      float32 `toml:"blue"`
	Alpha     float32 `toml:"alpha"`
	Increment float32 `toml:"increment"`
	Step      float32 `toml:"step"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings of the original demo.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:        640,
			Height:       480,
			Title:        "Hello Manson",
			SwapInterval: 1,
		},
		Shader: ShaderConfig{
			Path:    res.BasicShaderPath,
			Uniform: "u_Color",
		},
		Color: ColorConfig{
			Green:     0.8,
			Blue:      0.8,
			Alpha:     1.0,
			Increment: 0.05,
			Step:      0.01,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path on top of Default. Keys the file does
// not set keep their defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %q: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

var logLevels = []string{"debug", "info", "warn", "error"}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap_interval must not be negative, got %d", c.Window.SwapInterval))
	}
	if c.Shader.Uniform == "" {
		errs = append(errs, errors.New("shader uniform name is empty"))
	}
	if c.Shader.Watch && c.Shader.Path == "" {
		errs = append(errs, errors.New("shader watch requires a shader path"))
	}
	if c.Color.Step <= 0 {
		errs = append(errs, fmt.Errorf("color step must be positive, got %g", c.Color.Step))
	}
	if c.FrameRate < 0 {
		errs = append(errs, fmt.Errorf("frame_rate must not be negative, got %d", c.FrameRate))
	}
	if c.EventsPerFrame < 0 {
		errs = append(errs, fmt.Errorf("events_per_frame must not be negative, got %d", c.EventsPerFrame))
	}
	if !validLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", ")))
	}
	return errors.Join(errs...)
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
