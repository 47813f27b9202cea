// Package config loads and watches the gridstep YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/plus3/gridstep/grid"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete application configuration.
type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Start    Vec3           `yaml:"start"`
	Grid     GridConfig     `yaml:"grid"`
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
	TickRate int            `yaml:"tick_rate"` // updates per second
}

// MovementConfig tunes the step animation.
type MovementConfig struct {
	Speed     float64 `yaml:"speed"`     // fraction of a step per second
	Threshold float64 `yaml:"threshold"` // completion distance, (0, 1]
}

// Vec3 is the YAML form of grid.Vec3.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Grid converts v to a grid.Vec3.
func (v Vec3) Grid() grid.Vec3 {
	return grid.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// GridConfig sizes the drawn board. It does not constrain movement.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // pixels
}

// WindowConfig is used by the ebiten front-end.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LogConfig selects the slog level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Movement: MovementConfig{
			Speed:     grid.DefaultSpeed,
			Threshold: grid.DefaultThreshold,
		},
		Grid: GridConfig{
			Width:    16,
			Height:   12,
			CellSize: 48,
		},
		Window: WindowConfig{
			Width:  768,
			Height: 576,
			Title:  "gridstep",
		},
		Log:      LogConfig{Level: "info"},
		TickRate: 60,
	}
}

// Load reads path on top of DefaultConfig and validates the result. Keys
// absent from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of DefaultConfig and validates it.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	switch {
	case c.Movement.Speed <= 0:
		return fmt.Errorf("%w: movement.speed must be positive, got %g", ErrInvalid, c.Movement.Speed)
	case c.Movement.Threshold <= 0 || c.Movement.Threshold > 1:
		return fmt.Errorf("%w: movement.threshold must be in (0, 1], got %g", ErrInvalid, c.Movement.Threshold)
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalid, c.Grid.CellSize)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, name)
}

// NewLogger builds the text logger used by the commands.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
