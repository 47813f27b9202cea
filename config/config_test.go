package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, grid.DefaultSpeed, cfg.Movement.Speed)
	assert.Equal(t, grid.DefaultThreshold, cfg.Movement.Threshold)
	assert.Equal(t, 60, cfg.TickRate)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("testdata/gridstep.yaml")
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Movement.Speed)
	assert.Equal(t, grid.Vec3{X: 3, Z: 2}, cfg.Start.Grid())
	assert.Equal(t, 10, cfg.Grid.Width)
	assert.Equal(t, 8, cfg.Grid.Height)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, config.DefaultConfig().Grid.CellSize, cfg.Grid.CellSize)
	assert.Equal(t, config.DefaultConfig().Window, cfg.Window)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"zero speed":       "movement: {speed: 0}",
		"negative speed":   "movement: {speed: -1}",
		"threshold high":   "movement: {threshold: 1.5}",
		"threshold zero":   "movement: {threshold: 0}",
		"grid":             "grid: {width: 0}",
		"cell size":        "grid: {cell_size: -4}",
		"window":           "window: {height: 0}",
		"tick rate":        "tick_rate: 0",
		"unknown loglevel": "log: {level: loud}",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("movement: [speed"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, config.ErrInvalid)
	})
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement: {speed: 1}\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := config.Watch(ctx, path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	// An invalid edit is skipped, the following valid one is delivered.
	require.NoError(t, os.WriteFile(path, []byte("movement: {speed: 0}\n"), 0o644))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("movement: {speed: 2.5}\n"), 0o644))

	select {
	case cfg := <-updates:
		assert.Equal(t, 2.5, cfg.Movement.Speed)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	closed := make(chan struct{})
	go func() {
		for range updates {
		}
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
