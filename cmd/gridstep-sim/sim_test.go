package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// TestScenarios runs every testdata/*.txtar archive. Each holds config.yaml,
// script, the expected report and optionally a frames count.
func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)

			files := make(map[string][]byte, len(archive.Files))
			for _, f := range archive.Files {
				files[f.Name] = f.Data
			}

			cfg, err := config.Parse(files["config.yaml"])
			require.NoError(t, err)
			script, err := input.ParseScript(bytes.NewReader(files["script"]))
			require.NoError(t, err)

			var frames uint64
			if raw, ok := files["frames"]; ok {
				frames, err = strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
				require.NoError(t, err)
			}

			result := Simulate(Options{Config: cfg, Script: script, Frames: frames})

			var out bytes.Buffer
			require.NoError(t, (&Report{Result: result}).Generate(&out))
			assert.Equal(t, strings.TrimSpace(string(files["report"])), strings.TrimSpace(out.String()))
		})
	}
}

func TestSimulateDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	result := Simulate(Options{Config: cfg})

	assert.Equal(t, 1.0/60, result.DeltaTime)
	assert.Equal(t, uint64(1)+settleFrames(cfg.Movement.Speed, cfg.Movement.Threshold, result.DeltaTime), result.Frames)
	assert.Empty(t, result.Steps)
	assert.Equal(t, grid.Idle, result.Phase)
	assert.Len(t, result.FrameTime.Samples, int(result.Frames))
}

func TestSimulateDefaultSpeedTakesFourSeconds(t *testing.T) {
	cfg := config.DefaultConfig()
	script := input.NewScript(input.Press{Frame: 0, Key: input.KeyD})

	// 0.25 of the step per second at 1/8 s frames: 32 frames of movement.
	result := Simulate(Options{Config: cfg, Script: script, DeltaTime: 0.125})

	require.Len(t, result.Steps, 1)
	step := result.Steps[0]
	assert.Equal(t, grid.Right, step.Dir)
	assert.Equal(t, grid.Vec3{X: 1}, step.To)
	assert.Equal(t, uint64(32), step.Frames)
	assert.InDelta(t, 31.0/32, step.Peak, 1e-9)
	assert.Equal(t, grid.Vec3{X: 1}, result.Final)
}

func TestSettleFrames(t *testing.T) {
	assert.Equal(t, uint64(5), settleFrames(1, 1, 0.25))
	assert.Equal(t, uint64(3), settleFrames(1, 0.5, 0.25))
}

func TestReportTiming(t *testing.T) {
	result := Simulate(Options{Config: config.DefaultConfig(), Frames: 2})

	var quiet, timed bytes.Buffer
	require.NoError(t, (&Report{Result: result}).Generate(&quiet))
	require.NoError(t, (&Report{Result: result, Timing: true}).Generate(&timed))

	assert.NotContains(t, quiet.String(), "## timing")
	assert.Contains(t, timed.String(), "## timing")
	assert.Contains(t, timed.String(), "frame: avg")
}
