package main

import (
	"log/slog"
	"math"
	"time"

	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/input"
	"github.com/plus3/gridstep/movement"
)

// Options configures one headless run.
type Options struct {
	Config config.Config
	Script *input.Script
	// Frames is the number of frames to run. Zero runs until the last
	// scripted press has had time to finish its step.
	Frames uint64
	// DeltaTime is the fixed frame delta in seconds. Zero means
	// 1/Config.TickRate.
	DeltaTime float64
	Logger    *slog.Logger
}

// Step is one completed grid step.
type Step struct {
	Dir      grid.Direction
	From     grid.Vec3
	To       grid.Vec3
	Began    uint64
	Finished uint64
	Frames   uint64
	Peak     float64
}

// Result is everything the report prints.
type Result struct {
	Frames    uint64
	DeltaTime float64
	Speed     float64
	Threshold float64
	Start     grid.Vec3
	Presses   int

	Steps []Step
	Final grid.Vec3
	Phase grid.Phase

	Elapsed   time.Duration
	FrameTime Stats
}

// settleFrames is the number of frames one step needs to complete at the
// given tuning, plus the frame it begins on.
func settleFrames(speed, threshold, dt float64) uint64 {
	return uint64(math.Ceil(threshold/(speed*dt))) + 1
}

// Simulate runs the movement systems with a fixed delta, feeding opts.Script
// as the keyboard.
func Simulate(opts Options) Result {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	script := opts.Script
	if script == nil {
		script = input.NewScript()
	}
	dt := opts.DeltaTime
	if dt <= 0 {
		dt = 1 / float64(cfg.TickRate)
	}
	tuning := movement.Tuning{Speed: cfg.Movement.Speed, Threshold: cfg.Movement.Threshold}

	frames := opts.Frames
	if frames == 0 {
		frames = script.LastFrame() + 1 + settleFrames(tuning.Speed, tuning.Threshold, dt)
	}

	registry := ecs.NewComponentRegistry()
	movement.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage, ecs.WithLogger(logger))

	journal := ecs.NewSingleton(storage, movement.Journal{})
	movement.Install(scheduler, tuning, logger)
	ecs.NewSingleton[movement.Keyboard](storage).Set(movement.Keyboard{Source: script})
	player := movement.SpawnPlayer(storage, cfg.Start.Grid(), tuning)

	result := Result{
		Frames:    frames,
		DeltaTime: dt,
		Speed:     tuning.Speed,
		Threshold: tuning.Threshold,
		Start:     cfg.Start.Grid(),
		Presses:   script.Len(),
		FrameTime: Stats{Samples: make([]time.Duration, 0, frames)},
	}

	start := time.Now()
	for scheduler.Frames() < frames {
		script.Seek(scheduler.Frames())
		frameStart := time.Now()
		scheduler.Once(dt)
		result.FrameTime.Samples = append(result.FrameTime.Samples, time.Since(frameStart))
	}
	result.Elapsed = time.Since(start)
	result.FrameTime.Finalize()

	for _, ev := range journal.Get().Finished() {
		result.Steps = append(result.Steps, Step{
			Dir:      ev.Dir,
			From:     ev.From,
			To:       ev.To,
			Began:    ev.Frame - ev.Frames,
			Finished: ev.Frame,
			Frames:   ev.Frames,
			Peak:     ev.Peak,
		})
	}

	result.Final = ecs.ReadComponent[movement.Transform](storage, player).Position
	result.Phase = ecs.ReadComponent[movement.Mover](storage, player).Phase

	logger.Debug("simulation finished", "frames", frames, "steps", len(result.Steps), "final", result.Final)
	return result
}
