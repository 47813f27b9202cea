// Command gridstep-sim runs the movement systems headless with a fixed frame
// delta and prints a report of every completed step.
//
// The script file holds one press per line as "<frame> <key>", keys being
// w, s, a or d.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/input"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Built-in defaults are used when empty.")
	scriptPath := flag.String("script", "", "Path to the key script. Reads stdin when empty.")
	frames := flag.Uint64("frames", 0, "Frames to run. Zero runs until the last scripted step has finished.")
	dt := flag.Float64("dt", 0, "Fixed frame delta in seconds. Zero uses 1/tick_rate.")
	timing := flag.Bool("timing", false, "Include wall-clock timings in the report.")
	flag.Parse()

	if err := run(*configPath, *scriptPath, *frames, *dt, *timing); err != nil {
		fmt.Fprintln(os.Stderr, "gridstep-sim:", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath string, frames uint64, dt float64, timing bool) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	in := os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	script, err := input.ParseScript(in)
	if err != nil {
		return err
	}

	logger.Info("simulating", "presses", script.Len(), "frames", frames, "dt", dt)
	result := Simulate(Options{
		Config:    cfg,
		Script:    script,
		Frames:    frames,
		DeltaTime: dt,
		Logger:    logger,
	})

	report := &Report{Result: result, Timing: timing}
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}
