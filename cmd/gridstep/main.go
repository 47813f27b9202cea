// Command gridstep is the ebiten front-end: a top-down view of the X/Z grid
// with one keyboard-driven mover. W/S/A/D step forward, back, left and
// right; Esc or Q quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/debugui"
	debugui_ebiten "github.com/plus3/gridstep/debugui/ebiten"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/input/ebitenkeys"
	"github.com/plus3/gridstep/movement"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Built-in defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	watch := flag.Bool("watch", false, "Reload movement tuning when the config file changes.")
	flag.Parse()

	if err := run(*configPath, *debug, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "gridstep:", err)
		os.Exit(1)
	}
}

func run(configPath string, debug, watch bool) error {
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

	registry := ecs.NewComponentRegistry()
	movement.RegisterComponents(registry)
	debugui.RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage, ecs.WithLogger(logger))

	tuning := movement.Tuning{Speed: cfg.Movement.Speed, Threshold: cfg.Movement.Threshold}
	movement.Install(scheduler, tuning, logger)
	player := movement.SpawnPlayer(storage, cfg.Start.Grid(), tuning)

	game := &Game{
		cfg:       cfg,
		storage:   storage,
		scheduler: scheduler,
		renderer:  newRenderer(cfg, storage, player),
		tuning:    ecs.NewSingleton[movement.Tuning](storage),
	}

	keys := ebitenkeys.Source{}
	if debug {
		backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		game.imgui = &backend
		debugui.Install(scheduler)

		captured := ecs.NewSingleton[debugui.ImguiInputState](storage)
		keys.Suppress = func() bool {
			state := captured.Get()
			return state != nil && state.WantCaptureKeyboard
		}
		game.captured = keys.Suppress
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ecs.NewSingleton[movement.Keyboard](storage).Set(movement.Keyboard{Source: keys})
	ebiten.SetTPS(cfg.TickRate)

	if watch {
		if configPath == "" {
			return fmt.Errorf("-watch requires -config")
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		updates, err := config.Watch(ctx, configPath, logger)
		if err != nil {
			return err
		}
		game.reloads = updates
	}

	logger.Info("starting",
		"start", cfg.Start.Grid(),
		"speed", cfg.Movement.Speed,
		"threshold", cfg.Movement.Threshold,
		"tps", cfg.TickRate,
		"debug", debug)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
