// Command gridstep-term runs the grid mover in a terminal. W/S/A/D step,
// Esc, Q or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/gridstep/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Built-in defaults are used when empty.")
	logPath := flag.String("log", "", "Write logs to this file. Logs are discarded when empty.")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, "gridstep-term:", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.NewLogger(logOut)
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := newTerminal(screen, cfg, logger)
	term.draw()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	interval := time.Second / time.Duration(cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("starting", "start", cfg.Start.Grid(), "tick", interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || term.handle(ev) {
				logger.Info("quit", "frames", term.scheduler.Frames())
				return nil
			}
		case <-ticker.C:
			term.tick(interval.Seconds())
		}
	}
}
