package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/input"
	"github.com/plus3/gridstep/movement"
)

var (
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	targetStyle = tcell.StyleDefault.Foreground(tcell.ColorGoldenrod)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	textStyle   = tcell.StyleDefault
)

type moverView = struct {
	*movement.Transform
	*movement.Mover
}

// terminal draws the board two columns per cell with world origin in the
// middle cell, +Z up the screen.
type terminal struct {
	screen    tcell.Screen
	cfg       config.Config
	latch     *input.Latch
	scheduler *ecs.Scheduler
	occupancy *ecs.Singleton[movement.Occupancy]
	movers    *ecs.View[moverView]
	player    ecs.EntityId
}

func newTerminal(screen tcell.Screen, cfg config.Config, logger *slog.Logger) *terminal {
	registry := ecs.NewComponentRegistry()
	movement.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage, ecs.WithLogger(logger))

	tuning := movement.Tuning{Speed: cfg.Movement.Speed, Threshold: cfg.Movement.Threshold}
	movement.Install(scheduler, tuning, logger)

	latch := &input.Latch{}
	ecs.NewSingleton[movement.Keyboard](storage).Set(movement.Keyboard{Source: latch})

	return &terminal{
		screen:    screen,
		cfg:       cfg,
		latch:     latch,
		scheduler: scheduler,
		occupancy: ecs.NewSingleton[movement.Occupancy](storage),
		movers:    ecs.NewView[moverView](storage),
		player:    movement.SpawnPlayer(storage, cfg.Start.Grid(), tuning),
	}
}

// handle applies one tcell event and reports whether the program should
// exit.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return true
			}
			if k, ok := input.KeyForRune(ev.Rune()); ok {
				t.latch.Press(k)
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.draw()
	}
	return false
}

// tick publishes the keys pressed since the last tick, runs one frame and
// redraws.
func (t *terminal) tick(dt float64) {
	t.latch.Next()
	t.scheduler.Once(dt)
	t.draw()
}

// cellAt maps a board row and column to a world cell.
func (t *terminal) cellAt(row, col int) movement.Cell {
	return movement.Cell{
		X: int32(col - t.cfg.Grid.Width/2),
		Z: int32(t.cfg.Grid.Height/2 - row),
	}
}

func (t *terminal) draw() {
	t.screen.Clear()

	item := t.movers.Get(t.player)
	var target movement.Cell
	stepping := item != nil && item.Mover.Moving()
	if stepping {
		target = movement.CellOf(item.Mover.Target)
	}

	occ := t.occupancy.Get()
	for row := 0; row < t.cfg.Grid.Height; row++ {
		for col := 0; col < t.cfg.Grid.Width; col++ {
			cell := t.cellAt(row, col)
			r, style := '.', floorStyle
			if _, ok := occ.At(cell); ok {
				r, style = '@', playerStyle
			} else if stepping && cell == target {
				r, style = '+', targetStyle
			}
			t.screen.SetContent(col*2, row, r, nil, style)
		}
	}

	if item != nil {
		status := fmt.Sprintf("idle at %v", item.Transform.Position)
		if stepping {
			status = fmt.Sprintf("%s to %v %3.0f%%", item.Mover.Dir, item.Mover.Target, 100*item.Mover.Progress(item.Transform.Position))
		}
		t.print(0, t.cfg.Grid.Height+1, status)
	}
	t.print(0, t.cfg.Grid.Height+2, "w/s/a/d step, q quits")
	t.screen.Show()
}

func (t *terminal) print(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}
