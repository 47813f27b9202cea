package main

import (
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 0.25

func newTestTerminal(t *testing.T) (*terminal, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	cfg := config.DefaultConfig()
	cfg.Movement.Speed = 1
	return newTerminal(screen, cfg, slog.New(slog.DiscardHandler)), screen
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	cell := cells[y*w+x]
	require.NotEmpty(t, cell.Runes)
	return cell.Runes[0]
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminalStepsRight(t *testing.T) {
	term, screen := newTestTerminal(t)
	originCol, originRow := 2*(term.cfg.Grid.Width/2), term.cfg.Grid.Height/2

	term.tick(dt)
	assert.Equal(t, '@', runeAt(t, screen, originCol, originRow))

	assert.False(t, term.handle(key('d')))
	term.tick(dt)

	mover := ecs.ReadComponent[movement.Mover](term.scheduler.Storage(), term.player)
	require.True(t, mover.Moving())
	assert.Equal(t, '+', runeAt(t, screen, originCol+2, originRow))

	for range 4 {
		term.tick(dt)
	}

	pos := ecs.ReadComponent[movement.Transform](term.scheduler.Storage(), term.player).Position
	assert.Equal(t, grid.Vec3{X: 1}, pos)
	assert.Equal(t, '@', runeAt(t, screen, originCol+2, originRow))
	assert.Equal(t, '.', runeAt(t, screen, originCol, originRow))
}

func TestTerminalIgnoresKeysWhileStepping(t *testing.T) {
	term, _ := newTestTerminal(t)

	term.handle(key('w'))
	term.tick(dt)
	term.handle(key('a'))
	term.tick(dt)

	mover := ecs.ReadComponent[movement.Mover](term.scheduler.Storage(), term.player)
	assert.Equal(t, grid.Forward, mover.Dir)
	assert.Equal(t, grid.Vec3{Z: 1}, mover.Target)
}

func TestTerminalLatchClearsEachTick(t *testing.T) {
	term, _ := newTestTerminal(t)
	storage := term.scheduler.Storage()

	term.handle(key('s'))
	term.tick(dt)
	assert.Equal(t, grid.Back, ecs.ReadComponent[movement.Intent](storage, term.player).Dir)

	term.tick(dt)
	assert.Equal(t, grid.None, ecs.ReadComponent[movement.Intent](storage, term.player).Dir)
}

func TestTerminalQuitKeys(t *testing.T) {
	term, _ := newTestTerminal(t)

	assert.True(t, term.handle(key('q')))
	assert.True(t, term.handle(key('Q')))
	assert.True(t, term.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, term.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.False(t, term.handle(key('x')))
	assert.False(t, term.handle(tcell.NewEventResize(100, 40)))
}
