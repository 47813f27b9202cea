package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/gridstep/config"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/movement"
	"golang.org/x/image/colornames"
)

type moverView = struct {
	*movement.Transform
	*movement.Mover
}

// renderer draws the X/Z plane top-down: +X to the right, +Z up the screen.
// World origin sits in the middle cell of the board.
type renderer struct {
	cfg    config.Config
	player ecs.EntityId
	view   *ecs.View[moverView]
	board  *ebiten.Image
}

func newRenderer(cfg config.Config, storage *ecs.Storage, player ecs.EntityId) *renderer {
	return &renderer{
		cfg:    cfg,
		player: player,
		view:   ecs.NewView[moverView](storage),
	}
}

// toScreen returns the top-left pixel of the cell containing world pos.
func (r *renderer) toScreen(pos grid.Vec3) (float32, float32) {
	cell := float64(r.cfg.Grid.CellSize)
	originX := float64(r.cfg.Grid.Width/2) * cell
	originY := float64(r.cfg.Grid.Height/2) * cell
	return float32(originX + pos.X*cell), float32(originY - pos.Z*cell)
}

func (r *renderer) drawBoard() *ebiten.Image {
	if r.board != nil {
		return r.board
	}
	cell := float32(r.cfg.Grid.CellSize)
	w, h := r.cfg.Grid.Width*r.cfg.Grid.CellSize, r.cfg.Grid.Height*r.cfg.Grid.CellSize

	r.board = ebiten.NewImage(w, h)
	r.board.Fill(colornames.Darkslategray)
	for x := 0; x < r.cfg.Grid.Width; x++ {
		for y := 0; y < r.cfg.Grid.Height; y++ {
			vector.StrokeRect(r.board, float32(x)*cell, float32(y)*cell, cell, cell, 1, colornames.Slategray, false)
		}
	}
	return r.board
}

func (r *renderer) draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	screen.DrawImage(r.drawBoard(), nil)

	cell := float32(r.cfg.Grid.CellSize)
	inset := cell / 8

	item := r.view.Get(r.player)
	if item == nil {
		return
	}

	status := fmt.Sprintf("idle at %v", item.Transform.Position)
	if item.Mover.Moving() {
		tx, ty := r.toScreen(item.Mover.Target)
		vector.StrokeRect(screen, tx+inset, ty+inset, cell-2*inset, cell-2*inset, 2, colornames.Goldenrod, false)
		status = fmt.Sprintf("%s to %v  %3.0f%%", item.Mover.Dir, item.Mover.Target, 100*item.Mover.Progress(item.Transform.Position))
	}

	px, py := r.toScreen(item.Transform.Position)
	vector.DrawFilledRect(screen, px+inset, py+inset, cell-2*inset, cell-2*inset, colornames.Gold, false)

	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed %.2f  TPS %.0f", item.Mover.Speed, ebiten.ActualTPS()), 8, 24)
}
