package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gridstep/config"
	debugui_ebiten "github.com/plus3/gridstep/debugui/ebiten"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/movement"
)

// Game implements ebiten.Game. Every ebiten tick runs one scheduler frame
// with a fixed delta of 1/TPS.
type Game struct {
	cfg       config.Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	renderer  *renderer
	tuning    *ecs.Singleton[movement.Tuning]
	imgui     *debugui_ebiten.ImguiBackend
	reloads   <-chan config.Config
	// captured reports whether the overlay owns the keyboard. Nil without
	// the overlay.
	captured func() bool
}

// quitRequested reports whether Esc or Q is down. Q is ignored while the
// overlay has the keyboard so it can be typed into fields.
func quitRequested(down func(ebiten.Key) bool, captured func() bool) bool {
	if down(ebiten.KeyEscape) {
		return true
	}
	if captured != nil && captured() {
		return false
	}
	return down(ebiten.KeyQ)
}

func (g *Game) Update() error {
	if quitRequested(ebiten.IsKeyPressed, g.captured) {
		return ebiten.Termination
	}

	g.applyReloads()

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

// applyReloads takes the newest pending config without blocking.
func (g *Game) applyReloads() {
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.tuning.Set(movement.Tuning{Speed: cfg.Movement.Speed, Threshold: cfg.Movement.Threshold})
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen)
	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}
