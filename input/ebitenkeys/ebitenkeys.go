// Package ebitenkeys adapts ebiten's keyboard state to input.Source.
package ebitenkeys

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/gridstep/input"
)

var keyMap = [...]ebiten.Key{
	input.KeyW: ebiten.KeyW,
	input.KeyS: ebiten.KeyS,
	input.KeyA: ebiten.KeyA,
	input.KeyD: ebiten.KeyD,
}

// Source reads inpututil's per-tick key transitions. It must be queried from
// within ebiten's Update.
type Source struct {
	// Suppress, when set and returning true, hides all presses. The debug
	// overlay uses it while it owns the keyboard.
	Suppress func() bool
}

// Key returns the ebiten key bound to k.
func Key(k input.Key) ebiten.Key {
	return keyMap[k]
}

func (s Source) JustPressed(k input.Key) bool {
	if int(k) >= len(keyMap) {
		return false
	}
	if s.Suppress != nil && s.Suppress() {
		return false
	}
	return inpututil.IsKeyJustPressed(keyMap[k])
}
