package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func keysDown(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, d := range keys {
			if d == k {
				return true
			}
		}
		return false
	}
}

func TestQuitRequested(t *testing.T) {
	captured := func() bool { return true }
	free := func() bool { return false }

	assert.True(t, quitRequested(keysDown(ebiten.KeyQ), nil))
	assert.True(t, quitRequested(keysDown(ebiten.KeyQ), free))
	assert.False(t, quitRequested(keysDown(ebiten.KeyQ), captured), "q typed into the overlay")
	assert.True(t, quitRequested(keysDown(ebiten.KeyEscape), captured))
	assert.False(t, quitRequested(keysDown(ebiten.KeyW), nil))
}
