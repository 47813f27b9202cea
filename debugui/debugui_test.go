package debugui_test

import (
	"testing"

	"github.com/plus3/gridstep/debugui"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Zero(t, h.Average())

	h.Push(10)
	h.Push(20)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, float32(15), h.Average())

	h.Push(30)
	h.Push(40)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, float32(30), h.Average(), "oldest sample is evicted")

	tiny := debugui.NewFrameHistory(0)
	tiny.Push(5)
	assert.Equal(t, float32(5), tiny.Average())
}

func TestMoverPanelLines(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	movement.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	id := movement.SpawnPlayer(storage, grid.Vec3{X: 1}, movement.DefaultTuning())
	panel := debugui.NewMoverPanel(storage)

	lines := panel.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "#0 idle at (1, 0, 0)", lines[0])

	mover := ecs.ReadComponent[movement.Mover](storage, id)
	mover.Begin(grid.Vec3{X: 1}, grid.Forward)
	ecs.ReadComponent[movement.Transform](storage, id).Position = grid.Vec3{X: 1, Z: 0.5}

	lines = panel.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "#0 forward (1, 0, 0) -> (1, 0, 1) (50%)", lines[0])

	assert.Empty(t, panel.Recent())
	assert.True(t, ecs.NewSingleton[movement.Journal](storage).Exists())
}
