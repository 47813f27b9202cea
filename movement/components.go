package movement

import (
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
	"github.com/plus3/gridstep/input"
)

// Transform is the host-visible position of an entity.
type Transform struct {
	Position grid.Vec3
}

// Mover carries the step state machine plus bookkeeping for the current
// step: the frame it began on and the largest displacement seen so far.
type Mover struct {
	grid.Stepper
	BeganAt uint64
	Peak    float64
}

// Intent is the direction requested this frame, grid.None for no request.
type Intent struct {
	Dir grid.Direction
}

// Player tags entities that read the keyboard.
type Player struct{}

// Keyboard is the singleton key source for the current frame.
type Keyboard struct {
	Source input.Source
}

// Tuning is the singleton holding the live step parameters. Movers pick up
// changes the next time they are idle.
type Tuning struct {
	Speed     float64
	Threshold float64
}

// DefaultTuning returns the package defaults.
func DefaultTuning() Tuning {
	return Tuning{Speed: grid.DefaultSpeed, Threshold: grid.DefaultThreshold}
}

// RegisterComponents registers every entity component of this package.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Mover](registry)
	ecs.RegisterComponent[Intent](registry)
	ecs.RegisterComponent[Player](registry)
}

// SpawnPlayer creates a keyboard-driven mover at pos.
func SpawnPlayer(storage *ecs.Storage, pos grid.Vec3, tuning Tuning) ecs.EntityId {
	return storage.Spawn(
		Transform{Position: pos},
		Mover{Stepper: grid.NewStepper(tuning.Speed, tuning.Threshold)},
		Intent{},
		Player{},
	)
}
