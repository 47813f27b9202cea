package movement

import (
	"math"

	"github.com/kamstrup/intmap"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
)

// Cell is an integer grid coordinate in the X/Z plane.
type Cell struct {
	X, Z int32
}

// CellOf rounds pos to the nearest cell.
func CellOf(pos grid.Vec3) Cell {
	return Cell{X: int32(math.Round(pos.X)), Z: int32(math.Round(pos.Z))}
}

func (c Cell) key() uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Z))
}

// Occupancy maps cells to the mover standing on them. It is rebuilt every
// frame and only used for lookups by renderers and tools; movement itself
// ignores it.
type Occupancy struct {
	cells *intmap.Map[uint64, ecs.EntityId]
}

// NewOccupancy returns an empty index.
func NewOccupancy() Occupancy {
	return Occupancy{cells: intmap.New[uint64, ecs.EntityId](64)}
}

// At returns the entity on c.
func (o *Occupancy) At(c Cell) (ecs.EntityId, bool) {
	if o.cells == nil {
		return 0, false
	}
	return o.cells.Get(c.key())
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	if o.cells == nil {
		return 0
	}
	return o.cells.Len()
}

func (o *Occupancy) reset() {
	if o.cells == nil {
		o.cells = intmap.New[uint64, ecs.EntityId](64)
		return
	}
	o.cells.Clear()
}

func (o *Occupancy) put(c Cell, id ecs.EntityId) {
	o.cells.Put(c.key(), id)
}
