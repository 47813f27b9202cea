package ecs_test

import (
	"fmt"

	"github.com/plus3/gridstep/ecs"
)

// ExampleScheduler walks an entity one cell per frame. Query fields on a
// registered system are bound by the scheduler and refreshed before every
// Execute.
func ExampleScheduler() {
	registry := newTestRegistry()
	storage := ecs.NewStorage(registry)
	walker := storage.Spawn(Cell{}, Heading{DX: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&walkSystem{})

	for range 3 {
		scheduler.Once(1.0 / 60.0)
	}

	cell := ecs.ReadComponent[Cell](storage, walker)
	fmt.Printf("cell %d,%d after %d frames\n", cell.X, cell.Z, scheduler.Frames())

	// Output:
	// cell 3,0 after 3 frames
}

// ExampleNewSingleton shows that every Singleton of a type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	budget := ecs.NewSingleton[Stamina](storage, Stamina{Current: 10, Max: 10})
	budget.Get().Current -= 4

	same := ecs.NewSingleton[Stamina](storage)
	fmt.Printf("%d/%d\n", same.Get().Current, same.Get().Max)

	// Output:
	// 6/10
}
