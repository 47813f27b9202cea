package grid_test

import (
	"fmt"

	"github.com/plus3/gridstep/grid"
)

func ExampleStepper() {
	s := grid.NewStepper(1, 1)
	pos := grid.Vec3{}

	s.Begin(pos, grid.Right)
	fmt.Println(s.Phase, s.Target)

	for s.Moving() {
		var done bool
		pos, done = s.Advance(pos, 0.25)
		fmt.Println(pos, done)
	}

	// Output:
	// stepping (1, 0, 0)
	// (0.25, 0, 0) false
	// (0.5, 0, 0) false
	// (0.75, 0, 0) false
	// (1, 0, 0) true
}

// ExampleStepper_Begin shows that input is ignored while a step is in
// progress.
func ExampleStepper_Begin() {
	s := grid.NewStepper(grid.DefaultSpeed, grid.DefaultThreshold)

	fmt.Println(s.Begin(grid.Vec3{}, grid.Forward))
	fmt.Println(s.Begin(grid.Vec3{}, grid.Left))
	fmt.Println(s.Dir, s.Target)

	// Output:
	// true
	// false
	// forward (0, 0, 1)
}
