package grid

import (
	"fmt"
	"math"
)

// Vec3 is a position or offset in world units. The grid lies in the X/Z
// plane; Y is carried through untouched.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Direction is one of the four cardinal step directions, or None.
type Direction uint8

const (
	None Direction = iota
	Forward
	Back
	Left
	Right
)

// Unit vectors use a left-handed, Y-up frame: forward is +Z, right is +X.
var directionVecs = [...]Vec3{
	None:    {},
	Forward: {Z: 1},
	Back:    {Z: -1},
	Left:    {X: -1},
	Right:   {X: 1},
}

var directionNames = [...]string{
	None:    "none",
	Forward: "forward",
	Back:    "back",
	Left:    "left",
	Right:   "right",
}

// Vec returns the one-unit offset for d. None and unknown values map to the
// zero vector.
func (d Direction) Vec() Vec3 {
	if int(d) >= len(directionVecs) {
		return Vec3{}
	}
	return directionVecs[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", d)
	}
	return directionNames[d]
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), nil
		}
	}
	return None, fmt.Errorf("grid: unknown direction %q", s)
}
