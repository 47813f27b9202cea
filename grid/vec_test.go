package grid_test

import (
	"testing"

	"github.com/plus3/gridstep/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3(t *testing.T) {
	a := grid.Vec3{X: 1, Y: 2, Z: 3}
	b := grid.Vec3{X: 4, Y: 6, Z: 3}

	assert.Equal(t, grid.Vec3{X: 5, Y: 8, Z: 6}, a.Add(b))
	assert.Equal(t, grid.Vec3{X: -3, Y: -4}, a.Sub(b))
	assert.Equal(t, grid.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, 5.0, a.Dist(b))
	assert.Equal(t, "(1, 2, 3)", a.String())
}

func TestDirection(t *testing.T) {
	for _, d := range []grid.Direction{grid.Forward, grid.Back, grid.Left, grid.Right} {
		assert.Equal(t, 1.0, d.Vec().Len(), d.String())
		assert.Zero(t, d.Vec().Y, d.String())

		parsed, err := grid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	assert.Equal(t, grid.Vec3{}, grid.None.Vec())
	assert.Equal(t, grid.Vec3{}, grid.Direction(9).Vec())
	assert.Equal(t, "direction(9)", grid.Direction(9).String())

	_, err := grid.ParseDirection("up")
	assert.Error(t, err)
}
