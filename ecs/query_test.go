package ecs_test

import (
	"testing"

	"github.com/plus3/gridstep/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Cell{X: 1}, Heading{DX: 1})
	storage.Spawn(Cell{X: 2}, Heading{DZ: 1})
	storage.Spawn(Cell{X: 3}, Heading{DX: -1}, Stamina{Current: 5})
	storage.Spawn(Cell{X: 4})

	query := ecs.NewQuery[struct {
		*Cell
		*Heading
	}](storage)

	t.Run("panics without execute", func(t *testing.T) {
		fresh := ecs.NewQuery[struct{ *Cell }](storage)
		assert.Panics(t, func() {
			for range fresh.Iter() {
			}
		})
		assert.Panics(t, func() {
			for range fresh.Values() {
			}
		})
	})

	t.Run("execute builds snapshot", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 3, query.Len())

		xs := []int{}
		for item := range query.Values() {
			xs = append(xs, item.Cell.X)
		}
		assert.ElementsMatch(t, []int{1, 2, 3}, xs)
	})

	t.Run("snapshot ignores spawns until next execute", func(t *testing.T) {
		storage.Spawn(Cell{X: 5}, Heading{}, Label{Value: "late"})
		assert.Equal(t, 3, query.Len())

		query.Execute()
		assert.Equal(t, 4, query.Len())
	})

	t.Run("deleted entities drop out", func(t *testing.T) {
		var victim ecs.EntityId
		for id := range query.Iter() {
			victim = id
			break
		}
		storage.Delete(victim)

		query.Execute()
		assert.Equal(t, 3, query.Len())
		for id := range query.Iter() {
			assert.NotEqual(t, victim, id)
		}
	})
}
