package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/gridstep/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	t.Run("spawn, add, remove", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		a := storage.Spawn(Cell{X: 1})
		b := storage.Spawn(Cell{X: 2}, Steps(4))

		var cmds ecs.Commands
		cmds.Spawn(Label{Value: "new"})
		cmds.AddComponent(a, Heading{DZ: 1})
		cmds.RemoveComponent(b, reflect.TypeFor[Steps]())
		assert.Equal(t, 3, cmds.Len())

		cmds.Flush(storage)
		assert.Zero(t, cmds.Len())

		stats := storage.CollectStats()
		assert.Equal(t, 3, stats.TotalEntityCount)
		assert.False(t, storage.Alive(a))
		assert.False(t, storage.Alive(b))
	})

	t.Run("delete wins over add", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		id := storage.Spawn(Cell{})

		var cmds ecs.Commands
		cmds.AddComponent(id, Heading{})
		cmds.Delete(id)
		cmds.Flush(storage)

		assert.Zero(t, storage.CollectStats().TotalEntityCount)
	})

	t.Run("defers run last", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())

		var cmds ecs.Commands
		var countAtDefer int
		cmds.Defer(func() {
			countAtDefer = storage.CollectStats().TotalEntityCount
		})
		cmds.Spawn(Cell{})
		cmds.Flush(storage)

		assert.Equal(t, 1, countAtDefer)
	})
}
