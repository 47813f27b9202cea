package ecs

import (
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype holds every entity that has exactly the same set of component
// types. Columns share slot indices, so slot i of each column belongs to the
// same entity.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.columnFor(t)
	}
	return a
}

// spawn appends one entity. components must hold exactly one value per
// archetype type, in any order.
func (a *Archetype) spawn(components []any) uint32 {
	if len(components) != len(a.types) {
		panic("ecs: component count does not match archetype")
	}

	slot := -1
	for _, comp := range components {
		col := a.columnIndex(componentType(comp))
		if col < 0 {
			panic("ecs: component " + componentType(comp).String() + " not part of archetype")
		}
		slot = a.columns[col].Append(comp)
	}
	return uint32(slot)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// component returns a pointer to the component of type t in slot index, or nil.
func (a *Archetype) component(index uint32, t reflect.Type) any {
	col := a.columnIndex(t)
	if col < 0 {
		return nil
	}
	return a.columns[col].Get(int(index))
}

func (a *Archetype) delete(index uint32) {
	for _, col := range a.columns {
		col.Delete(int(index))
	}
}

func (a *Archetype) alive(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// HasComponent reports whether the archetype carries t.
func (a *Archetype) HasComponent(t reflect.Type) bool {
	return a.columnIndex(t) >= 0
}

// ID returns the archetype's hash identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the archetype's component types in canonical order.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields every live entity in slot order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) String() string {
	names := make([]string, len(a.types))
	for i, t := range a.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
