package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View reads entities through a struct of component pointers.
//
// Every pointer field of T names a component type. Embedded fields are
// always required; named fields may carry the `ecs:"optional"` tag, in which
// case they are nil for entities lacking the component. A field of type
// EntityId (embedded or named) receives the entity's id.
type View[T any] struct {
	storage  *Storage
	types    []reflect.Type
	optional []bool
	offsets  []uintptr
	idOffset uintptr
	hasId    bool
}

// NewView builds a view over storage. It panics if T is not a struct of
// component pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: View field " + field.Name + " must be a pointer or EntityId")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" {
			if tag != "optional" || field.Anonymous {
				panic("ecs: invalid ecs tag \"" + tag + "\" on field " + field.Name)
			}
			optional = true
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, optional)
		v.offsets = append(v.offsets, field.Offset)
	}
	return v
}

// Fill populates out for id. It returns false when the entity is gone or
// lacks a required component.
func (v *View[T]) Fill(id EntityId, out *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.alive(id.Index()) {
		return false
	}
	return v.populate(unsafe.Pointer(out), archetype, v.columnsFor(archetype), int(id.Index()))
}

// Get returns a filled view struct for id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for i, t := range v.types {
		if !v.optional[i] && !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

// columnsFor maps each view field to its column in archetype, -1 if absent.
func (v *View[T]) columnsFor(archetype *Archetype) []int {
	cols := make([]int, len(v.types))
	for i, t := range v.types {
		cols[i] = archetype.columnIndex(t)
	}
	return cols
}

func (v *View[T]) populate(dst unsafe.Pointer, archetype *Archetype, cols []int, index int) bool {
	for i, col := range cols {
		field := (*unsafe.Pointer)(unsafe.Add(dst, v.offsets[i]))

		var component any
		if col >= 0 {
			component = archetype.columns[col].Get(index)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*field = nil
			continue
		}
		*field = reflect.ValueOf(component).UnsafePointer()
	}
	if v.hasId {
		*(*EntityId)(unsafe.Add(dst, v.idOffset)) = NewEntityId(archetype.id, uint32(index))
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}
		cols := v.columnsFor(archetype)

		var result T
		for index := range archetype.columns[0].Iter() {
			if !v.populate(unsafe.Pointer(&result), archetype, cols, index) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(index)), result) {
				return
			}
		}
	}
}

// Iter yields every matching entity, archetypes in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.order {
			if !v.matches(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values yields only the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}
