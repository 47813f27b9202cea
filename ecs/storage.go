package ecs

import (
	"hash/fnv"
	"reflect"
	"slices"
	"strings"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	// order keeps archetypes in creation order so iteration is deterministic.
	order      []*Archetype
	singletons map[reflect.Type]any
}

// NewStorage creates an empty world backed by registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]any),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from the given components. Pointers are
// dereferenced; the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}
	archetype := s.archetypeFor(componentTypes(components))
	return NewEntityId(archetype.id, archetype.spawn(components))
}

// Delete removes the entity. Unknown ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.delete(id.Index())
	}
}

// Alive reports whether id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.alive(id.Index())
}

// AddComponent moves the entity into the archetype that also carries
// component and returns its new id. An existing component of the same type
// is overwritten in place.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	old, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !old.alive(id.Index()) {
		return 0
	}

	t := componentType(component)
	if old.HasComponent(t) {
		reflect.ValueOf(old.component(id.Index(), t)).Elem().Set(reflect.Indirect(reflect.ValueOf(component)))
		return id
	}

	types := append(slices.Clone(old.types), t)
	sortTypes(types)
	return s.migrate(id, old, types, component)
}

// RemoveComponent moves the entity into the archetype without t and returns
// its new id. Removing the last component deletes the entity and returns 0.
func (s *Storage) RemoveComponent(id EntityId, t reflect.Type) EntityId {
	old, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !old.alive(id.Index()) || !old.HasComponent(t) {
		return id
	}

	types := slices.DeleteFunc(slices.Clone(old.types), func(x reflect.Type) bool { return x == t })
	if len(types) == 0 {
		old.delete(id.Index())
		return 0
	}
	return s.migrate(id, old, types, nil)
}

func (s *Storage) migrate(id EntityId, old *Archetype, types []reflect.Type, extra any) EntityId {
	target := s.archetypeFor(types)

	components := make([]any, 0, len(types))
	for _, t := range types {
		if extra != nil && t == componentType(extra) {
			components = append(components, extra)
			continue
		}
		components = append(components, old.component(id.Index(), t))
	}

	newId := NewEntityId(target.id, target.spawn(components))
	old.delete(id.Index())
	return newId
}

// GetComponent returns a pointer to the entity's component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.component(id.Index(), t)
}

// HasComponent reports whether the entity's archetype carries t.
func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.HasComponent(t)
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// AddSingleton stores value as the singleton of its type. An existing
// singleton is overwritten in place so pointers obtained earlier stay valid.
// Singleton types need not be registered.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.Indirect(reflect.ValueOf(value))
	if existing, ok := s.singletons[t]; ok {
		reflect.ValueOf(existing).Elem().Set(v)
		return
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons[t] = ptr.Interface()
}

// RemoveSingleton drops the singleton of type t.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

func (s *Storage) singleton(t reflect.Type) any {
	return s.singletons[t]
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	if archetype, ok := s.archetypes.Get(id); ok {
		if !slices.Equal(archetype.types, types) {
			panic("ecs: archetype hash collision between " + archetype.String() + " and " + typeList(types))
		}
		return archetype
	}

	archetype := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, archetype)
	s.order = append(s.order, archetype)
	return archetype
}

// ComponentReader is implemented by Storage and lets helpers read
// components without depending on the concrete store.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component or nil.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	c, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return c
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// componentTypes returns the canonical (sorted) type list for components.
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentType(comp))
	}
	sortTypes(types)
	return types
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeKey(a), typeKey(b))
	})
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}

func typeList(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// hashTypes is FNV-1a over the canonical type keys. Zero is reserved so that
// a zero EntityId never names a live entity.
func hashTypes(types []reflect.Type) uint32 {
	h := fnv.New32a()
	for _, t := range types {
		h.Write([]byte(typeKey(t)))
		h.Write([]byte{0})
	}
	if sum := h.Sum32(); sum != 0 {
		return sum
	}
	return 1
}
