package ecs

import (
	"iter"
)

// Query is a View with per-frame caching, meant to live as a field on a
// System. The Scheduler calls Init on Register and Execute before each run
// of the owning system, so Iter and Values see a snapshot taken at the start
// of that system.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	archetypes []*Archetype
	seen       int

	ids   []EntityId
	items []T
	ready bool
}

// NewQuery creates a standalone query. Callers must invoke Execute before
// iterating.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops all caches.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.seen = 0
	q.ready = false
}

// Execute rebuilds the snapshot. Archetypes are never removed from a
// Storage, so only archetypes created since the last call are matched.
func (q *Query[T]) Execute() {
	for _, archetype := range q.storage.order[q.seen:] {
		if q.view.matches(archetype) {
			q.archetypes = append(q.archetypes, archetype)
		}
	}
	q.seen = len(q.storage.order)

	q.ids = q.ids[:0]
	q.items = q.items[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.ids = append(q.ids, id)
			q.items = append(q.items, item)
		}
	}
	q.ready = true
}

// Len returns the number of entities in the current snapshot.
func (q *Query[T]) Len() int {
	return len(q.ids)
}

// Iter yields the snapshot. Panics if Execute has not run.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ready {
		panic("ecs: Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.ids {
			if !yield(q.ids[i], q.items[i]) {
				return
			}
		}
	}
}

// Values yields the snapshot's view structs. Panics if Execute has not run.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.ready {
		panic("ecs: Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for _, item := range q.items {
			if !yield(item) {
				return
			}
		}
	}
}
