package ecs

import "reflect"

// Singleton gives typed access to a component that belongs to the world
// rather than to an entity: input sources, tuning, configuration.
type Singleton[T any] struct {
	storage *Storage
}

// NewSingleton returns an accessor for T. If no T singleton exists yet it is
// created from initializer (or the zero value), so Get never returns nil
// afterwards unless the singleton is removed.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}
	return &Singleton[T]{storage: storage}
}

// Init binds the accessor to storage. The Scheduler calls this for Singleton
// fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
}

// Get returns the singleton, or nil if none has been added.
func (s *Singleton[T]) Get() *T {
	if s.storage == nil {
		return nil
	}
	ptr, _ := s.storage.singleton(reflect.TypeFor[T]()).(*T)
	return ptr
}

// Exists reports whether the singleton has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// Set overwrites the singleton value, creating it if needed.
func (s *Singleton[T]) Set(value T) {
	s.storage.AddSingleton(&value)
}
