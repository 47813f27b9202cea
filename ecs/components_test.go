package ecs_test

import "github.com/plus3/gridstep/ecs"

// Test components modelled on the movement package: a cell on the grid,
// a heading, a label and a tag.
type Cell struct {
	X, Z int
}

type Heading struct {
	DX, DZ int
}

type Label struct {
	Value string
}

type Stamina struct {
	Current int
	Max     int
}

type Player struct{}

type Steps int32

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Cell](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Stamina](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Steps](registry)
	return registry
}
