// Package movement runs grid steps inside the ecs frame loop. Each frame
// IntentSystem samples the keyboard, StepSystem either advances the step in
// progress or starts a new one, and OccupancySystem indexes where every
// mover stands.
package movement

import (
	"log/slog"

	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/input"
)

// IntentSystem copies this frame's keyboard direction into every player's
// Intent.
type IntentSystem struct {
	Players ecs.Query[struct {
		*Intent
		*Player
	}]
	Keyboard ecs.Singleton[Keyboard]
}

func (s *IntentSystem) Execute(frame *ecs.UpdateFrame) {
	var src input.Source
	if kb := s.Keyboard.Get(); kb != nil {
		src = kb.Source
	}
	dir := input.Direction(src)

	for item := range s.Players.Values() {
		item.Intent.Dir = dir
	}
}

// StepSystem drives every Mover. A stepping mover only advances: intents
// are ignored until the step completes, and the frame that completes a step
// never starts the next one. An idle mover with an intent begins a step but
// does not move until the following frame.
type StepSystem struct {
	Movers ecs.Query[struct {
		ecs.EntityId
		*Transform
		*Mover
		Intent *Intent `ecs:"optional"`
	}]
	Tuning  ecs.Singleton[Tuning]
	Journal ecs.Singleton[Journal]

	Logger *slog.Logger
}

func (s *StepSystem) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *StepSystem) Execute(frame *ecs.UpdateFrame) {
	tuning := s.Tuning.Get()
	journal := s.Journal.Get()

	for id, item := range s.Movers.Iter() {
		m := item.Mover

		if m.Moving() {
			dir, from := m.Dir, m.Start
			pos, done := m.Advance(item.Transform.Position, frame.DeltaTime)
			item.Transform.Position = pos
			if !done {
				m.Peak = max(m.Peak, m.Displacement(pos))
				continue
			}

			ev := StepEvent{
				Kind:   StepFinished,
				Entity: id,
				Frame:  frame.Index,
				Dir:    dir,
				From:   from,
				To:     pos,
				Frames: frame.Index - m.BeganAt,
				Peak:   m.Peak,
			}
			s.logger().Debug("step finished",
				"entity", id,
				"dir", dir,
				"to", pos,
				"frames", ev.Frames,
				"peak", ev.Peak)
			if journal != nil {
				journal.record(ev)
			}
			continue
		}

		if tuning != nil {
			m.Speed = tuning.Speed
			m.Threshold = tuning.Threshold
		}

		if item.Intent == nil || !m.Begin(item.Transform.Position, item.Intent.Dir) {
			continue
		}
		m.BeganAt = frame.Index
		m.Peak = 0

		s.logger().Debug("step began",
			"entity", id,
			"dir", m.Dir,
			"from", m.Start,
			"target", m.Target)
		if journal != nil {
			journal.record(StepEvent{
				Kind:   StepBegan,
				Entity: id,
				Frame:  frame.Index,
				Dir:    m.Dir,
				From:   m.Start,
				To:     m.Target,
			})
		}
	}
}

// OccupancySystem rebuilds the Occupancy singleton from mover positions.
type OccupancySystem struct {
	Movers ecs.Query[struct {
		ecs.EntityId
		*Transform
		*Mover
	}]
	Occupancy ecs.Singleton[Occupancy]
}

func (s *OccupancySystem) Execute(frame *ecs.UpdateFrame) {
	occ := s.Occupancy.Get()
	if occ == nil {
		return
	}
	occ.reset()
	for id, item := range s.Movers.Iter() {
		occ.put(CellOf(item.Transform.Position), id)
	}
}

// Install registers the movement systems on scheduler in frame order and
// makes sure the Tuning and Occupancy singletons exist. tuning always
// replaces any Tuning already present.
func Install(scheduler *ecs.Scheduler, tuning Tuning, logger *slog.Logger) {
	storage := scheduler.Storage()
	ecs.NewSingleton[Tuning](storage).Set(tuning)
	ecs.NewSingleton(storage, NewOccupancy())
	ecs.NewSingleton(storage, Keyboard{Source: input.Nothing{}})

	scheduler.Register(&IntentSystem{})
	scheduler.Register(&StepSystem{Logger: logger})
	scheduler.Register(&OccupancySystem{})
}
