package movement

import (
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/grid"
)

// StepEventKind distinguishes the two ends of a step.
type StepEventKind uint8

const (
	StepBegan StepEventKind = iota
	StepFinished
)

func (k StepEventKind) String() string {
	if k == StepFinished {
		return "finished"
	}
	return "began"
}

// StepEvent records one transition of a mover.
type StepEvent struct {
	Kind   StepEventKind
	Entity ecs.EntityId
	Frame  uint64
	Dir    grid.Direction
	From   grid.Vec3
	To     grid.Vec3
	// Frames and Peak are only set on StepFinished.
	Frames uint64
	Peak   float64
}

// Journal is an optional singleton collecting step events. When Limit is
// positive only the most recent Limit events are kept.
type Journal struct {
	Limit  int
	Events []StepEvent
}

func (j *Journal) record(ev StepEvent) {
	j.Events = append(j.Events, ev)
	if j.Limit > 0 && len(j.Events) > j.Limit {
		j.Events = append(j.Events[:0], j.Events[len(j.Events)-j.Limit:]...)
	}
}

// Finished returns only the StepFinished events.
func (j *Journal) Finished() []StepEvent {
	var out []StepEvent
	for _, ev := range j.Events {
		if ev.Kind == StepFinished {
			out = append(out, ev)
		}
	}
	return out
}
