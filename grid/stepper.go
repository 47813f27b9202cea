// Package grid holds the engine-independent movement core: a one-unit,
// cardinal step animated over several frames and snapped to its target.
package grid

// Phase is the state of a Stepper.
type Phase uint8

const (
	Idle Phase = iota
	Stepping
)

func (p Phase) String() string {
	if p == Stepping {
		return "stepping"
	}
	return "idle"
}

const (
	// DefaultSpeed is the fraction of the step vector covered per second.
	DefaultSpeed = 0.25
	// DefaultThreshold is the distance from the start at which a step
	// completes.
	DefaultThreshold = 1.0
)

// Stepper is the Idle/Stepping state machine for one mover. Start and
// Target are only meaningful while Phase is Stepping.
type Stepper struct {
	Phase     Phase
	Start     Vec3
	Target    Vec3
	Dir       Direction
	Speed     float64
	Threshold float64
}

// NewStepper returns an idle stepper.
func NewStepper(speed, threshold float64) Stepper {
	return Stepper{Speed: speed, Threshold: threshold}
}

// Moving reports whether a step is in progress.
func (s *Stepper) Moving() bool {
	return s.Phase == Stepping
}

// Begin starts a step from pos in direction dir. It does nothing and returns
// false while a step is already in progress or when dir is None.
func (s *Stepper) Begin(pos Vec3, dir Direction) bool {
	if s.Phase == Stepping || dir == None || dir.Vec() == (Vec3{}) {
		return false
	}
	s.Phase = Stepping
	s.Dir = dir
	s.Start = pos
	s.Target = pos.Add(dir.Vec())
	return true
}

// Advance moves pos along the current step by dt seconds and returns the new
// position and whether the step completed on this call.
//
// A step completes once the displacement from Start reaches Threshold: the
// returned position is then exactly Target and the stepper is Idle again.
// Displacement never exceeds Threshold, so a move that would overshoot
// completes immediately. This finishes up to two frames sooner than a loop
// that moves first and only snaps once the displacement has already passed
// Threshold. Non-positive dt leaves pos where it is.
func (s *Stepper) Advance(pos Vec3, dt float64) (Vec3, bool) {
	if s.Phase != Stepping {
		return pos, false
	}
	if s.Start.Dist(pos) >= s.Threshold {
		return s.finish(), true
	}
	if dt <= 0 || s.Speed <= 0 {
		return pos, false
	}

	next := pos.Add(s.Target.Sub(s.Start).Scale(s.Speed * dt))
	if s.Start.Dist(next) >= s.Threshold {
		return s.finish(), true
	}
	return next, false
}

func (s *Stepper) finish() Vec3 {
	s.Phase = Idle
	s.Dir = None
	return s.Target
}

// Displacement returns the distance between Start and pos while stepping and
// zero otherwise.
func (s *Stepper) Displacement(pos Vec3) float64 {
	if s.Phase != Stepping {
		return 0
	}
	return s.Start.Dist(pos)
}

// Progress returns Displacement as a fraction of Threshold in [0, 1].
func (s *Stepper) Progress(pos Vec3) float64 {
	if s.Phase != Stepping || s.Threshold <= 0 {
		return 0
	}
	return min(s.Displacement(pos)/s.Threshold, 1)
}

// Cancel abandons the current step, leaving the mover wherever it is.
func (s *Stepper) Cancel() {
	s.Phase = Idle
	s.Dir = None
}
