package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridstep/ecs"
	"github.com/plus3/gridstep/movement"
)

const recentSteps = 8

type moverView struct {
	ecs.EntityId
	*movement.Transform
	*movement.Mover
}

// MoverPanel shows every mover's step state and lets the live Tuning be
// edited. Edits apply from each mover's next step.
type MoverPanel struct {
	movers  *ecs.View[moverView]
	tuning  *ecs.Singleton[movement.Tuning]
	journal *ecs.Singleton[movement.Journal]
}

// NewMoverPanel creates the panel, adding a bounded Journal singleton for
// the recent-steps list if none exists.
func NewMoverPanel(storage *ecs.Storage) *MoverPanel {
	return &MoverPanel{
		movers:  ecs.NewView[moverView](storage),
		tuning:  ecs.NewSingleton(storage, movement.DefaultTuning()),
		journal: ecs.NewSingleton(storage, movement.Journal{Limit: recentSteps}),
	}
}

// Lines describes each mover as one line of text.
func (p *MoverPanel) Lines() []string {
	var lines []string
	for id, m := range p.movers.Iter() {
		pos := m.Transform.Position
		if !m.Mover.Moving() {
			lines = append(lines, fmt.Sprintf("#%d idle at %v", id.Index(), pos))
			continue
		}
		lines = append(lines, fmt.Sprintf("#%d %s %v -> %v (%.0f%%)",
			id.Index(), m.Mover.Dir, m.Mover.Start, m.Mover.Target, 100*m.Mover.Progress(pos)))
	}
	return lines
}

// Recent returns the most recent journal entries, newest first.
func (p *MoverPanel) Recent() []string {
	journal := p.journal.Get()
	if journal == nil {
		return nil
	}
	events := journal.Events
	lines := make([]string, 0, len(events))
	for i := len(events) - 1; i >= 0 && len(lines) < recentSteps; i-- {
		ev := events[i]
		lines = append(lines, fmt.Sprintf("f%d %s %s -> %v", ev.Frame, ev.Kind, ev.Dir, ev.To))
	}
	return lines
}

// Render draws the panel.
func (p *MoverPanel) Render() {
	if !imgui.BeginV("Mover", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range p.Lines() {
		imgui.Text(line)
	}
	for m := range p.movers.Values() {
		imgui.ProgressBarV(float32(m.Mover.Progress(m.Transform.Position)), imgui.NewVec2(-1, 0), "")
	}

	if tuning := p.tuning.Get(); tuning != nil {
		imgui.Separator()
		speed := float32(tuning.Speed)
		if imgui.InputFloat("speed", &speed) && speed > 0 {
			tuning.Speed = float64(speed)
		}
		threshold := float32(tuning.Threshold)
		if imgui.InputFloat("threshold", &threshold) && threshold > 0 && threshold <= 1 {
			tuning.Threshold = float64(threshold)
		}
	}

	if imgui.TreeNodeStr("Recent steps") {
		for _, line := range p.Recent() {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}
