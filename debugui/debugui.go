// Package debugui renders a Dear ImGui overlay from inside the ecs frame
// loop. Render functions are attached to entities as ImguiItem components
// and queued by ImguiSystem; the host flushes them between BeginFrame and
// EndFrame of the ImGui backend.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridstep/ecs"
)

// ImguiItem holds a render function drawn once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors ImGui's input capture flags. Front-ends consult
// it to stop keys typed into the overlay from also moving the player.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and defers every ImguiItem's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range s.Items.Values() {
		if item.ImguiItem.Render != nil {
			frame.Commands.Defer(item.ImguiItem.Render)
		}
	}
}

// RegisterComponents registers the overlay's component types.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}

// Install spawns the mover and stats panels and registers ImguiSystem. It
// must run after the movement systems are installed so the panels observe
// the frame's final state.
func Install(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	ecs.NewSingleton(storage, ImguiInputState{})

	mover := NewMoverPanel(storage)
	stats := NewStatsPanel(storage, scheduler, 120)

	storage.Spawn(ImguiItem{Render: mover.Render})
	storage.Spawn(ImguiItem{Render: stats.Render})

	scheduler.Register(&ImguiSystem{})
	scheduler.Register(stats)
}
