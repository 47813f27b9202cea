package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridstep/ecs"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

// NewFrameHistory returns a ring holding size samples.
func NewFrameHistory(size int) FrameHistory {
	return FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records one sample, evicting the oldest when full.
func (h *FrameHistory) Push(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples, zero when empty.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// Len returns the number of recorded samples.
func (h *FrameHistory) Len() int {
	return h.filled
}

// StatsPanel shows frame timing, storage counts and per-system timings. It
// is also a System so it can sample each frame's delta time.
type StatsPanel struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	history   FrameHistory
}

// NewStatsPanel creates a panel keeping historyFrames frame samples.
func NewStatsPanel(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		storage:   storage,
		scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
	}
}

func (p *StatsPanel) Execute(frame *ecs.UpdateFrame) {
	p.history.Push(float32(frame.DeltaTime * 1000))
}

// Render draws the panel. Call between the backend's BeginFrame and
// EndFrame.
func (p *StatsPanel) Render() {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := p.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &p.history.samples[0], int32(len(p.history.samples)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range p.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}
