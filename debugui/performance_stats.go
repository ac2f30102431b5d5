package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrust/game"
	"github.com/plus3/tetrust/loop"
)

// PerformanceStats plots tick time and per-system scheduler statistics. It is
// also a loop.System so it can sample each tick's elapsed time.
type PerformanceStats struct {
	game  *game.Game
	ticks *history
}

func NewPerformanceStats(g *game.Game, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		game:  g,
		ticks: newHistory(historyFrames),
	}
}

func (ps *PerformanceStats) Execute(frame *loop.UpdateFrame) {
	ps.ticks.push(float32(frame.Elapsed.Seconds() * 1000))
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.game.SchedulerStats()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))

	avg := ps.ticks.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Tick: %.2f ms (%.0f TPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Tick Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##ticktime", &ps.ticks.samples[0], int32(len(ps.ticks.samples)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Min")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.MinDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
