package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/game"
	"github.com/plus3/tetrust/piece"
)

// RowInfo summarizes one board row.
type RowInfo struct {
	Row      int
	Filled   int
	Full     bool
	Clearing bool
}

// Rows summarizes every non-empty or clearing row, top to bottom.
func Rows(blocks *board.Blocks) []RowInfo {
	filled := make([]int, blocks.Height())
	for _, cell := range blocks.Cells() {
		filled[cell.Coord.Y]++
	}

	var rows []RowInfo
	for row, n := range filled {
		clearing := blocks.IsClearing(row)
		if n == 0 && !clearing {
			continue
		}
		rows = append(rows, RowInfo{
			Row:      row,
			Filled:   n,
			Full:     n == blocks.Width(),
			Clearing: clearing,
		})
	}
	return rows
}

// BoardInspector shows the falling piece, the clear queue and session stats.
type BoardInspector struct {
	game *game.Game
}

func NewBoardInspector(g *game.Game) *BoardInspector {
	return &BoardInspector{game: g}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	grid := bi.game.Grid()
	current := grid.Current()

	imgui.Text(fmt.Sprintf("Piece: %s", current.Kind))
	if pivot, ok := current.Pivot(); ok {
		imgui.Text(fmt.Sprintf("Pivot: (%d, %d)", pivot.Coord.X, pivot.Coord.Y))
	} else {
		imgui.Text("Pivot: none")
	}
	imgui.Text(fmt.Sprintf("Cells: %s", formatCoords(current.Coords())))
	imgui.Text(fmt.Sprintf("Clearing: %v", grid.Blocks().Clearing()))

	imgui.Separator()
	stats := bi.game.Stats()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", stats.RowsCleared))

	if imgui.TreeNodeStr("Spawns") {
		for _, kind := range piece.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, stats.Spawns(kind)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Rows") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableSetupColumn("Full")
			imgui.TableSetupColumn("Clearing")
			imgui.TableHeadersRow()

			for _, row := range Rows(grid.Blocks()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Row))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Filled))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%t", row.Full))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%t", row.Clearing))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatCoords(coords [piece.Size]core.Coord) string {
	s := ""
	for i, c := range coords {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return s
}
