// ABOUTME: Canvas rendering: places marker glyphs on a cell grid, newest highlighted
// ABOUTME: Markers outside the grid are kept by the surface but not drawn

package btea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/pkg/tui/width"
)

type cell struct {
	text string
	// cont marks the trailing column of a wide glyph.
	cont bool
}

// renderCanvas draws markers onto a w x h grid of cells. Later markers
// overwrite earlier ones at the same cell.
func renderCanvas(markers []history.Point, w, h int, glyph string, normal, latest lipgloss.Style) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	gw := max(width.VisibleWidth(glyph), 1)

	grid := make([][]cell, h)
	for i, p := range markers {
		col, row := p.Cell()
		if row < 0 || row >= h || col < 0 || col+gw > w {
			continue
		}
		if grid[row] == nil {
			grid[row] = make([]cell, w)
		}
		style := normal
		if i == len(markers)-1 {
			style = latest
		}
		// A wide glyph landing on the tail of another one replaces it.
		if grid[row][col].cont && col > 0 {
			grid[row][col-1] = cell{}
		}
		grid[row][col] = cell{text: style.Render(glyph)}
		for k := 1; k < gw; k++ {
			grid[row][col+k] = cell{cont: true}
		}
		for j := col + gw; j < w && grid[row][j].cont; j++ {
			grid[row][j] = cell{}
		}
	}

	blank := strings.Repeat(" ", w)
	lines := make([]string, h)
	for r, row := range grid {
		if row == nil {
			lines[r] = blank
			continue
		}
		var b strings.Builder
		for _, c := range row {
			switch {
			case c.cont:
			case c.text != "":
				b.WriteString(c.text)
			default:
				b.WriteByte(' ')
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
