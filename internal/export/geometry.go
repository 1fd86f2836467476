// ABOUTME: Cell to page geometry shared by the raster and vector exporters
// ABOUTME: A terminal cell is twice as tall as it is wide

package export

import (
	"image/color"

	"github.com/mauromedda/markpad/internal/history"
)

const (
	cellWidth    = 10.0
	cellHeight   = 20.0
	markerRadius = 4.0
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	markerColor     = color.RGBA{R: 0x1e, G: 0x66, B: 0xf5, A: 0xff}
	latestColor     = color.RGBA{R: 0xfe, G: 0x64, B: 0x0b, A: 0xff}
)

// center returns the page position of the middle of p's cell.
func center(p history.Point) (x, y float64) {
	return (p.X + 0.5) * cellWidth, (p.Y + 0.5) * cellHeight
}

// pageSize returns the page dimensions for doc in page units.
func pageSize(doc Document) (w, h float64) {
	cw, ch := doc.bounds()
	return float64(cw) * cellWidth, float64(ch) * cellHeight
}

// markerFill picks the fill for the i-th of n points; the newest stands out.
func markerFill(i, n int) color.RGBA {
	if i == n-1 {
		return latestColor
	}
	return markerColor
}
