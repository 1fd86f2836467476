// ABOUTME: PNG exporter rasterizing marker discs with golang.org/x/image/vector
// ABOUTME: Older markers are drawn first so the newest one stays on top

package export

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// discSegments is the polygon resolution used to approximate a circle.
const discSegments = 24

func writePNG(w io.Writer, doc Document) error {
	cols, rows := doc.bounds()
	pw, ph := pageSize(doc)
	width, height := int(pw), int(ph)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	n := len(doc.Points)
	for i, p := range doc.Points {
		if !drawable(p, cols, rows) {
			continue
		}
		r.Reset(width, height)
		cx, cy := center(p)
		addDisc(r, float32(cx), float32(cy), markerRadius)
		r.Draw(img, img.Bounds(), image.NewUniform(markerFill(i, n)), image.Point{})
	}
	return png.Encode(w, img)
}

// addDisc appends a closed polygon approximating a circle to r.
func addDisc(r *vector.Rasterizer, cx, cy, radius float32) {
	r.MoveTo(cx+radius, cy)
	for i := 1; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		r.LineTo(cx+radius*float32(math.Cos(a)), cy+radius*float32(math.Sin(a)))
	}
	r.ClosePath()
}
