// ABOUTME: PDF exporter drawing each marker as a filled circle with gofpdf
// ABOUTME: The page is sized to the surface, one cell per 10x20 points

package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

func writePDF(w io.Writer, doc Document) error {
	cols, rows := doc.bounds()
	pw, ph := pageSize(doc)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetTitle("markpad "+doc.Session, true)
	pdf.SetCreator("markpad", true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for i, p := range doc.Points {
		if !drawable(p, cols, rows) {
			continue
		}
		c := markerFill(i, len(doc.Points))
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		x, y := center(p)
		pdf.Circle(x, y, markerRadius, "F")
	}
	return pdf.Output(w)
}
