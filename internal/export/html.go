// ABOUTME: HTML exporter rendering the markers as an inline SVG via html/template
// ABOUTME: Lists the points in placement order beneath the drawing

package export

import (
	"fmt"
	"html/template"
	"image/color"
	"io"
)

// svgMarker is one disc in the template's view model.
type svgMarker struct {
	Index int
	Label string
	CX    float64
	CY    float64
	Fill  string
}

type htmlView struct {
	Doc     Document
	Width   float64
	Height  float64
	Radius  float64
	Markers []svgMarker
}

func writeHTML(w io.Writer, doc Document) error {
	cols, rows := doc.bounds()
	pw, ph := pageSize(doc)
	view := htmlView{Doc: doc, Width: pw, Height: ph, Radius: markerRadius}
	for i, p := range doc.Points {
		if !drawable(p, cols, rows) {
			continue
		}
		cx, cy := center(p)
		view.Markers = append(view.Markers, svgMarker{
			Index: i + 1,
			Label: p.String(),
			CX:    cx,
			CY:    cy,
			Fill:  hexColor(markerFill(i, len(doc.Points))),
		})
	}
	return htmlTmpl.Execute(w, view)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var htmlTmpl = template.Must(template.New("markers").Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>markpad {{ .Doc.Session }}</title>
<style>
  body {
    background: #1e1e2e;
    color: #cdd6f4;
    font-family: 'SF Mono', 'Cascadia Code', 'Fira Code', monospace;
    font-size: 14px;
    padding: 24px;
  }
  svg { background: #ffffff; border-radius: 6px; }
  .meta { color: #9399b2; font-size: 12px; margin-bottom: 12px; }
  ol { margin-top: 16px; }
</style>
</head>
<body>
<div class="meta">session {{ .Doc.Session }} &middot; {{ .Doc.CreatedAt.Format "2006-01-02 15:04:05" }} &middot; {{ len .Markers }} markers</div>
<svg xmlns="http://www.w3.org/2000/svg" width="{{ .Width }}" height="{{ .Height }}" viewBox="0 0 {{ .Width }} {{ .Height }}">
{{- range .Markers }}
  <circle cx="{{ .CX }}" cy="{{ .CY }}" r="{{ $.Radius }}" fill="{{ .Fill }}"><title>{{ .Index }}. {{ .Label }}</title></circle>
{{- end }}
</svg>
<ol>
{{- range .Markers }}
  <li>{{ .Label }}</li>
{{- end }}
</ol>
</body>
</html>
`
