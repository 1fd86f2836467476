// ABOUTME: overlayRender composites an overlay box centered on a background terminal view
// ABOUTME: Splices overlay lines into background at vertical/horizontal center, preserving non-overlay rows

package btea

import (
	"strings"

	"github.com/mauromedda/markpad/pkg/tui/width"
)

// overlayRender composites overlay text centered on top of background text.
// Background lines outside the overlay region are preserved.
func overlayRender(background, overlay string, termWidth, termHeight int) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < termHeight {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > termHeight {
		bgLines = bgLines[:termHeight]
	}

	ovLines := strings.Split(overlay, "\n")
	ovWidth := 0
	for _, l := range ovLines {
		ovWidth = max(ovWidth, width.VisibleWidth(l))
	}

	startRow := max((termHeight-len(ovLines))/2, 0)
	startCol := max((termWidth-ovWidth)/2, 0)

	for i, ovLine := range ovLines {
		row := startRow + i
		if row >= termHeight {
			break
		}
		bg := width.PadRight(bgLines[row], startCol)
		prefix := width.TruncateToWidth(bg, startCol)

		// Pad the overlay line so every row covers the same columns.
		ovLine = width.PadRight(ovLine, ovWidth)
		suffix := ""
		if after := startCol + ovWidth; after < termWidth {
			suffix = width.SliceByColumn(bgLines[row], after, termWidth)
		}
		bgLines[row] = prefix + "\x1b[0m" + ovLine + "\x1b[0m" + suffix
	}

	return strings.Join(bgLines, "\n")
}
