// ABOUTME: Renders points back into script source, one record line per point
// ABOUTME: Output parses with Parse and replays to the same active sequence

package script

import (
	"strconv"
	"strings"

	"github.com/mauromedda/markpad/internal/history"
)

// Encode returns a script that records pts in order.
func Encode(pts []history.Point) string {
	var b strings.Builder
	for _, p := range pts {
		b.WriteString("record ")
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}
