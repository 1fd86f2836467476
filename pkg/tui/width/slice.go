// ABOUTME: Column-based string slicing, truncation, and padding with ANSI-awareness
// ABOUTME: Used for overlay compositing and fixed-width status lines

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// segment is either a visible grapheme cluster or an ANSI sequence.
type segment struct {
	text  string
	col   int
	width int
	isSeq bool
}

// extractSegments breaks s into visible clusters and ANSI sequences.
func extractSegments(s string) []segment {
	var segs []segment
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			segs = append(segs, segment{text: s[i:end], col: col, isSeq: true})
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, segment{text: cluster, col: col, width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// SliceByColumn extracts the visible columns [start, end) of s. ANSI
// sequences are always kept so styling state carries over.
func SliceByColumn(s string, start, end int) string {
	if start >= end || s == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range extractSegments(s) {
		if seg.isSeq {
			b.WriteString(seg.text)
			continue
		}
		if seg.col+seg.width <= start || seg.col >= end {
			continue
		}
		// Clusters straddling a boundary are dropped rather than split.
		if seg.col < start || seg.col+seg.width > end {
			continue
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// TruncateToWidth cuts s to at most maxWidth visible columns.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	return SliceByColumn(s, 0, maxWidth)
}

// PadRight pads s with spaces up to w visible columns. Longer input is
// returned unchanged.
func PadRight(s string, w int) string {
	if n := w - VisibleWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
