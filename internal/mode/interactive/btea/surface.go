// ABOUTME: Surface mirrors the active point sequence by listening to history events
// ABOUTME: Added appends a marker, Removed erases the newest, Cleared re-reads Snapshot

package btea

import (
	"github.com/mauromedda/markpad/internal/history"
	pilog "github.com/mauromedda/markpad/internal/log"
)

// Surface is the drawn state of the canvas. It never reads the undone
// sequence; it only reacts to notifications.
type Surface struct {
	h           *history.History
	markers     []history.Point
	unsubscribe func()
}

// NewSurface draws the history's current snapshot and subscribes to it.
func NewSurface(h *history.History) *Surface {
	s := &Surface{h: h, markers: h.Snapshot()}
	s.unsubscribe = h.Subscribe(s.handle)
	return s
}

func (s *Surface) handle(e history.Event) {
	switch e.Kind {
	case history.PointAdded:
		s.markers = append(s.markers, e.Point)
	case history.PointRemoved:
		if n := len(s.markers); n > 0 {
			s.markers = s.markers[:n-1]
		} else {
			pilog.Warn("surface: remove %s with nothing drawn", e.Point)
		}
	case history.Cleared:
		s.markers = s.h.Snapshot()
	}
}

// Markers returns the drawn markers, oldest first.
func (s *Surface) Markers() []history.Point {
	out := make([]history.Point, len(s.markers))
	copy(out, s.markers)
	return out
}

// Len returns the number of drawn markers.
func (s *Surface) Len() int { return len(s.markers) }

// Close stops listening to the history.
func (s *Surface) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
