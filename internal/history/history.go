// ABOUTME: History owns the active and undone point sequences and the transitions between them
// ABOUTME: Record/Undo/Redo/Reset publish events; queries return copies, never the backing slices

package history

import (
	"github.com/mauromedda/markpad/internal/eventbus"
	pilog "github.com/mauromedda/markpad/internal/log"
)

// Option configures a History.
type Option func(*History)

// WithRedoPolicy sets how Record treats the undone sequence.
func WithRedoPolicy(p RedoPolicy) Option {
	return func(h *History) { h.policy = p }
}

// WithBus makes the history publish on an existing bus instead of a private one.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(h *History) {
		if bus != nil {
			h.bus = bus
		}
	}
}

// History manages the placed (active) and undone markers of one surface.
//
// Every operation runs to completion before any subscriber is notified.
// History holds no lock: it is meant to be driven from a single event loop
// and is not safe for concurrent use.
type History struct {
	active []Point
	undone []Point

	policy RedoPolicy
	bus    *eventbus.Bus[Event]
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{
		policy: RedoPreserve,
		bus:    eventbus.New[Event](),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Policy returns the redo policy in effect.
func (h *History) Policy() RedoPolicy {
	return h.policy
}

// Subscribe registers fn for history events and returns an unsubscribe function.
func (h *History) Subscribe(fn func(Event)) func() {
	return h.bus.Subscribe(fn)
}

// Record appends p to the active sequence.
// Under RedoPreserve the undone sequence is left untouched.
func (h *History) Record(p Point) {
	h.active = append(h.active, p)
	if h.policy == RedoDiscardOnRecord && len(h.undone) > 0 {
		pilog.Debug("history: record %s discards %d undone", p, len(h.undone))
		h.undone = nil
	}
	h.bus.Publish(Event{Kind: PointAdded, Point: p})
}

// Undo moves the newest active point to the tail of the undone sequence.
// It reports whether anything moved; with no active points it is a no-op.
func (h *History) Undo() bool {
	p, ok := pop(&h.active)
	if !ok {
		pilog.Debug("history: undo ignored, nothing active")
		return false
	}
	h.undone = append(h.undone, p)
	h.bus.Publish(Event{Kind: PointRemoved, Point: p})
	return true
}

// Redo moves the most recently undone point back to the tail of the active
// sequence. It reports whether anything moved; with nothing undone it is a no-op.
func (h *History) Redo() bool {
	p, ok := pop(&h.undone)
	if !ok {
		pilog.Debug("history: redo ignored, nothing undone")
		return false
	}
	h.active = append(h.active, p)
	h.bus.Publish(Event{Kind: PointAdded, Point: p})
	return true
}

// Reset clears both sequences.
func (h *History) Reset() {
	h.active = nil
	h.undone = nil
	h.bus.Publish(Event{Kind: Cleared})
}

// CanUndo reports whether there is an active point to undo.
func (h *History) CanUndo() bool { return len(h.active) > 0 }

// CanRedo reports whether there is an undone point to redo.
func (h *History) CanRedo() bool { return len(h.undone) > 0 }

// ActiveCount returns the number of active points.
func (h *History) ActiveCount() int { return len(h.active) }

// UndoneCount returns the number of undone points.
func (h *History) UndoneCount() int { return len(h.undone) }

// Snapshot returns a copy of the active sequence, oldest first.
func (h *History) Snapshot() []Point {
	return clone(h.active)
}

// Undone returns a copy of the undone sequence, oldest-removed first.
func (h *History) Undone() []Point {
	return clone(h.undone)
}

// PeekUndo returns the point the next Undo would remove.
func (h *History) PeekUndo() (Point, bool) {
	return tail(h.active)
}

// PeekRedo returns the point the next Redo would restore.
func (h *History) PeekRedo() (Point, bool) {
	return tail(h.undone)
}

func pop(s *[]Point) (Point, bool) {
	n := len(*s)
	if n == 0 {
		return Point{}, false
	}
	p := (*s)[n-1]
	*s = (*s)[:n-1]
	return p, true
}

func tail(s []Point) (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

func clone(s []Point) []Point {
	out := make([]Point, len(s))
	copy(out, s)
	return out
}
