// ABOUTME: Event kinds published by History and the redo policy that governs Record
// ABOUTME: ParseRedoPolicy maps config/flag strings onto RedoPolicy values

package history

import "fmt"

// EventKind identifies a history notification.
type EventKind int

const (
	// PointAdded is published by Record and Redo; Point is the new tail.
	PointAdded EventKind = iota
	// PointRemoved is published by Undo; the newest drawn marker goes away.
	PointRemoved
	// Cleared is published by Reset; observers should re-read Snapshot.
	Cleared
)

// String returns the human-readable name of the kind.
func (k EventKind) String() string {
	switch k {
	case PointAdded:
		return "added"
	case PointRemoved:
		return "removed"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single history notification.
type Event struct {
	Kind  EventKind
	Point Point
}

// RedoPolicy decides whether a new placement keeps the undone sequence.
type RedoPolicy int

const (
	// RedoPreserve keeps undone points redoable after Record.
	RedoPreserve RedoPolicy = iota
	// RedoDiscardOnRecord drops undone points on Record (the usual editor rule).
	RedoDiscardOnRecord
)

// String returns the config spelling of the policy.
func (p RedoPolicy) String() string {
	switch p {
	case RedoPreserve:
		return "preserve"
	case RedoDiscardOnRecord:
		return "discard"
	default:
		return fmt.Sprintf("RedoPolicy(%d)", int(p))
	}
}

// ParseRedoPolicy parses "preserve" or "discard". Empty means preserve.
func ParseRedoPolicy(s string) (RedoPolicy, error) {
	switch s {
	case "", "preserve":
		return RedoPreserve, nil
	case "discard":
		return RedoDiscardOnRecord, nil
	default:
		return RedoPreserve, fmt.Errorf("unknown redo policy %q (want preserve or discard)", s)
	}
}
