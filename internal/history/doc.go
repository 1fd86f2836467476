// Package history tracks marker placements with one-step undo and redo.
//
// A History holds two ordered sequences of Points:
//
//   - active: markers currently placed, oldest first
//   - undone: markers removed by Undo, oldest-removed first
//
// Record and Redo append to active, Undo moves the tail of active to the
// tail of undone, and Reset empties both. Undo and Redo at an empty
// boundary are no-ops, never errors.
//
// Observers learn about changes through Subscribe:
//
//	h := history.New()
//	unsub := h.Subscribe(func(ev history.Event) {
//		switch ev.Kind {
//		case history.PointAdded:   // draw ev.Point
//		case history.PointRemoved: // erase the newest marker
//		case history.Cleared:      // redraw from h.Snapshot()
//		}
//	})
//	defer unsub()
//
// By default Record keeps the undone sequence so earlier undos can still be
// redone after new placements. WithRedoPolicy(RedoDiscardOnRecord) selects
// the conventional rule instead.
package history
