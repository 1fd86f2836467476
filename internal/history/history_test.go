// ABOUTME: Tests for History transitions, no-op boundaries, notifications, and redo policy
// ABOUTME: Includes the documented click/undo/redo scenarios and a seeded random walk

package history

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func pts(ps ...Point) []Point {
	if ps == nil {
		return []Point{}
	}
	return ps
}

func assertState(t *testing.T, h *History, active, undone []Point) {
	t.Helper()
	if got := h.Snapshot(); !slices.Equal(got, active) {
		t.Errorf("active = %v, want %v", got, active)
	}
	if got := h.Undone(); !slices.Equal(got, undone) {
		t.Errorf("undone = %v, want %v", got, undone)
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	h := New()
	assertState(t, h, pts(), pts())
	if h.CanUndo() || h.CanRedo() {
		t.Error("new history should not allow undo or redo")
	}
	if h.Policy() != RedoPreserve {
		t.Errorf("Policy() = %v, want preserve", h.Policy())
	}
}

func TestRecord_AppendsToEmpty(t *testing.T) {
	t.Parallel()

	for _, p := range []Point{{0, 0}, {10, 20}, {-5, 3.5}, {1e9, -1e9}} {
		h := New()
		h.Record(p)
		assertState(t, h, pts(p), pts())
	}
}

func TestRecord_DuplicatesAreDistinctEntries(t *testing.T) {
	t.Parallel()

	h := New()
	p := Point{X: 3, Y: 4}
	h.Record(p)
	h.Record(p)

	if h.ActiveCount() != 2 {
		t.Fatalf("ActiveCount() = %d, want 2", h.ActiveCount())
	}
	h.Undo()
	assertState(t, h, pts(p), pts(p))
}

func TestUndoRedo_Inverse(t *testing.T) {
	t.Parallel()

	h := New()
	a, b, c := Point{1, 1}, Point{2, 2}, Point{3, 3}
	h.Record(a)
	h.Record(b)
	h.Undo()
	h.Record(c)

	beforeActive, beforeUndone := h.Snapshot(), h.Undone()

	if !h.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if !h.Redo() {
		t.Fatal("Redo() = false, want true")
	}
	assertState(t, h, beforeActive, beforeUndone)
}

func TestUndo_NoOpWhenEmpty(t *testing.T) {
	t.Parallel()

	h := New()
	h.Record(Point{1, 2})
	h.Undo()

	if h.Undo() {
		t.Error("Undo() on empty active = true, want false")
	}
	assertState(t, h, pts(), pts(Point{1, 2}))
}

func TestRedo_NoOpWhenEmpty(t *testing.T) {
	t.Parallel()

	h := New()
	h.Record(Point{1, 2})

	if h.Redo() {
		t.Error("Redo() on empty undone = true, want false")
	}
	assertState(t, h, pts(Point{1, 2}), pts())
}

func TestReset_ClearsBoth(t *testing.T) {
	t.Parallel()

	h := New()
	h.Record(Point{1, 1})
	h.Record(Point{2, 2})
	h.Undo()
	h.Reset()

	assertState(t, h, pts(), pts())
	if h.CanUndo() || h.CanRedo() {
		t.Error("reset history should not allow undo or redo")
	}
}

func TestRecord_PreservesUndoneByDefault(t *testing.T) {
	t.Parallel()

	h := New()
	a, b, c := Point{1, 0}, Point{2, 0}, Point{3, 0}
	h.Record(a)
	h.Record(b)
	h.Undo()
	h.Record(c)

	assertState(t, h, pts(a, c), pts(b))

	h.Redo()
	assertState(t, h, pts(a, c, b), pts())
}

func TestRecord_DiscardPolicyClearsUndone(t *testing.T) {
	t.Parallel()

	h := New(WithRedoPolicy(RedoDiscardOnRecord))
	a, b, c := Point{1, 0}, Point{2, 0}, Point{3, 0}
	h.Record(a)
	h.Record(b)
	h.Undo()
	h.Record(c)

	assertState(t, h, pts(a, c), pts())
	if h.CanRedo() {
		t.Error("CanRedo() = true after record under discard policy")
	}
}

func TestEnablement(t *testing.T) {
	t.Parallel()

	h := New()
	check := func(step string) {
		t.Helper()
		if got, want := h.CanUndo(), h.ActiveCount() > 0; got != want {
			t.Errorf("%s: CanUndo() = %v, want %v", step, got, want)
		}
		if got, want := h.CanRedo(), h.UndoneCount() > 0; got != want {
			t.Errorf("%s: CanRedo() = %v, want %v", step, got, want)
		}
	}

	check("empty")
	h.Record(Point{1, 1})
	check("record")
	h.Undo()
	check("undo")
	h.Redo()
	check("redo")
	h.Reset()
	check("reset")
}

func TestPeek(t *testing.T) {
	t.Parallel()

	h := New()
	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo() ok on empty history")
	}
	if _, ok := h.PeekRedo(); ok {
		t.Error("PeekRedo() ok on empty history")
	}

	h.Record(Point{1, 1})
	h.Record(Point{2, 2})
	h.Undo()

	if p, ok := h.PeekUndo(); !ok || p != (Point{1, 1}) {
		t.Errorf("PeekUndo() = %v, %v; want (1, 1), true", p, ok)
	}
	if p, ok := h.PeekRedo(); !ok || p != (Point{2, 2}) {
		t.Errorf("PeekRedo() = %v, %v; want (2, 2), true", p, ok)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	t.Parallel()

	h := New()
	h.Record(Point{1, 1})
	h.Record(Point{2, 2})
	h.Undo()

	snap := h.Snapshot()
	snap[0] = Point{99, 99}
	und := h.Undone()
	und[0] = Point{98, 98}

	assertState(t, h, pts(Point{1, 1}), pts(Point{2, 2}))
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	p := Point{X: 10, Y: 20}
	h := New()

	// 1. record
	h.Record(p)
	assertState(t, h, pts(p), pts())
	if !h.CanUndo() || h.CanRedo() {
		t.Errorf("after record: CanUndo=%v CanRedo=%v, want true false", h.CanUndo(), h.CanRedo())
	}

	// 2. undo
	h.Undo()
	assertState(t, h, pts(), pts(p))
	if h.CanUndo() || !h.CanRedo() {
		t.Errorf("after undo: CanUndo=%v CanRedo=%v, want false true", h.CanUndo(), h.CanRedo())
	}

	// 3. redo
	h.Redo()
	assertState(t, h, pts(p), pts())

	// 4. empty history undo then redo
	e := New()
	e.Undo()
	e.Redo()
	assertState(t, e, pts(), pts())

	// 5. record a, record b, undo, undo, redo
	a, b := Point{1, 2}, Point{3, 4}
	s := New()
	s.Record(a)
	s.Record(b)
	s.Undo()
	assertState(t, s, pts(a), pts(b))
	s.Undo()
	assertState(t, s, pts(), pts(b, a))
	s.Redo()
	assertState(t, s, pts(a), pts(b))
}

func TestSubscribe_EventsMatchTransitions(t *testing.T) {
	t.Parallel()

	h := New()
	var events []Event
	unsub := h.Subscribe(func(ev Event) { events = append(events, ev) })

	a, b := Point{1, 1}, Point{2, 2}
	h.Record(a)
	h.Record(b)
	h.Undo()
	h.Redo()
	h.Undo()
	h.Undo()
	h.Undo() // no-op, no event
	h.Redo()
	h.Reset()

	want := []Event{
		{Kind: PointAdded, Point: a},
		{Kind: PointAdded, Point: b},
		{Kind: PointRemoved, Point: b},
		{Kind: PointAdded, Point: b},
		{Kind: PointRemoved, Point: b},
		{Kind: PointRemoved, Point: a},
		{Kind: PointAdded, Point: a},
		{Kind: Cleared},
	}
	if !slices.Equal(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}

	unsub()
	h.Record(a)
	if len(events) != len(want) {
		t.Error("handler called after unsubscribe")
	}
}

func TestSubscribe_SeesPostMutationState(t *testing.T) {
	t.Parallel()

	h := New()
	var canUndo, canRedo []bool
	h.Subscribe(func(Event) {
		canUndo = append(canUndo, h.CanUndo())
		canRedo = append(canRedo, h.CanRedo())
	})

	h.Record(Point{1, 1})
	h.Undo()

	if !slices.Equal(canUndo, []bool{true, false}) {
		t.Errorf("canUndo seen by subscriber = %v, want [true false]", canUndo)
	}
	if !slices.Equal(canRedo, []bool{false, true}) {
		t.Errorf("canRedo seen by subscriber = %v, want [false true]", canRedo)
	}
}

// TestRandomWalk drives a seeded sequence of operations with unique points and
// checks ordering, exclusivity, enablement, and tail invariants after each step.
func TestRandomWalk(t *testing.T) {
	t.Parallel()

	for _, policy := range []RedoPolicy{RedoPreserve, RedoDiscardOnRecord} {
		t.Run(policy.String(), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewPCG(42, uint64(policy)))
			h := New(WithRedoPolicy(policy))
			placedAt := map[Point]int{}
			next := 0

			for step := range 2000 {
				var lastAdded, lastRemoved *Point
				switch op := rng.IntN(10); {
				case op < 4:
					p := Point{X: float64(next)}
					next++
					h.Record(p)
					placedAt[p] = step
					lastAdded = &p
				case op < 7:
					if p, ok := h.PeekUndo(); ok {
						h.Undo()
						lastRemoved = &p
					} else if h.Undo() {
						t.Fatalf("step %d: Undo() on empty active returned true", step)
					}
				case op < 9:
					if p, ok := h.PeekRedo(); ok {
						h.Redo()
						placedAt[p] = step
						lastAdded = &p
					} else if h.Redo() {
						t.Fatalf("step %d: Redo() on empty undone returned true", step)
					}
				default:
					if rng.IntN(20) == 0 {
						h.Reset()
					}
				}

				active, undone := h.Snapshot(), h.Undone()

				// Active order follows most recent placement time.
				for i := 1; i < len(active); i++ {
					if placedAt[active[i-1]] >= placedAt[active[i]] {
						t.Fatalf("step %d: active out of placement order: %v", step, active)
					}
				}

				// A unique point never appears in both sequences.
				seen := make(map[Point]bool, len(active))
				for _, p := range active {
					seen[p] = true
				}
				for _, p := range undone {
					if seen[p] {
						t.Fatalf("step %d: %v in both active and undone", step, p)
					}
				}

				if h.CanUndo() != (len(active) > 0) || h.CanRedo() != (len(undone) > 0) {
					t.Fatalf("step %d: enablement mismatch", step)
				}
				if lastAdded != nil && active[len(active)-1] != *lastAdded {
					t.Fatalf("step %d: active tail = %v, want %v", step, active[len(active)-1], *lastAdded)
				}
				if lastRemoved != nil && undone[len(undone)-1] != *lastRemoved {
					t.Fatalf("step %d: undone tail = %v, want %v", step, undone[len(undone)-1], *lastRemoved)
				}
			}
		})
	}
}
