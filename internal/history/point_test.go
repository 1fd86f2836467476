// ABOUTME: Tests for Point formatting, cell rounding, and redo policy parsing
// ABOUTME: Table-driven; no history state involved

package history

import "testing"

func TestPoint_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Point
		want string
	}{
		{Point{10, 20}, "(10, 20)"},
		{Point{0, 0}, "(0, 0)"},
		{Point{-1.5, 2.25}, "(-1.5, 2.25)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPoint_Cell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p        Point
		col, row int
	}{
		{Point{3, 4}, 3, 4},
		{Point{3.9, 4.1}, 3, 4},
		{Point{-0.5, -2}, -1, -2},
	}
	for _, tt := range tests {
		col, row := tt.p.Cell()
		if col != tt.col || row != tt.row {
			t.Errorf("%v.Cell() = %d, %d; want %d, %d", tt.p, col, row, tt.col, tt.row)
		}
	}
}

func TestParseRedoPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    RedoPolicy
		wantErr bool
	}{
		{"", RedoPreserve, false},
		{"preserve", RedoPreserve, false},
		{"discard", RedoDiscardOnRecord, false},
		{"clear", RedoPreserve, true},
	}
	for _, tt := range tests {
		got, err := ParseRedoPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRedoPolicy(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRedoPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	if PointAdded.String() != "added" || PointRemoved.String() != "removed" || Cleared.String() != "cleared" {
		t.Error("unexpected EventKind names")
	}
}
