// ABOUTME: Point value type for markers placed on the surface
// ABOUTME: Surface-local coordinates; compared by value, duplicates allowed

package history

import "strconv"

// Point is a marker position in surface-local coordinates. In the terminal
// UI one unit is one cell.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) +
		", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Cell returns the point rounded down to integer cell coordinates.
func (p Point) Cell() (col, row int) {
	return floor(p.X), floor(p.Y)
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
