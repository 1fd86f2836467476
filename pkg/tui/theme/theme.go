// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color carries a raw ANSI code; Palette maps canvas and control roles to colors

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Palette holds all semantic colors for a theme.
type Palette struct {
	// Text
	Primary Color
	Muted   Color
	Accent  Color
	Title   Color

	// Canvas
	Border       Color
	Marker       Color
	MarkerLatest Color

	// Controls
	ButtonEnabled  Color
	ButtonDisabled Color
	Selection      Color

	// Status line
	StatusOK    Color
	StatusError Color

	// Formatting
	Bold Color
	Dim  Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Primary: NewColor("\x1b[0m"),
		Muted:   NewColor("\x1b[2m"),
		Accent:  NewColor("\x1b[38;5;208m"),
		Title:   NewColor("\x1b[1m"),

		Border:       NewColor("\x1b[90m"),
		Marker:       NewColor("\x1b[36m"),
		MarkerLatest: NewColor("\x1b[38;5;208m"),

		ButtonEnabled:  NewColor("\x1b[1m"),
		ButtonDisabled: NewColor("\x1b[2m"),
		Selection:      NewColor("\x1b[7m"),

		StatusOK:    NewColor("\x1b[32m"),
		StatusError: NewColor("\x1b[31m"),

		Bold: NewColor("\x1b[1m"),
		Dim:  NewColor("\x1b[2m"),
	}
}
