// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"maps"
	"slices"
)

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary: NewColor("\x1b[97m"),
			Muted:   NewColor("\x1b[38;5;244m"),
			Accent:  NewColor("\x1b[38;5;214m"),
			Title:   NewColor("\x1b[1m\x1b[97m"),

			Border:       NewColor("\x1b[38;5;240m"),
			Marker:       NewColor("\x1b[38;5;117m"),
			MarkerLatest: NewColor("\x1b[38;5;214m"),

			ButtonEnabled:  NewColor("\x1b[1m\x1b[38;5;117m"),
			ButtonDisabled: NewColor("\x1b[38;5;240m"),
			Selection:      NewColor("\x1b[48;5;236m"),

			StatusOK:    NewColor("\x1b[38;5;114m"),
			StatusError: NewColor("\x1b[38;5;203m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary: NewColor("\x1b[30m"),
			Muted:   NewColor("\x1b[38;5;245m"),
			Accent:  NewColor("\x1b[38;5;166m"),
			Title:   NewColor("\x1b[1m\x1b[30m"),

			Border:       NewColor("\x1b[38;5;249m"),
			Marker:       NewColor("\x1b[38;5;25m"),
			MarkerLatest: NewColor("\x1b[38;5;166m"),

			ButtonEnabled:  NewColor("\x1b[1m\x1b[38;5;25m"),
			ButtonDisabled: NewColor("\x1b[38;5;250m"),
			Selection:      NewColor("\x1b[48;5;254m"),

			StatusOK:    NewColor("\x1b[38;5;28m"),
			StatusError: NewColor("\x1b[38;5;160m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary: NewColor("\x1b[0m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[1m"),
			Title:   NewColor("\x1b[1m"),

			Border:       NewColor("\x1b[2m"),
			Marker:       NewColor("\x1b[0m"),
			MarkerLatest: NewColor("\x1b[1m"),

			ButtonEnabled:  NewColor("\x1b[1m"),
			ButtonDisabled: NewColor("\x1b[2m"),
			Selection:      NewColor("\x1b[7m"),

			StatusOK:    NewColor("\x1b[1m"),
			StatusError: NewColor("\x1b[1m\x1b[4m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes, sorted.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}
