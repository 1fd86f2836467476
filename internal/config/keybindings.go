// ABOUTME: Key actions, default bindings, and overrides from the settings "keys" map
// ABOUTME: Key strings use bubbletea's KeyMsg.String() spelling ("ctrl+z", "u", "?")

package config

import (
	"maps"
	"slices"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionUndo    KeyAction = "undo"
	ActionRedo    KeyAction = "redo"
	ActionReset   KeyAction = "reset"
	ActionExport  KeyAction = "export"
	ActionCopy    KeyAction = "copy"
	ActionPalette KeyAction = "palette"
	ActionHelp    KeyAction = "help"
	ActionQuit    KeyAction = "quit"
)

// AllActions lists every bindable action in display order.
var AllActions = []KeyAction{
	ActionUndo,
	ActionRedo,
	ActionReset,
	ActionExport,
	ActionCopy,
	ActionPalette,
	ActionHelp,
	ActionQuit,
}

// Keybindings maps actions to the keys that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates a Keybindings with default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string, len(AllActions)),
	}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionUndo] = []string{"u", "ctrl+z"}
	kb.Bindings[ActionRedo] = []string{"r", "ctrl+y"}
	kb.Bindings[ActionReset] = []string{"c"}
	kb.Bindings[ActionExport] = []string{"e"}
	kb.Bindings[ActionCopy] = []string{"y"}
	kb.Bindings[ActionPalette] = []string{":"}
	kb.Bindings[ActionHelp] = []string{"?"}
	kb.Bindings[ActionQuit] = []string{"q", "ctrl+c"}
}

// KeybindingsFromSettings applies the settings "keys" overrides to the
// defaults. Unknown action names are returned so the caller can warn.
func KeybindingsFromSettings(s *Settings) (*Keybindings, []string) {
	kb := NewKeybindings()
	if s == nil {
		return kb, nil
	}
	var unknown []string
	for name, keys := range s.Keys {
		action := KeyAction(name)
		if _, ok := kb.Bindings[action]; !ok {
			unknown = append(unknown, name)
			continue
		}
		kb.Bindings[action] = slices.Clone(keys)
	}
	slices.Sort(unknown)
	return kb, unknown
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Clone returns a deep copy.
func (kb *Keybindings) Clone() *Keybindings {
	c := &Keybindings{Bindings: make(map[KeyAction][]string, len(kb.Bindings))}
	for _, action := range slices.Sorted(maps.Keys(kb.Bindings)) {
		c.Bindings[action] = slices.Clone(kb.Bindings[action])
	}
	return c
}
