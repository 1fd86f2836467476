// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Detects conflicting bindings and formats the binding table for help and buttons

package keybindings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/markpad/internal/config"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "ctrl+z" -> ActionUndo
}

// New creates a Manager from a Keybindings instance. A nil argument means defaults.
func New(kb *config.Keybindings) *Manager {
	if kb == nil {
		kb = config.NewKeybindings()
	}
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to the key string, or "" if unbound.
// Key strings match tea.KeyMsg.String().
func (m *Manager) ActionFor(key string) config.KeyAction {
	return m.lookup[key]
}

// KeysFor returns the keys bound to action.
func (m *Manager) KeysFor(action config.KeyAction) []string {
	return m.bindings.GetBindings(action)
}

// Hint returns the first key bound to action, or "" when unbound.
func (m *Manager) Hint(action config.KeyAction) string {
	keys := m.KeysFor(action)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for _, action := range config.AllActions {
		for _, k := range m.bindings.GetBindings(action) {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	slices.SortFunc(conflicts, func(a, b ConflictInfo) int {
		return strings.Compare(a.Key, b.Key)
	})
	return conflicts
}

// FormatMarkdown returns the bindings as a markdown table for the help overlay.
func (m *Manager) FormatMarkdown() string {
	var b strings.Builder
	b.WriteString("| Action | Keys |\n|---|---|\n")
	for _, action := range config.AllActions {
		keys := m.bindings.GetBindings(action)
		if len(keys) == 0 {
			continue
		}
		quoted := make([]string, len(keys))
		for i, k := range keys {
			quoted[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", action, strings.Join(quoted, ", "))
	}
	return b.String()
}

// buildLookup indexes keys in AllActions order so the first action wins on conflict.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(config.AllActions)*2)
	for _, action := range config.AllActions {
		for _, k := range m.bindings.GetBindings(action) {
			if _, taken := m.lookup[k]; !taken {
				m.lookup[k] = action
			}
		}
	}
}
