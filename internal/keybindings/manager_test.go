// ABOUTME: Tests for key lookup, conflict detection, and help table formatting
// ABOUTME: Builds managers from default and overridden Keybindings

package keybindings

import (
	"strings"
	"testing"

	"github.com/mauromedda/markpad/internal/config"
)

func TestManager_ActionFor_Defaults(t *testing.T) {
	t.Parallel()

	m := New(nil)

	tests := []struct {
		key  string
		want config.KeyAction
	}{
		{"u", config.ActionUndo},
		{"ctrl+z", config.ActionUndo},
		{"r", config.ActionRedo},
		{"ctrl+y", config.ActionRedo},
		{"c", config.ActionReset},
		{"e", config.ActionExport},
		{"y", config.ActionCopy},
		{":", config.ActionPalette},
		{"?", config.ActionHelp},
		{"q", config.ActionQuit},
		{"x", ""},
	}
	for _, tt := range tests {
		if got := m.ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestManager_Conflicts(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Bindings[config.ActionRedo] = []string{"u"}
	m := New(kb)

	conflicts := m.Conflicts()
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one", conflicts)
	}
	if conflicts[0].Key != "u" || len(conflicts[0].Actions) != 2 {
		t.Errorf("conflict = %+v", conflicts[0])
	}
	// First action in display order wins.
	if m.ActionFor("u") != config.ActionUndo {
		t.Errorf("ActionFor(u) = %q, want undo", m.ActionFor("u"))
	}
}

func TestManager_Hint(t *testing.T) {
	t.Parallel()

	kb := config.NewKeybindings()
	kb.Bindings[config.ActionExport] = nil
	m := New(kb)

	if m.Hint(config.ActionUndo) != "u" {
		t.Errorf("Hint(undo) = %q, want u", m.Hint(config.ActionUndo))
	}
	if m.Hint(config.ActionExport) != "" {
		t.Errorf("Hint(export) = %q, want empty", m.Hint(config.ActionExport))
	}
}

func TestManager_FormatMarkdown(t *testing.T) {
	t.Parallel()

	out := New(nil).FormatMarkdown()

	if !strings.HasPrefix(out, "| Action | Keys |") {
		t.Errorf("missing table header: %q", out)
	}
	if !strings.Contains(out, "| undo | `u`, `ctrl+z` |") {
		t.Errorf("missing undo row: %q", out)
	}
}
