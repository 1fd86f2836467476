// ABOUTME: ControlsModel renders the Undo/Redo/Reset/Export button row
// ABOUTME: Enablement mirrors the history after every mutation; HitTest maps a click column to an action

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/markpad/internal/config"
	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/internal/keybindings"
	"github.com/mauromedda/markpad/pkg/tui/width"
)

const buttonGap = "  "

type button struct {
	action  config.KeyAction
	label   string
	enabled bool
}

// text is the unstyled button face, e.g. "[ Undo u ]".
func (b button) text() string {
	return "[ " + b.label + " ]"
}

// ControlsModel is the clickable control surface above the canvas.
// Implements tea.Model with value semantics.
type ControlsModel struct {
	buttons []button
	width   int
}

// NewControlsModel builds the button row with key hints from keys.
func NewControlsModel(keys *keybindings.Manager) ControlsModel {
	mk := func(a config.KeyAction, name string) button {
		label := name
		if hint := keys.Hint(a); hint != "" {
			label += " " + hint
		}
		return button{action: a, label: label}
	}
	return ControlsModel{
		buttons: []button{
			mk(config.ActionUndo, "Undo"),
			mk(config.ActionRedo, "Redo"),
			mk(config.ActionReset, "Reset"),
			mk(config.ActionExport, "Export"),
		},
	}
}

// Init returns nil; no commands needed for a leaf model.
func (m ControlsModel) Init() tea.Cmd {
	return nil
}

// Update tracks the terminal width.
func (m ControlsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// Refresh re-reads button enablement from h.
func (m ControlsModel) Refresh(h *history.History) ControlsModel {
	buttons := make([]button, len(m.buttons))
	copy(buttons, m.buttons)
	for i := range buttons {
		switch buttons[i].action {
		case config.ActionUndo:
			buttons[i].enabled = h.CanUndo()
		case config.ActionRedo:
			buttons[i].enabled = h.CanRedo()
		case config.ActionReset:
			buttons[i].enabled = h.CanUndo() || h.CanRedo()
		case config.ActionExport:
			buttons[i].enabled = h.CanUndo()
		}
	}
	m.buttons = buttons
	return m
}

// Enabled reports whether the button for a is enabled.
func (m ControlsModel) Enabled(a config.KeyAction) bool {
	for _, b := range m.buttons {
		if b.action == a {
			return b.enabled
		}
	}
	return false
}

// HitTest returns the action of the enabled button under column x.
func (m ControlsModel) HitTest(x int) (config.KeyAction, bool) {
	col := 0
	for _, b := range m.buttons {
		w := width.VisibleWidth(b.text())
		if x >= col && x < col+w {
			return b.action, b.enabled
		}
		col += w + len(buttonGap)
	}
	return "", false
}

// View renders the buttons; disabled ones are dimmed.
func (m ControlsModel) View() string {
	s := Styles()
	parts := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		if b.enabled {
			parts[i] = s.ButtonEnabled.Render(b.text())
		} else {
			parts[i] = s.ButtonDisabled.Render(b.text())
		}
	}
	line := strings.Join(parts, buttonGap)
	if m.width > 0 {
		line = width.TruncateToWidth(line, m.width)
	}
	return line
}
