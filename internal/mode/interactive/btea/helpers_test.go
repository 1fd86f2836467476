// ABOUTME: Shared helpers for btea tests
// ABOUTME: Builds AppModels with temp export dirs and synthetic mouse input

package btea

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
)

func testDeps(t *testing.T) AppDeps {
	t.Helper()
	return AppDeps{
		History:       history.New(),
		Marker:        "x",
		ExportDir:     t.TempDir(),
		ExportFormats: []export.Format{export.FormatJSON},
		Session:       "0123456789abcdef",
		Version:       "test",
		Now:           func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
	}
}

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func click(m AppModel, x, y int) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return updated.(AppModel), cmd
}

func press(m AppModel, key string) (AppModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+z":
		msg = tea.KeyMsg{Type: tea.KeyCtrlZ}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}
