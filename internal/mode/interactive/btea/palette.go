// ABOUTME: CmdPaletteModel is a Bubble Tea overlay listing every action with its keys
// ABOUTME: Typing ranks entries with fuzzy matching; enter selects, esc dismisses

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/markpad/internal/config"
	"github.com/mauromedda/markpad/internal/keybindings"
	"github.com/mauromedda/markpad/pkg/tui/fuzzy"
	"github.com/mauromedda/markpad/pkg/tui/width"
)

const maxCmdPaletteVisible = 10

// CommandEntry describes a single action in the palette.
type CommandEntry struct {
	Action config.KeyAction
	Title  string
	Keys   string
}

// PaletteEntries lists every action in display order, titled for the palette.
func PaletteEntries(keys *keybindings.Manager) []CommandEntry {
	title := cases.Title(language.English)
	entries := make([]CommandEntry, 0, len(config.AllActions))
	for _, a := range config.AllActions {
		entries = append(entries, CommandEntry{
			Action: a,
			Title:  title.String(string(a)),
			Keys:   strings.Join(keys.KeysFor(a), ", "),
		})
	}
	return entries
}

// entrySource adapts entries to fuzzy.Source, matching on the title.
type entrySource []CommandEntry

func (s entrySource) String(i int) string { return s[i].Title }
func (s entrySource) Len() int            { return len(s) }

// CmdPaletteModel is a filterable overlay listing available actions.
// Implements tea.Model with value semantics.
type CmdPaletteModel struct {
	commands []CommandEntry
	visible  []CommandEntry
	selected int
	filter   string
	width    int
}

// NewCmdPaletteModel creates a palette pre-populated with the given entries.
func NewCmdPaletteModel(cmds []CommandEntry) CmdPaletteModel {
	m := CmdPaletteModel{commands: cmds}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed at startup.
func (m CmdPaletteModel) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m CmdPaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes:
			if len(msg.Runes) > 0 {
				m = m.SetFilter(m.filter + string(msg.Runes))
			}
		case tea.KeyBackspace:
			if f := []rune(m.filter); len(f) > 0 {
				m = m.SetFilter(string(f[:len(f)-1]))
			}
		case tea.KeyUp:
			m.moveUp()
		case tea.KeyDown, tea.KeyTab:
			m.moveDown()
		case tea.KeyEnter:
			if e, ok := m.Selected(); ok {
				return m, func() tea.Msg { return CmdPaletteSelectMsg{Action: e.Action} }
			}
		case tea.KeyEsc:
			return m, func() tea.Msg { return CmdPaletteDismissMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the filter line and the entries capped at maxCmdPaletteVisible.
func (m CmdPaletteModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Accent.Render(": " + m.filter))

	total := len(m.visible)
	if total == 0 {
		b.WriteString("\n" + s.Dim.Render("  no matching action"))
		return b.String()
	}

	start, end := 0, total
	if total > maxCmdPaletteVisible {
		start = max(m.selected-maxCmdPaletteVisible/2, 0)
		end = start + maxCmdPaletteVisible
		if end > total {
			end = total
			start = end - maxCmdPaletteVisible
		}
	}

	for i := start; i < end; i++ {
		e := m.visible[i]
		line := fmt.Sprintf("  %-10s %s", e.Title, e.Keys)
		if m.width > 0 {
			line = width.TruncateToWidth(line, m.width)
		}
		if i == m.selected {
			line = s.Bold.Render(s.Selection.Render(line))
		} else {
			line = s.Dim.Render(line)
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

// SetFilter updates the filter string and resets selection. Returns a new model.
func (m CmdPaletteModel) SetFilter(f string) CmdPaletteModel {
	m.filter = f
	m.selected = 0
	m.applyFilter()
	return m
}

// Selected returns the highlighted entry.
func (m CmdPaletteModel) Selected() (CommandEntry, bool) {
	if len(m.visible) == 0 {
		return CommandEntry{}, false
	}
	return m.visible[m.selected], true
}

func (m *CmdPaletteModel) moveDown() {
	if len(m.visible) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.visible)
}

func (m *CmdPaletteModel) moveUp() {
	if len(m.visible) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.visible)) % len(m.visible)
}

func (m *CmdPaletteModel) applyFilter() {
	matches := fuzzy.FindFrom(m.filter, entrySource(m.commands))
	m.visible = make([]CommandEntry, len(matches))
	for i, match := range matches {
		m.visible[i] = m.commands[match.Index]
	}
}
