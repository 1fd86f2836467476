// ABOUTME: HelpModel overlay: glamour-rendered usage notes and the live key binding table
// ABOUTME: Any of esc, enter, q or ? closes it

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/markpad/internal/keybindings"
)

const helpIntro = `# markpad

Click anywhere on the canvas to place a marker.
Undo removes the newest marker; redo puts back the last one you undid.

Undone markers stay redoable after a new click unless the redo policy is
` + "`discard`" + `.

## Keys

`

// HelpModel renders the help overlay.
// Implements tea.Model with value semantics.
type HelpModel struct {
	md       string
	renderer *MarkdownRenderer
	width    int
}

// NewHelpModel builds help text from the current key bindings.
func NewHelpModel(keys *keybindings.Manager, renderer *MarkdownRenderer, termWidth int) HelpModel {
	return HelpModel{
		md:       helpIntro + keys.FormatMarkdown(),
		renderer: renderer,
		width:    termWidth,
	}
}

// Init returns nil; no commands needed at startup.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update closes the overlay on any dismiss key.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Markdown returns the unrendered help text.
func (m HelpModel) Markdown() string {
	return m.md
}

// View renders the help text inside a rounded border.
func (m HelpModel) View() string {
	wrap := 60
	if m.width > 0 {
		wrap = min(wrap, m.width-6)
	}
	body := m.md
	if m.renderer != nil && wrap > 10 {
		body = m.renderer.Render(m.md, wrap)
	}
	s := Styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border.GetForeground()).
		Padding(0, 1)
	return box.Render(strings.TrimSpace(body))
}
