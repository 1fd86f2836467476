// ABOUTME: FooterModel is a Bubble Tea leaf that renders a two-line status bar
// ABOUTME: Line 1: counts, next undo/redo, redo policy; line 2: status message and session id

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/pkg/tui/width"
)

// FooterModel renders a two-line status bar at the bottom of the terminal.
type FooterModel struct {
	active    int
	undone    int
	nextUndo  *history.Point
	nextRedo  *history.Point
	policy    history.RedoPolicy
	session   string
	status    string
	statusErr bool
	width     int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages relevant to the footer.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// WithHistory returns a FooterModel reflecting h's counts and next moves.
func (m FooterModel) WithHistory(h *history.History) FooterModel {
	m.active = h.ActiveCount()
	m.undone = h.UndoneCount()
	m.policy = h.Policy()
	m.nextUndo, m.nextRedo = nil, nil
	if p, ok := h.PeekUndo(); ok {
		m.nextUndo = &p
	}
	if p, ok := h.PeekRedo(); ok {
		m.nextRedo = &p
	}
	return m
}

// WithSession returns a FooterModel with the session id set.
func (m FooterModel) WithSession(id string) FooterModel {
	m.session = id
	return m
}

// WithStatus returns a FooterModel showing a status message.
func (m FooterModel) WithStatus(text string, isErr bool) FooterModel {
	m.status = text
	m.statusErr = isErr
	return m
}

// Status returns the current status message.
func (m FooterModel) Status() string {
	return m.status
}

// View renders the two-line footer.
func (m FooterModel) View() string {
	s := Styles()

	// === Line 1: counts + next moves + policy ===
	parts := []string{
		s.Primary.Render(fmt.Sprintf("%d placed", m.active)),
		s.Muted.Render(fmt.Sprintf("%d undone", m.undone)),
	}
	if m.nextUndo != nil {
		parts = append(parts, s.Muted.Render("undo→"+m.nextUndo.String()))
	}
	if m.nextRedo != nil {
		parts = append(parts, s.Muted.Render("redo→"+m.nextRedo.String()))
	}
	parts = append(parts, s.Accent.Render("["+m.policy.String()+"]"))
	line1 := strings.Join(parts, s.Muted.Render("  "))

	// === Line 2: status + session ===
	var line2Parts []string
	if m.status != "" {
		st := s.StatusOK
		if m.statusErr {
			st = s.StatusError
		}
		line2Parts = append(line2Parts, st.Render(m.status))
	}
	if m.session != "" {
		id := m.session
		if len(id) > 8 {
			id = id[:8]
		}
		line2Parts = append(line2Parts, s.Dim.Render("session "+id))
	}
	line2 := strings.Join(line2Parts, "  ")

	if m.width > 0 {
		line1 = width.TruncateToWidth(line1, m.width)
		line2 = width.TruncateToWidth(line2, m.width)
	}

	return line1 + "\n" + line2
}
