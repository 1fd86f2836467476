// ABOUTME: Root AppModel wiring the canvas, controls, footer, and overlays
// ABOUTME: Clicks become Record calls; keys and buttons drive Undo/Redo/Reset/Export/Copy

package btea

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/markpad/internal/config"
	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/internal/keybindings"
	pilog "github.com/mauromedda/markpad/internal/log"
	"github.com/mauromedda/markpad/internal/mode/script"
	"github.com/mauromedda/markpad/pkg/tui/clipboard"
	"github.com/mauromedda/markpad/pkg/tui/width"
)

// Screen rows above the canvas: title, controls, separator.
const (
	controlsRow = 1
	canvasTop   = 3
	// separator + two footer lines
	rowsBelowCanvas = 3
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// shared holds state that must survive AppModel value copies.
// Bubble Tea's Update is single-threaded, so no mutex is needed.
type shared struct {
	surface  *Surface
	markdown *MarkdownRenderer
	ctx      context.Context
	cancel   context.CancelFunc
}

// AppModel is the root Bubble Tea model for the interactive TUI.
type AppModel struct {
	sh *shared // survives value copies

	deps          AppDeps
	width, height int
	exporting     bool

	controls ControlsModel
	footer   FooterModel

	// Overlay (nil = no overlay)
	overlay tea.Model
}

// NewAppModel creates an AppModel wired with the given dependencies.
// A nil History or Keys is replaced with a fresh default.
func NewAppModel(deps AppDeps) AppModel {
	if deps.History == nil {
		deps.History = history.New()
	}
	if deps.Keys == nil {
		deps.Keys = keybindings.New(nil)
	}
	if deps.Marker == "" {
		deps.Marker = config.DefaultMarker
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.Write
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := AppModel{
		sh: &shared{
			surface:  NewSurface(deps.History),
			markdown: NewMarkdownRenderer(),
			ctx:      ctx,
			cancel:   cancel,
		},
		deps:     deps,
		width:    defaultWidth,
		height:   defaultHeight,
		controls: NewControlsModel(deps.Keys),
		footer:   NewFooterModel().WithSession(deps.Session),
	}
	return m.refresh()
}

// Init returns nil; the canvas is drawn from the initial snapshot.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// --- Layout ---
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.propagateSize(msg)
		return m, nil

	// --- Overlay lifecycle ---
	case DismissOverlayMsg, CmdPaletteDismissMsg:
		m.overlay = nil
		return m, nil

	case CmdPaletteSelectMsg:
		m.overlay = nil
		return m.runAction(msg.Action)

	// --- Export results ---
	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			pilog.Error("export failed: %v", msg.Err)
			m.footer = m.footer.WithStatus("export failed: "+msg.Err.Error(), true)
			return m, nil
		}
		names := make([]string, len(msg.Paths))
		for i, p := range msg.Paths {
			names[i] = filepath.Base(p)
		}
		pilog.Info("exported %s", strings.Join(msg.Paths, ", "))
		m.footer = m.footer.WithStatus("exported "+strings.Join(names, ", "), false)
		return m, nil

	case CopyDoneMsg:
		if msg.Err != nil {
			pilog.Warn("copy failed: %v", msg.Err)
			m.footer = m.footer.WithStatus("copy failed: "+msg.Err.Error(), true)
			return m, nil
		}
		m.footer = m.footer.WithStatus(fmt.Sprintf("copied %d markers", msg.Count), false)
		return m, nil
	}

	if m.overlay != nil {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m.updateOverlay(msg)
		}
		// Clicks do not reach the canvas while an overlay is open.
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View renders the full TUI layout.
func (m AppModel) View() string {
	s := Styles()
	sep := s.Border.Render(strings.Repeat("─", max(m.width, 0)))

	title := s.Title.Render("markpad") + "  " + s.Muted.Render(m.hint())
	if m.width > 0 {
		title = width.TruncateToWidth(title, m.width)
	}
	cw, ch := m.canvasSize()
	canvas := renderCanvas(m.sh.surface.Markers(), cw, ch, m.deps.Marker, s.Marker, s.MarkerLatest)

	main := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.controls.View(),
		sep,
		canvas,
		sep,
		m.footer.View(),
	)

	if m.overlay != nil {
		return overlayRender(main, m.overlay.View(), m.width, m.height)
	}
	return main
}

// Surface returns the canvas renderer.
func (m AppModel) Surface() *Surface {
	return m.sh.surface
}

// Close releases the surface subscription and cancels pending exports.
func (m AppModel) Close() {
	m.sh.cancel()
	m.sh.surface.Close()
}

func (m AppModel) hint() string {
	parts := []string{"click to place"}
	if k := m.deps.Keys.Hint(config.ActionPalette); k != "" {
		parts = append(parts, k+" actions")
	}
	if k := m.deps.Keys.Hint(config.ActionHelp); k != "" {
		parts = append(parts, k+" help")
	}
	if k := m.deps.Keys.Hint(config.ActionQuit); k != "" {
		parts = append(parts, k+" quit")
	}
	return strings.Join(parts, " · ")
}

// canvasSize returns the drawable area in cells.
func (m AppModel) canvasSize() (w, h int) {
	return max(m.width, 0), max(m.height-canvasTop-rowsBelowCanvas, 1)
}

// --- Input handling ---

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y == controlsRow {
		if action, ok := m.controls.HitTest(msg.X); ok {
			return m.runAction(action)
		}
		return m, nil
	}

	cw, ch := m.canvasSize()
	col, row := msg.X, msg.Y-canvasTop
	if col < 0 || row < 0 || col >= cw || row >= ch {
		return m, nil
	}
	p := history.Point{X: float64(col), Y: float64(row)}
	m.deps.History.Record(p)
	pilog.Debug("record %s", p)
	m.footer = m.footer.WithStatus("", false)
	return m.refresh(), nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.deps.Keys.ActionFor(msg.String())
	if action == "" {
		return m, nil
	}
	return m.runAction(action)
}

// runAction performs action regardless of whether it came from a key,
// a button, or the palette.
func (m AppModel) runAction(action config.KeyAction) (tea.Model, tea.Cmd) {
	h := m.deps.History
	switch action {
	case config.ActionUndo:
		if h.Undo() {
			m.footer = m.footer.WithStatus("", false)
		} else {
			m.footer = m.footer.WithStatus("nothing to undo", false)
		}
	case config.ActionRedo:
		if h.Redo() {
			m.footer = m.footer.WithStatus("", false)
		} else {
			m.footer = m.footer.WithStatus("nothing to redo", false)
		}
	case config.ActionReset:
		h.Reset()
		m.footer = m.footer.WithStatus("cleared", false)
	case config.ActionExport:
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.footer = m.footer.WithStatus("exporting…", false)
		return m.refresh(), m.exportCmd()
	case config.ActionCopy:
		pts := m.deps.History.Snapshot()
		if len(pts) == 0 {
			m.footer = m.footer.WithStatus("nothing to copy", false)
			return m, nil
		}
		text, copyFn, ctx := script.Encode(pts), m.deps.Copy, m.sh.ctx
		return m, func() tea.Msg {
			return CopyDoneMsg{Count: len(pts), Err: copyFn(ctx, text)}
		}
	case config.ActionPalette:
		p := NewCmdPaletteModel(PaletteEntries(m.deps.Keys))
		p.width = m.width
		m.overlay = p
		return m, nil
	case config.ActionHelp:
		m.overlay = NewHelpModel(m.deps.Keys, m.sh.markdown, m.width)
		return m, nil
	case config.ActionQuit:
		return m, tea.Quit
	default:
		pilog.Warn("unhandled action %q", action)
		return m, nil
	}
	return m.refresh(), nil
}

// exportCmd snapshots the active markers now and writes them off the
// event loop; the history itself is never touched by the command.
func (m AppModel) exportCmd() tea.Cmd {
	cw, ch := m.canvasSize()
	doc := export.Document{
		Session:   m.deps.Session,
		CreatedAt: m.deps.Now(),
		Width:     cw,
		Height:    ch,
		Points:    m.deps.History.Snapshot(),
	}
	formats := m.deps.ExportFormats
	if len(formats) == 0 {
		formats = []export.Format{export.FormatJSON}
	}
	dir := m.deps.ExportDir
	if dir == "" {
		dir = "."
	}
	ctx := m.sh.ctx
	return func() tea.Msg {
		paths, err := export.WriteFiles(ctx, dir, export.BaseName(doc), formats, doc)
		if err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("export: %w", err)}
		}
		return ExportDoneMsg{Paths: paths}
	}
}

// refresh re-reads button enablement and footer counts after a mutation.
func (m AppModel) refresh() AppModel {
	m.controls = m.controls.Refresh(m.deps.History)
	m.footer = m.footer.WithHistory(m.deps.History)
	return m
}

func (m AppModel) propagateSize(msg tea.WindowSizeMsg) AppModel {
	updated, _ := m.controls.Update(msg)
	m.controls = updated.(ControlsModel)
	updated, _ = m.footer.Update(msg)
	m.footer = updated.(FooterModel)
	if m.overlay != nil {
		m.overlay, _ = m.overlay.Update(msg)
	}
	return m
}

func (m AppModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}
