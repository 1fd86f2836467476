// ABOUTME: Custom tea.Msg types for the Bubble Tea TUI
// ABOUTME: Overlay lifecycle and asynchronous export and clipboard results

package btea

import "github.com/mauromedda/markpad/internal/config"

// DismissOverlayMsg closes whichever overlay is open.
type DismissOverlayMsg struct{}

// CmdPaletteSelectMsg is returned when the user presses enter on an action.
type CmdPaletteSelectMsg struct{ Action config.KeyAction }

// CmdPaletteDismissMsg is returned when the user presses escape in the palette.
type CmdPaletteDismissMsg struct{}

// ExportDoneMsg reports the outcome of an export command.
type ExportDoneMsg struct {
	Paths []string
	Err   error
}

// CopyDoneMsg reports the outcome of copying markers to the clipboard.
type CopyDoneMsg struct {
	Count int
	Err   error
}
