// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: The history is created by the caller so script and TUI share construction

package btea

import (
	"context"
	"time"

	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/internal/keybindings"
)

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	History *history.History
	Keys    *keybindings.Manager

	Marker        string
	ExportDir     string
	ExportFormats []export.Format

	Session string
	Version string

	// Now stamps export documents; nil means time.Now.
	Now func() time.Time

	// Copy writes text to the system clipboard; nil means clipboard.Write.
	Copy func(ctx context.Context, text string) error
}
