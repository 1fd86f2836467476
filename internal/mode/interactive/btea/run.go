// ABOUTME: Entry point for the Bubble Tea interactive TUI
// ABOUTME: Alt screen with cell-motion mouse reporting; blocks until exit

package btea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea interactive app. Blocks until the user exits
// or ctx is cancelled.
func Run(ctx context.Context, deps AppDeps) error {
	m := NewAppModel(deps)
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
