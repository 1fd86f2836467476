// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// An explicit background skips the sync.Once in lipgloss that would
	// otherwise query the terminal while BubbleTea owns stdin.
	// This package must NOT import bubbletea (directly or transitively).
	lipgloss.SetHasDarkBackground(darkFromEnv(os.Getenv("COLORFGBG")))
}

// darkFromEnv reads the "fg;bg" hint some terminals export. Anything it
// cannot parse counts as dark.
func darkFromEnv(colorfgbg string) bool {
	bg := colorfgbg
	for i := len(colorfgbg) - 1; i >= 0; i-- {
		if colorfgbg[i] == ';' {
			bg = colorfgbg[i+1:]
			break
		}
	}
	switch bg {
	case "7", "15":
		return false
	default:
		return true
	}
}
