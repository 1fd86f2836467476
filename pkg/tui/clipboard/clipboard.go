// ABOUTME: System clipboard write through the first available platform tool
// ABOUTME: pbcopy on macOS; wl-copy, xclip or xsel on Linux; clip.exe on Windows

package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// tool is one clipboard command line.
type tool struct {
	name string
	args []string
}

// candidates lists the clipboard tools for goos in preference order.
func candidates(goos string) []tool {
	switch goos {
	case "darwin":
		return []tool{{name: "pbcopy"}}
	case "windows":
		return []tool{{name: "clip.exe"}}
	case "linux", "freebsd", "openbsd", "netbsd":
		return []tool{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	default:
		return nil
	}
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// find returns the first installed tool.
func find(goos string) (tool, bool) {
	for _, t := range candidates(goos) {
		if _, err := lookPath(t.name); err == nil {
			return t, true
		}
	}
	return tool{}, false
}

// Write copies text to the system clipboard.
func Write(ctx context.Context, text string) error {
	t, ok := find(runtime.GOOS)
	if !ok {
		return ErrUnavailable
	}
	c := exec.CommandContext(ctx, t.name, t.args...)
	c.Stdin = strings.NewReader(text)
	return c.Run()
}
