// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() caches per active theme

package btea

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/markpad/pkg/tui/theme"
)

// ThemeStyles holds pre-built lipgloss styles for every palette role.
type ThemeStyles struct {
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Title   lipgloss.Style

	Border       lipgloss.Style
	Marker       lipgloss.Style
	MarkerLatest lipgloss.Style

	ButtonEnabled  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Selection      lipgloss.Style

	StatusOK    lipgloss.Style
	StatusError lipgloss.Style

	Bold lipgloss.Style
	Dim  lipgloss.Style
}

type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed on the theme pointer; theme.Set invalidates it.
var cachedStyles atomic.Pointer[themeStylesEntry]

// Styles returns ThemeStyles for the current theme.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t.Palette)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(p theme.Palette) ThemeStyles {
	return ThemeStyles{
		Primary: colorToStyle(p.Primary.Code()),
		Muted:   colorToStyle(p.Muted.Code()),
		Accent:  colorToStyle(p.Accent.Code()),
		Title:   colorToStyle(p.Title.Code()),

		Border:       colorToStyle(p.Border.Code()),
		Marker:       colorToStyle(p.Marker.Code()),
		MarkerLatest: colorToStyle(p.MarkerLatest.Code()),

		ButtonEnabled:  colorToStyle(p.ButtonEnabled.Code()),
		ButtonDisabled: colorToStyle(p.ButtonDisabled.Code()),
		Selection:      colorToStyle(p.Selection.Code()),

		StatusOK:    colorToStyle(p.StatusOK.Code()),
		StatusError: colorToStyle(p.StatusError.Code()),

		Bold: colorToStyle(p.Bold.Code()),
		Dim:  colorToStyle(p.Dim.Code()),
	}
}

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]*)m`)

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
// The last color-bearing sequence wins; attribute codes accumulate.
func colorToStyle(code string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		if color, bg := sgrColor(params); color != "" {
			if bg {
				s = s.Background(lipgloss.Color(color))
			} else {
				s = s.Foreground(lipgloss.Color(color))
			}
			continue
		}
		for _, p := range params {
			switch p {
			case "1":
				s = s.Bold(true)
			case "2":
				s = s.Faint(true)
			case "3":
				s = s.Italic(true)
			case "4":
				s = s.Underline(true)
			case "7":
				s = s.Reverse(true)
			}
		}
	}
	return s
}

// sgrColor interprets an SGR parameter list. It returns a lipgloss
// color ("" for attribute-only params) and whether it targets the background.
func sgrColor(params []string) (color string, bg bool) {
	// 256-color: 38;5;N (fg) or 48;5;N (bg)
	if len(params) >= 3 && (params[0] == "38" || params[0] == "48") && params[1] == "5" {
		return params[2], params[0] == "48"
	}
	if len(params) != 1 {
		return "", false
	}
	n, err := strconv.Atoi(params[0])
	if err != nil {
		return "", false
	}
	switch {
	case n >= 30 && n <= 37:
		return strconv.Itoa(n - 30), false
	case n >= 40 && n <= 47:
		return strconv.Itoa(n - 40), true
	case n >= 90 && n <= 97:
		return strconv.Itoa(n - 90 + 8), false
	case n >= 100 && n <= 107:
		return strconv.Itoa(n - 100 + 8), true
	default:
		return "", false
	}
}
