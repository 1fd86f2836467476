// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --theme, --redo-policy, --export-dir, --export-formats, --script, --format, --trace, --verbose, --version

package main

import (
	"flag"
	"io"
	"strings"

	"github.com/mauromedda/markpad/pkg/tui/theme"
)

type cliArgs struct {
	theme         string
	redoPolicy    string
	exportDir     string
	exportFormats string
	script        string
	format        string
	trace         bool
	verbose       bool
	version       bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("markpad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.theme, "theme", "", "Theme name ("+strings.Join(theme.BuiltinNames(), ", ")+", or ~/.markpad/themes/NAME.json)")
	fs.StringVar(&args.redoPolicy, "redo-policy", "", "What a new marker does to undone ones: preserve or discard")
	fs.StringVar(&args.exportDir, "export-dir", "", "Directory for exported files")
	fs.StringVar(&args.exportFormats, "export-formats", "", "Comma-separated export formats (json,yaml,html,pdf,png)")
	fs.StringVar(&args.script, "script", "", "Run a script file headless instead of the TUI (- for stdin)")
	fs.StringVar(&args.format, "format", "text", "Script output format: text, json, or stream-json")
	fs.BoolVar(&args.trace, "trace", false, "Script mode: print every transition")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 0 && args.script == "" {
		args.script = fs.Arg(0)
	}
	return args, nil
}

// formatList splits the --export-formats value, ignoring blanks.
func (a cliArgs) formatList() []string {
	var out []string
	for _, f := range strings.Split(a.exportFormats, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
