// ABOUTME: CLI entry point for markpad
// ABOUTME: Parses flags, loads config, dispatches to the TUI or headless script mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/markpad/internal/termfix"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/mauromedda/markpad/internal/config"
	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
	"github.com/mauromedda/markpad/internal/keybindings"
	pilog "github.com/mauromedda/markpad/internal/log"
	"github.com/mauromedda/markpad/internal/mode/interactive/btea"
	"github.com/mauromedda/markpad/internal/mode/script"
	"github.com/mauromedda/markpad/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("markpad %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	env := runEnv{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
	}
	err = run(ctx, args, env)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runEnv carries the process streams so run can be driven from tests.
type runEnv struct {
	stdin       io.Reader
	stdout      io.Writer
	interactive bool
}

// session bundles everything resolved from settings and flags.
type session struct {
	id       string
	settings *config.Settings
	policy   history.RedoPolicy
	formats  []export.Format
}

// run performs the initialization sequence and dispatches to the selected mode.
func run(ctx context.Context, args cliArgs, env runEnv) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(settings, args)
	settings.Resolve()

	lvl, err := pilog.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if args.verbose {
		lvl = pilog.LevelDebug
	}
	pilog.SetLevel(lvl)

	policy, err := history.ParseRedoPolicy(settings.RedoPolicy)
	if err != nil {
		return err
	}
	formats, err := export.ParseFormats(settings.ExportFormats)
	if err != nil {
		return fmt.Errorf("export formats: %w", err)
	}

	sess := session{
		id:       uuid.NewString(),
		settings: settings,
		policy:   policy,
		formats:  formats,
	}

	if args.script != "" || !env.interactive {
		return runScript(ctx, args, sess, env)
	}
	return runInteractive(ctx, sess)
}

// applyOverrides copies non-empty CLI flags onto the merged settings.
func applyOverrides(s *config.Settings, args cliArgs) {
	if args.theme != "" {
		s.Theme = args.theme
	}
	if args.redoPolicy != "" {
		s.RedoPolicy = args.redoPolicy
	}
	if args.exportDir != "" {
		s.ExportDir = args.exportDir
	}
	if f := args.formatList(); len(f) > 0 {
		s.ExportFormats = f
	}
}

func runScript(ctx context.Context, args cliArgs, sess session, env runEnv) error {
	in := env.stdin
	if args.script != "" && args.script != "-" {
		f, err := os.Open(args.script)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	pilog.Debug("script mode: session %s, policy %s", sess.id, sess.policy)
	return script.Run(ctx, script.Config{
		Format:        args.format,
		Trace:         args.trace,
		RedoPolicy:    sess.policy,
		Session:       sess.id,
		ExportDir:     sess.settings.ExportDir,
		ExportFormats: sess.formats,
	}, in, env.stdout)
}

func runInteractive(ctx context.Context, sess session) error {
	s := sess.settings

	// The TUI owns the terminal; logs go to a file.
	closeLog, err := pilog.OpenFile(s.LogFile)
	if err != nil {
		pilog.Warn("%v; logging to stderr", err)
	} else {
		defer closeLog()
	}
	pilog.Info("session %s started (markpad %s)", sess.id, version)

	resolveTheme(s.Theme)

	kb, unknown := config.KeybindingsFromSettings(s)
	for _, name := range unknown {
		pilog.Warn("keys: unknown action %q ignored", name)
	}
	keys := keybindings.New(kb)
	for _, c := range keys.Conflicts() {
		pilog.Warn("keys: %q is bound to %v; %s wins", c.Key, c.Actions, c.Actions[0])
	}

	return btea.Run(ctx, btea.AppDeps{
		History:       history.New(history.WithRedoPolicy(sess.policy)),
		Keys:          keys,
		Marker:        s.Marker,
		ExportDir:     s.ExportDir,
		ExportFormats: sess.formats,
		Session:       sess.id,
		Version:       version,
	})
}

// resolveTheme activates the named theme, keeping the default when it
// cannot be found.
func resolveTheme(name string) {
	th, err := theme.Resolve(name, config.ThemesDir())
	if err != nil {
		pilog.Warn("%v; using default", err)
		return
	}
	theme.Set(th)
}
