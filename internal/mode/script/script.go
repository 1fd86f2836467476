// ABOUTME: Headless script mode: applies parsed commands to a fresh history
// ABOUTME: Reports the final state as text, JSON, or a stream of JSON events

package script

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
	pilog "github.com/mauromedda/markpad/internal/log"
)

// Config configures a script run.
type Config struct {
	Format     string // "text" (default), "json", "stream-json"
	Trace      bool   // text format: report every transition as it happens
	RedoPolicy history.RedoPolicy

	Session       string
	ExportDir     string          // default "."
	ExportFormats []export.Format // used by bare "export" lines

	// Now stamps export documents; nil means time.Now.
	Now func() time.Time
}

// Result is the final state of a run.
type Result struct {
	Active  []history.Point `json:"active"`
	Undone  []history.Point `json:"undone"`
	CanUndo bool            `json:"can_undo"`
	CanRedo bool            `json:"can_redo"`
	Exports []string        `json:"exports,omitempty"`
}

// Run parses the whole script from in, then applies it to a new history and
// writes the outcome to out. A malformed line aborts the run before any
// command is applied. Cancellation is checked between commands.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	cmds, err := Parse(in)
	if err != nil {
		return err
	}
	_, err = Apply(ctx, cfg, cmds, out)
	return err
}

// Apply runs cmds against a new history and returns the final state.
func Apply(ctx context.Context, cfg Config, cmds []Command, out io.Writer) (*Result, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	f, err := newFormatter(cfg.Format, cfg.Trace, out)
	if err != nil {
		return nil, err
	}

	h := history.New(history.WithRedoPolicy(cfg.RedoPolicy))
	line := 0
	unsubscribe := h.Subscribe(func(e history.Event) { f.event(line, e) })
	defer unsubscribe()

	res := &Result{}
	f.start()
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line = cmd.Line

		switch cmd.Op {
		case OpRecord:
			h.Record(cmd.Point)
		case OpUndo:
			if !h.Undo() {
				f.noop(cmd)
			}
		case OpRedo:
			if !h.Redo() {
				f.noop(cmd)
			}
		case OpReset:
			h.Reset()
		case OpExport:
			paths, err := exportSnapshot(ctx, cfg, cmd, h)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", cmd.Line, err)
			}
			res.Exports = append(res.Exports, paths...)
			f.exported(cmd.Line, paths)
		}
	}

	res.Active = nonNil(h.Snapshot())
	res.Undone = nonNil(h.Undone())
	res.CanUndo = h.CanUndo()
	res.CanRedo = h.CanRedo()
	pilog.Debug("script: %d commands, %d active, %d undone", len(cmds), len(res.Active), len(res.Undone))

	if err := f.end(res); err != nil {
		return nil, fmt.Errorf("writing result: %w", err)
	}
	return res, nil
}

func exportSnapshot(ctx context.Context, cfg Config, cmd Command, h *history.History) ([]string, error) {
	formats := cmd.Formats
	if len(formats) == 0 {
		formats = cfg.ExportFormats
	}
	if len(formats) == 0 {
		formats = []export.Format{export.FormatJSON}
	}
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	dir := cfg.ExportDir
	if dir == "" {
		dir = "."
	}

	doc := export.Document{
		Session:   cfg.Session,
		CreatedAt: now(),
		Points:    h.Snapshot(),
	}
	base := fmt.Sprintf("%s-l%d", export.BaseName(doc), cmd.Line)
	return export.WriteFiles(ctx, dir, base, formats, doc)
}

func nonNil(pts []history.Point) []history.Point {
	if pts == nil {
		return []history.Point{}
	}
	return pts
}
