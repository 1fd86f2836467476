// ABOUTME: Output formatters for script mode: text, json, and stream-json
// ABOUTME: stream-json writes one JSON object per transition plus a final state line

package script

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/markpad/internal/history"
)

// formatter abstracts output formatting.
type formatter interface {
	start()
	event(line int, e history.Event)
	noop(cmd Command)
	exported(line int, paths []string)
	end(res *Result) error
}

func newFormatter(format string, trace bool, w io.Writer) (formatter, error) {
	switch format {
	case "text":
		return &textFormatter{w: w, trace: trace}, nil
	case "json":
		return &jsonFormatter{w: w}, nil
	case "stream-json":
		return &streamJSONFormatter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textFormatter writes a short report, optionally tracing each transition.
type textFormatter struct {
	w     io.Writer
	trace bool
}

func (f *textFormatter) start() {}

func (f *textFormatter) event(line int, e history.Event) {
	if !f.trace {
		return
	}
	switch e.Kind {
	case history.Cleared:
		fmt.Fprintf(f.w, "%d: cleared\n", line)
	default:
		fmt.Fprintf(f.w, "%d: %s %s\n", line, e.Kind, e.Point)
	}
}

func (f *textFormatter) noop(cmd Command) {
	if f.trace {
		fmt.Fprintf(f.w, "%d: %s ignored\n", cmd.Line, cmd.Op)
	}
}

func (f *textFormatter) exported(line int, paths []string) {
	if f.trace {
		fmt.Fprintf(f.w, "%d: exported %s\n", line, strings.Join(paths, ", "))
	}
}

func (f *textFormatter) end(res *Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "active:%s\n", joinPoints(res.Active))
	fmt.Fprintf(&b, "undone:%s\n", joinPoints(res.Undone))
	fmt.Fprintf(&b, "can_undo: %t\n", res.CanUndo)
	fmt.Fprintf(&b, "can_redo: %t\n", res.CanRedo)
	_, err := io.WriteString(f.w, b.String())
	return err
}

func joinPoints(pts []history.Point) string {
	var b strings.Builder
	for _, p := range pts {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// jsonFormatter writes a single JSON object at the end.
type jsonFormatter struct {
	w io.Writer
}

func (f *jsonFormatter) start()                   {}
func (f *jsonFormatter) event(int, history.Event) {}
func (f *jsonFormatter) noop(Command)             {}
func (f *jsonFormatter) exported(int, []string)   {}
func (f *jsonFormatter) end(res *Result) error {
	return json.NewEncoder(f.w).Encode(res)
}

// streamJSONFormatter writes one JSON line per event.
type streamJSONFormatter struct {
	enc *json.Encoder
}

type streamEvent struct {
	Type  string         `json:"type"`
	Line  int            `json:"line,omitempty"`
	Point *history.Point `json:"point,omitempty"`
	Op    string         `json:"op,omitempty"`
	Paths []string       `json:"paths,omitempty"`
	State *Result        `json:"state,omitempty"`
}

func (f *streamJSONFormatter) start() {
	_ = f.enc.Encode(streamEvent{Type: "start"})
}

func (f *streamJSONFormatter) event(line int, e history.Event) {
	evt := streamEvent{Type: e.Kind.String(), Line: line}
	if e.Kind != history.Cleared {
		p := e.Point
		evt.Point = &p
	}
	_ = f.enc.Encode(evt)
}

func (f *streamJSONFormatter) noop(cmd Command) {
	_ = f.enc.Encode(streamEvent{Type: "noop", Line: cmd.Line, Op: cmd.Op.String()})
}

func (f *streamJSONFormatter) exported(line int, paths []string) {
	_ = f.enc.Encode(streamEvent{Type: "exported", Line: line, Paths: paths})
}

func (f *streamJSONFormatter) end(res *Result) error {
	return f.enc.Encode(streamEvent{Type: "end", State: res})
}
