// ABOUTME: Line parser for marker scripts: record/undo/redo/reset/export with # comments
// ABOUTME: Malformed lines fail with *ParseError carrying the line number and text

package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mauromedda/markpad/internal/export"
	"github.com/mauromedda/markpad/internal/history"
)

// Op is a script operation.
type Op int

const (
	OpRecord Op = iota
	OpUndo
	OpRedo
	OpReset
	OpExport
)

func (o Op) String() string {
	switch o {
	case OpRecord:
		return "record"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	case OpReset:
		return "reset"
	case OpExport:
		return "export"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is one parsed script line.
type Command struct {
	Line  int
	Op    Op
	Point history.Point
	// Formats overrides the configured export formats when non-empty.
	Formats []export.Format
}

// ParseError reports a malformed script line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parse reads every command from r. Blank lines and comments are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		cmd, ok, err := ParseLine(n, sc.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return cmds, nil
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(n int, text string) (cmd Command, ok bool, err error) {
	body, _, _ := strings.Cut(text, "#")
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	fail := func(reason string) (Command, bool, error) {
		return Command{}, false, &ParseError{Line: n, Text: text, Reason: reason}
	}
	noArgs := func(op Op) (Command, bool, error) {
		if len(fields) != 1 {
			return fail(op.String() + " takes no arguments")
		}
		return Command{Line: n, Op: op}, true, nil
	}

	switch strings.ToLower(fields[0]) {
	case "record", "r":
		if len(fields) != 3 {
			return fail("record needs X and Y")
		}
		x, err := parseCoord(fields[1])
		if err != nil {
			return fail("bad X: " + err.Error())
		}
		y, err := parseCoord(fields[2])
		if err != nil {
			return fail("bad Y: " + err.Error())
		}
		return Command{Line: n, Op: OpRecord, Point: history.Point{X: x, Y: y}}, true, nil
	case "undo", "u":
		return noArgs(OpUndo)
	case "redo", "y":
		return noArgs(OpRedo)
	case "reset":
		return noArgs(OpReset)
	case "export":
		var names []string
		for _, f := range fields[1:] {
			names = append(names, strings.Split(f, ",")...)
		}
		names = dropEmpty(names)
		formats, err := export.ParseFormats(names)
		if err != nil {
			return fail(err.Error())
		}
		return Command{Line: n, Op: OpExport, Formats: formats}, true, nil
	default:
		return fail("unknown command")
	}
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}

// dropEmpty removes names left empty by stray commas.
func dropEmpty(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
