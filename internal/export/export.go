// ABOUTME: One-way export of placed markers to JSON, YAML, HTML, PDF and PNG
// ABOUTME: WriteFiles renders every requested format concurrently with errgroup

package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/markpad/internal/history"
)

// ErrUnknownFormat is returned for format names that have no writer.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export encoding; the value doubles as the file extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatHTML, FormatPDF, FormatPNG}
}

// ParseFormat converts a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseFormats converts a list of names, dropping duplicates.
func ParseFormats(names []string) ([]Format, error) {
	out := make([]Format, 0, len(names))
	seen := make(map[Format]bool, len(names))
	for _, n := range names {
		f, err := ParseFormat(n)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// Document is a point-in-time copy of the visible markers.
// Width and Height are the surface size in cells; zero means "fit the points".
type Document struct {
	Session   string          `json:"session" yaml:"session"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Width     int             `json:"width" yaml:"width"`
	Height    int             `json:"height" yaml:"height"`
	Points    []history.Point `json:"points" yaml:"points"`
}

// BaseName returns the file name stem used for doc's exports.
func BaseName(doc Document) string {
	id := doc.Session
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return "markpad-" + doc.CreatedAt.Format("20060102-150405")
	}
	return "markpad-" + id + "-" + doc.CreatedAt.Format("20060102-150405")
}

// Drawn exports never grow past this many cells in either direction.
const (
	maxCols = 400
	maxRows = 200
)

// bounds returns the canvas size in cells, grown to cover every
// non-negative point and clamped to [1, maxCols] x [1, maxRows].
func (d Document) bounds() (w, h int) {
	w, h = d.Width, d.Height
	for _, p := range d.Points {
		col, row := p.Cell()
		if col >= w {
			w = col + 1
		}
		if row >= h {
			h = row + 1
		}
	}
	return min(max(w, 1), maxCols), min(max(h, 1), maxRows)
}

// drawable reports whether p falls on the page of a w x h cell canvas.
func drawable(p history.Point, w, h int) bool {
	col, row := p.Cell()
	return col >= 0 && row >= 0 && col < w && row < h
}

// Write encodes doc to w in format f.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatHTML:
		return writeHTML(w, doc)
	case FormatPDF:
		return writePDF(w, doc)
	case FormatPNG:
		return writePNG(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteFiles writes doc once per format into dir as base.<format>.
// Formats are rendered concurrently; the returned paths follow the order
// of formats. Nothing is written if any format is unknown.
func WriteFiles(ctx context.Context, dir, base string, formats []Format, doc Document) ([]string, error) {
	for _, f := range formats {
		if _, err := ParseFormat(string(f)); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		path := filepath.Join(dir, base+"."+string(f))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(path, f, doc)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, f Format, doc Document) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := Write(out, f, doc); err != nil {
		return fmt.Errorf("writing %s: %w", f, err)
	}
	return nil
}
