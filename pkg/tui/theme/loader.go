// ABOUTME: JSON theme file loading and name resolution (builtin first, then themes dir)
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Field names must match Palette; tags use snake_case.
type jsonPalette struct {
	Primary string `json:"primary"`
	Muted   string `json:"muted"`
	Accent  string `json:"accent"`
	Title   string `json:"title"`

	Border       string `json:"border"`
	Marker       string `json:"marker"`
	MarkerLatest string `json:"marker_latest"`

	ButtonEnabled  string `json:"button_enabled"`
	ButtonDisabled string `json:"button_disabled"`
	Selection      string `json:"selection"`

	StatusOK    string `json:"status_ok"`
	StatusError string `json:"status_error"`

	Bold string `json:"bold"`
	Dim  string `json:"dim"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the builtin theme called name, or loads dir/name.json.
func Resolve(name, dir string) (*Theme, error) {
	if t := Builtin(name); t != nil {
		return t, nil
	}
	t, err := LoadFile(filepath.Join(dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return t, nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(jsonVal)))
		}
	}

	return p
}
