// ABOUTME: Tests for settings loading, merging, env expansion, and keybinding overrides
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Theme: "dark", Marker: "x", ExportFormats: []string{"json"}}
	project := &Settings{Theme: "light", RedoPolicy: "discard"}

	result := merge(global, project)

	if result.Theme != "light" {
		t.Errorf("Theme = %q, want %q", result.Theme, "light")
	}
	if result.Marker != "x" {
		t.Errorf("Marker = %q, want %q", result.Marker, "x")
	}
	if result.RedoPolicy != "discard" {
		t.Errorf("RedoPolicy = %q, want %q", result.RedoPolicy, "discard")
	}
	if !slices.Equal(result.ExportFormats, []string{"json"}) {
		t.Errorf("ExportFormats = %v, want [json]", result.ExportFormats)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_KeysMergePerAction(t *testing.T) {
	t.Parallel()

	global := &Settings{Keys: map[string][]string{"undo": {"z"}, "redo": {"y"}}}
	project := &Settings{Keys: map[string][]string{"redo": {"Y"}}}

	result := merge(global, project)

	if !slices.Equal(result.Keys["undo"], []string{"z"}) {
		t.Errorf("undo keys = %v, want [z]", result.Keys["undo"])
	}
	if !slices.Equal(result.Keys["redo"], []string{"Y"}) {
		t.Errorf("redo keys = %v, want [Y]", result.Keys["redo"])
	}
	if !slices.Equal(global.Keys["redo"], []string{"y"}) {
		t.Error("merge mutated the global keys map")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.json")
	if !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil default settings")
	}
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"theme":"dark","redo_policy":"discard","export_formats":["pdf","yaml"]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != "dark" || s.RedoPolicy != "discard" {
		t.Errorf("got %+v", s)
	}
	if !slices.Equal(s.ExportFormats, []string{"pdf", "yaml"}) {
		t.Errorf("ExportFormats = %v", s.ExportFormats)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "theme: light\nmarker: \"+\"\nkeys:\n  undo: [z, ctrl+z]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != "light" || s.Marker != "+" {
		t.Errorf("got %+v", s)
	}
	if !slices.Equal(s.Keys["undo"], []string{"z", "ctrl+z"}) {
		t.Errorf("Keys[undo] = %v", s.Keys["undo"])
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFirst_PrefersJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"theme":"json"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFirst(configFiles(dir))
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != "json" {
		t.Errorf("Theme = %q, want json", s.Theme)
	}
}

func TestLoadFirst_NoneExist(t *testing.T) {
	t.Parallel()

	s, err := loadFirst(configFiles(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.Theme != "" {
		t.Errorf("expected empty settings, got %+v", s)
	}
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	s := &Settings{}
	s.Resolve()

	if s.Theme != DefaultTheme || s.Marker != DefaultMarker {
		t.Errorf("got theme %q marker %q", s.Theme, s.Marker)
	}
	if !slices.Equal(s.ExportFormats, DefaultExportFormats) {
		t.Errorf("ExportFormats = %v", s.ExportFormats)
	}
	if s.ExportDir != "." || s.LogFile == "" {
		t.Errorf("ExportDir = %q LogFile = %q", s.ExportDir, s.LogFile)
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("MARKPAD_TEST_DIR", "/tmp/marks")

	s := &Settings{ExportDir: "${MARKPAD_TEST_DIR}/out", LogFile: "${MARKPAD_UNSET_VAR}log"}
	ResolveEnvVars(s)

	if s.ExportDir != "/tmp/marks/out" {
		t.Errorf("ExportDir = %q", s.ExportDir)
	}
	if s.LogFile != "log" {
		t.Errorf("LogFile = %q", s.LogFile)
	}
}

func TestKeybindings_Defaults(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	for _, action := range AllActions {
		if len(kb.GetBindings(action)) == 0 {
			t.Errorf("action %q has no default binding", action)
		}
	}
	if !slices.Contains(kb.GetBindings(ActionUndo), "ctrl+z") {
		t.Error("undo should default to ctrl+z")
	}
}

func TestKeybindingsFromSettings(t *testing.T) {
	t.Parallel()

	s := &Settings{Keys: map[string][]string{
		"undo":    {"z"},
		"zoom":    {"+"},
		"explode": {"!"},
	}}

	kb, unknown := KeybindingsFromSettings(s)

	if !slices.Equal(kb.GetBindings(ActionUndo), []string{"z"}) {
		t.Errorf("undo = %v, want [z]", kb.GetBindings(ActionUndo))
	}
	if !slices.Equal(kb.GetBindings(ActionRedo), []string{"r", "ctrl+y"}) {
		t.Errorf("redo = %v, want defaults", kb.GetBindings(ActionRedo))
	}
	if !slices.Equal(unknown, []string{"explode", "zoom"}) {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestKeybindings_Clone(t *testing.T) {
	t.Parallel()

	kb := NewKeybindings()
	c := kb.Clone()
	c.Bindings[ActionUndo][0] = "X"

	if kb.Bindings[ActionUndo][0] != "u" {
		t.Error("Clone shares backing arrays")
	}
}

func TestGetBindings_Nil(t *testing.T) {
	t.Parallel()

	var kb *Keybindings
	if kb.GetBindings(ActionUndo) != nil {
		t.Error("nil Keybindings should return nil")
	}
}
