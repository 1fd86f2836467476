// ABOUTME: Settings loading with global + project config merge
// ABOUTME: Reads config.json or config.yaml (yaml.v3); project values override global ones

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Resolve when a field is left unset.
const (
	DefaultMarker = "●"
	DefaultTheme  = "default"
)

// DefaultExportFormats lists the formats written by the export action.
var DefaultExportFormats = []string{"json", "png"}

// Settings holds the merged configuration.
type Settings struct {
	Theme         string              `json:"theme,omitempty" yaml:"theme,omitempty"`
	Marker        string              `json:"marker,omitempty" yaml:"marker,omitempty"`
	RedoPolicy    string              `json:"redo_policy,omitempty" yaml:"redo_policy,omitempty"`
	ExportDir     string              `json:"export_dir,omitempty" yaml:"export_dir,omitempty"`
	ExportFormats []string            `json:"export_formats,omitempty" yaml:"export_formats,omitempty"`
	LogLevel      string              `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFile       string              `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Keys          map[string][]string `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. Missing files are not errors.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFirst(GlobalConfigFiles())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFirst(ProjectConfigFiles(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// Resolve fills defaults for unset fields.
func (s *Settings) Resolve() {
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Marker == "" {
		s.Marker = DefaultMarker
	}
	if len(s.ExportFormats) == 0 {
		s.ExportFormats = append([]string(nil), DefaultExportFormats...)
	}
	if s.ExportDir == "" {
		s.ExportDir = "."
	}
	if s.LogFile == "" {
		s.LogFile = LogFile()
	}
}

// loadFirst loads the first existing file among paths.
func loadFirst(paths []string) (*Settings, error) {
	for _, p := range paths {
		s, err := loadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return &Settings{}, nil
}

// loadFile reads Settings from a JSON or YAML file, chosen by extension.
// Returns zero Settings and the os error if the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; key bindings merge per action.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Marker != "" {
		result.Marker = project.Marker
	}
	if project.RedoPolicy != "" {
		result.RedoPolicy = project.RedoPolicy
	}
	if project.ExportDir != "" {
		result.ExportDir = project.ExportDir
	}
	if len(project.ExportFormats) > 0 {
		result.ExportFormats = append([]string(nil), project.ExportFormats...)
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}

	if len(project.Keys) > 0 {
		keys := make(map[string][]string, len(global.Keys)+len(project.Keys))
		for k, v := range global.Keys {
			keys[k] = v
		}
		for k, v := range project.Keys {
			keys[k] = v
		}
		result.Keys = keys
	}

	return &result
}
