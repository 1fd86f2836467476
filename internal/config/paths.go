// ABOUTME: Standard filesystem paths for markpad configuration and data
// ABOUTME: Resolves ~/.markpad/ for global and .markpad/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".markpad"
	projectDirName = ".markpad"
)

// GlobalDir returns the user-global config directory (~/.markpad/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.markpad/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFiles returns candidate global config files in lookup order.
func GlobalConfigFiles() []string {
	return configFiles(GlobalDir())
}

// ProjectConfigFiles returns candidate project config files in lookup order.
func ProjectConfigFiles(projectRoot string) []string {
	return configFiles(ProjectDir(projectRoot))
}

func configFiles(dir string) []string {
	return []string{
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
	}
}

// ThemesDir returns the directory searched for custom JSON themes.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// LogFile returns the default log file used during interactive sessions.
func LogFile() string {
	return filepath.Join(GlobalDir(), "markpad.log")
}
