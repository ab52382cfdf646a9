package paths

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Tool name used for directory and file naming.
	toolName = "crawlcheck"

	// Project config file name looked up in working directories.
	configName = "crawlcheck.yml"
)

var ErrNoConfig = errors.New("no crawlcheck.yml found")

// Path to the global config file.
//
//	Linux:   $XDG_CONFIG_HOME/crawlcheck/crawlcheck.yml
//	macOS:   ~/Library/Application Support/crawlcheck/crawlcheck.yml
func GlobalConfig() string {
	return filepath.Join(xdg.ConfigHome, toolName, configName)
}

// Locates the project config file.
//
// Walks up from the working directory looking for crawlcheck.yml, so the
// tool can run from any subdirectory of a project. Falls back to the global
// config when no project file exists.
func FindConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if global := GlobalConfig(); fileExists(global) {
		return global, nil
	}

	return "", ErrNoConfig
}

// Whether the given path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
