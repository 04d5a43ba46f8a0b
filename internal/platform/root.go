package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ConfigPattern matches the file names accepted as a scribe config.
const ConfigPattern = "scribe.{yaml,yml}"

// ErrConfigNotFound is returned by FindConfig when no directory up to the filesystem root holds a config file.
var ErrConfigNotFound = errors.New("config not found")

// FindConfig recursively looks upwards from startDir for a file matching ConfigPattern.
// If found, returns its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if path, ok := matchConfig(dir); ok {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrConfigNotFound
}

func matchConfig(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(ConfigPattern, e.Name()); ok {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}
