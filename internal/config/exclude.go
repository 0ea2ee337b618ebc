package config

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/lintel/internal/model"
)

// Excluded reports whether path matches any exclude or extend-exclude pattern
// of settings. Patterns are tried against the base name, the path relative to
// the settings root, and the absolute path.
func Excluded(settings *m.Settings, path m.Path) bool {
	if settings == nil {
		return false
	}

	candidates := []string{filepath.Base(string(path))}

	if rel, err := filepath.Rel(string(settings.Root), string(path)); err == nil {
		candidates = append(candidates, filepath.ToSlash(rel))
	}

	candidates = append(candidates, filepath.ToSlash(string(path)))

	for _, patterns := range [][]string{settings.Exclude, settings.ExtendExclude} {
		for _, pattern := range patterns {
			for _, candidate := range candidates {
				if ok, _ := doublestar.Match(pattern, candidate); ok {
					return true
				}
			}
		}
	}

	return false
}
