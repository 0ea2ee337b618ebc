package controller

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/lintel/internal/model"
)

// WorkingDir returns the process working directory, or "" when it cannot be
// determined.
func WorkingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	return dir
}

// RelativeDiagnostics returns d with every absolute filename below base
// shown relative to base. Other filenames are kept as they are.
func RelativeDiagnostics(base string, d m.Diagnostics) m.Diagnostics {
	messages := slices.Clone(d.Messages)
	for i := range messages {
		messages[i].Filename = relativePath(base, messages[i].Filename)
	}

	return m.Diagnostics{Messages: messages, Fixed: d.Fixed}
}

// RelativeFiles is RelativeDiagnostics for a list of paths.
func RelativeFiles(base string, files []m.Path) []m.Path {
	if files == nil {
		return nil
	}

	out := make([]m.Path, len(files))
	for i, file := range files {
		out[i] = m.Path(relativePath(base, string(file)))
	}

	return out
}

func relativePath(base, path string) string {
	if base == "" || !filepath.IsAbs(path) {
		return path
	}

	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}
