// Package adapter contains filesystem and parser adapters for the lintel CLI.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/lintel/internal/config"
	m "github.com/mouse-blink/lintel/internal/model"
)

const goFileExt = ".go"

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It intentionally hides direct `os`
// access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover enumerates the Go files under roots and returns one entry per
	// file or discovery failure, together with the resolver built from every
	// lintel.toml met on the way.
	Discover(roots []m.Path, overrides m.Overrides, defaults *m.Settings) ([]m.DiscoveryResult, Resolver)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the contents of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover walks every root. Explicitly named files are always returned;
// walked entries are filtered by extension and by the exclude patterns of
// their nearest settings. Unreadable directories, missing roots and broken
// configuration files are reported as failed entries instead of aborting.
func (a *LocalSourceFSAdapter) Discover(roots []m.Path, overrides m.Overrides, defaults *m.Settings) ([]m.DiscoveryResult, Resolver) {
	resolver := NewScopeResolver(defaults)

	var results []m.DiscoveryResult

	seen := make(map[m.Path]struct{})
	loaded := make(map[m.Path]struct{})

	add := func(path m.Path) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		results = append(results, m.DiscoveryResult{Path: path})
	}

	for _, root := range roots {
		rootPath, err := normalizeRootPath(string(root))
		if err != nil {
			results = append(results, m.DiscoveryResult{Err: fmt.Errorf("invalid path %q: %w", root, err)})
			continue
		}

		results = append(results, a.loadAncestorConfig(m.Path(rootPath), overrides, resolver, loaded)...)

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			results = append(results, m.DiscoveryResult{Path: m.Path(rootPath), Err: err})
			continue
		}

		if !info.IsDir() {
			add(m.Path(rootPath))
			continue
		}

		_ = a.Walk(m.Path(rootPath), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				results = append(results, m.DiscoveryResult{Path: m.Path(path), Err: err})
				return nil
			}

			if info.IsDir() {
				if path != rootPath && config.Excluded(resolver.nearest(m.Path(filepath.Dir(path))), m.Path(path)) {
					return filepath.SkipDir
				}

				results = append(results, a.loadConfig(m.Path(path), overrides, resolver, loaded)...)

				return nil
			}

			if filepath.Ext(path) != goFileExt {
				return nil
			}

			if config.Excluded(resolver.nearest(m.Path(path)), m.Path(path)) {
				return nil
			}

			add(m.Path(path))

			return nil
		})
	}

	return results, resolver
}

// loadAncestorConfig registers the nearest lintel.toml above root, so a root
// nested inside a configured project picks up that project's settings.
func (a *LocalSourceFSAdapter) loadAncestorConfig(root m.Path, overrides m.Overrides, resolver *ScopeResolver, loaded map[m.Path]struct{}) []m.DiscoveryResult {
	path, ok := config.Find(root)
	if !ok {
		return nil
	}

	return a.loadConfig(m.Path(filepath.Dir(string(path))), overrides, resolver, loaded)
}

// loadConfig registers dir/lintel.toml as a settings scope when present.
func (a *LocalSourceFSAdapter) loadConfig(dir m.Path, overrides m.Overrides, resolver *ScopeResolver, loaded map[m.Path]struct{}) []m.DiscoveryResult {
	if _, done := loaded[dir]; done {
		return nil
	}

	loaded[dir] = struct{}{}

	path := m.Path(filepath.Join(string(dir), config.FileName))

	info, err := a.FileInfo(path)
	if err != nil || info.IsDir() {
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return []m.DiscoveryResult{{Err: err}}
	}

	settings, err := cfg.Apply(overrides).Settings(dir)
	if err != nil {
		return []m.DiscoveryResult{{Err: fmt.Errorf("%s: %w", path, err)}}
	}

	resolver.Add(dir, settings)

	return nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile overwrites path, preserving the permissions of the existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), content, info.Mode().Perm())
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashContent returns the SHA-256 fingerprint of content.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func normalizeRootPath(root string) (string, error) {
	rootStr := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	if strings.ContainsRune(rootStr, 0) {
		return "", errors.New("path contains NUL byte")
	}

	return filepath.Abs(rootStr)
}

// parseRootPath accepts Go-style "./..." patterns; directories are always
// walked recursively, so the suffix is only stripped.
func parseRootPath(rootStr string) string {
	if rootStr == "..." {
		return "."
	}

	return strings.TrimSuffix(rootStr, "/...")
}
