// Package config loads lintel.toml files and resolves them into Settings.
package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/lintel/internal/model"
)

const (
	// FileName is the name of the per-directory configuration file.
	FileName = "lintel.toml"
	// DefaultLineLength applies when no configuration sets line-length.
	DefaultLineLength = 100
)

// ErrUnknownSelector is returned when a selector matches no registered code.
var ErrUnknownSelector = errors.New("selector matches no check code")

// DefaultExclude lists the directory and file patterns skipped during discovery.
var DefaultExclude = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"testdata",
	"vendor",
}

// Configuration mirrors the keys accepted in lintel.toml.
type Configuration struct {
	LineLength     int                 `toml:"line-length" yaml:"line-length"`
	Select         []string            `toml:"select" yaml:"select"`
	ExtendSelect   []string            `toml:"extend-select" yaml:"extend-select,omitempty"`
	Ignore         []string            `toml:"ignore" yaml:"ignore,omitempty"`
	ExtendIgnore   []string            `toml:"extend-ignore" yaml:"extend-ignore,omitempty"`
	Fixable        []string            `toml:"fixable" yaml:"fixable,omitempty"`
	Exclude        []string            `toml:"exclude" yaml:"exclude"`
	ExtendExclude  []string            `toml:"extend-exclude" yaml:"extend-exclude,omitempty"`
	ShowSource     bool                `toml:"show-source" yaml:"show-source"`
	PerFileIgnores map[string][]string `toml:"per-file-ignores" yaml:"per-file-ignores,omitempty"`
}

// Default returns the configuration used when no lintel.toml applies.
func Default() Configuration {
	return Configuration{
		LineLength: DefaultLineLength,
		Select:     []string{"E", "W"},
		Exclude:    append([]string(nil), DefaultExclude...),
	}
}

// Load parses the file at path on top of the defaults. Unknown keys are rejected.
func Load(path m.Path) (Configuration, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(string(path), &cfg)
	if err != nil {
		return Configuration{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Configuration{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Find walks up from start looking for a lintel.toml file.
func Find(start m.Path) (m.Path, bool) {
	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", false
	}

	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return m.Path(candidate), true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// Apply returns a copy of cfg with the overrides applied.
func (c Configuration) Apply(overrides m.Overrides) Configuration {
	out := c

	if overrides.Select != nil {
		out.Select = overrides.Select
	}

	out.ExtendSelect = append(append([]string(nil), c.ExtendSelect...), overrides.ExtendSelect...)

	if overrides.Ignore != nil {
		out.Ignore = overrides.Ignore
	}

	out.ExtendIgnore = append(append([]string(nil), c.ExtendIgnore...), overrides.ExtendIgnore...)

	if overrides.Fixable != nil {
		out.Fixable = overrides.Fixable
	}

	if overrides.Exclude != nil {
		out.Exclude = overrides.Exclude
	}

	out.ExtendExclude = append(append([]string(nil), c.ExtendExclude...), overrides.ExtendExclude...)

	if overrides.LineLength != nil {
		out.LineLength = *overrides.LineLength
	}

	if overrides.ShowSource != nil {
		out.ShowSource = *overrides.ShowSource
	}

	return out
}

// Settings resolves the configuration into Settings scoped to root.
func (c Configuration) Settings(root m.Path) (*m.Settings, error) {
	enabled, err := resolveCodes(append(append([]string(nil), c.Select...), c.ExtendSelect...),
		append(append([]string(nil), c.Ignore...), c.ExtendIgnore...))
	if err != nil {
		return nil, err
	}

	var fixable map[m.CheckCode]struct{}

	if c.Fixable != nil {
		fixable, err = resolveCodes(c.Fixable, nil)
		if err != nil {
			return nil, err
		}
	}

	perFile, err := resolvePerFileIgnores(c.PerFileIgnores)
	if err != nil {
		return nil, err
	}

	lineLength := c.LineLength
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}

	settings := &m.Settings{
		Root:           root,
		Enabled:        enabled,
		Fixable:        fixable,
		LineLength:     lineLength,
		Exclude:        append([]string(nil), c.Exclude...),
		ExtendExclude:  append([]string(nil), c.ExtendExclude...),
		PerFileIgnores: perFile,
		ShowSource:     c.ShowSource,
	}
	settings.Fingerprint = fingerprint(settings)

	return settings, nil
}

// resolveCodes enables every code whose most specific matching selector comes
// from selects. On equal specificity the ignore wins.
func resolveCodes(selects, ignores []string) (map[m.CheckCode]struct{}, error) {
	for _, selector := range append(append([]string(nil), selects...), ignores...) {
		if len(m.SelectCodes(selector)) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, selector)
		}
	}

	enabled := make(map[m.CheckCode]struct{})

	for _, code := range m.AllCodes() {
		selected := longestMatch(code, selects)
		ignored := longestMatch(code, ignores)

		if selected >= 0 && selected > ignored {
			enabled[code] = struct{}{}
		}
	}

	return enabled, nil
}

func longestMatch(code m.CheckCode, selectors []string) int {
	longest := -1

	for _, selector := range selectors {
		selector = strings.ToUpper(strings.TrimSpace(selector))
		if strings.HasPrefix(string(code), selector) && len(selector) > longest {
			longest = len(selector)
		}
	}

	return longest
}

func resolvePerFileIgnores(raw map[string][]string) ([]m.PerFileIgnore, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	patterns := make([]string, 0, len(raw))
	for pattern := range raw {
		patterns = append(patterns, pattern)
	}

	sort.Strings(patterns)

	ignores := make([]m.PerFileIgnore, 0, len(patterns))

	for _, pattern := range patterns {
		var codes []m.CheckCode

		for _, selector := range raw[pattern] {
			matched := m.SelectCodes(selector)
			if len(matched) == 0 {
				return nil, fmt.Errorf("per-file-ignores %q: %w: %q", pattern, ErrUnknownSelector, selector)
			}

			codes = append(codes, matched...)
		}

		ignores = append(ignores, m.PerFileIgnore{Pattern: pattern, Codes: codes})
	}

	return ignores, nil
}

func fingerprint(s *m.Settings) string {
	h := sha256.New()

	_, _ = fmt.Fprintf(h, "enabled=%v\n", s.EnabledCodes())
	_, _ = fmt.Fprintf(h, "line-length=%d\n", s.LineLength)
	_, _ = fmt.Fprintf(h, "show-source=%t\n", s.ShowSource)

	fixable := make([]string, 0, len(s.Fixable))
	for code := range s.Fixable {
		fixable = append(fixable, string(code))
	}

	sort.Strings(fixable)
	_, _ = fmt.Fprintf(h, "fixable=%v nil=%t\n", fixable, s.Fixable == nil)

	for _, ignore := range s.PerFileIgnores {
		_, _ = fmt.Fprintf(h, "per-file=%s:%v\n", ignore.Pattern, ignore.Codes)
	}

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
