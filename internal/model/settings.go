package model

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// PerFileIgnore disables Codes for files matching Pattern. Pattern is a
// doublestar glob matched against the path relative to the settings root and
// against the base name.
type PerFileIgnore struct {
	Pattern string
	Codes   []CheckCode
}

// Matches reports whether path (relative to root when possible) matches the pattern.
func (p PerFileIgnore) Matches(root, path Path) bool {
	candidates := []string{filepath.ToSlash(filepath.Base(string(path)))}

	if rel, err := filepath.Rel(string(root), string(path)); err == nil {
		candidates = append(candidates, filepath.ToSlash(rel))
	}

	candidates = append(candidates, filepath.ToSlash(string(path)))

	for _, candidate := range candidates {
		if ok, _ := doublestar.Match(p.Pattern, candidate); ok {
			return true
		}
	}

	return false
}

// Settings is the resolved configuration for one directory scope. Values are
// treated as read-only once built and may be shared between goroutines.
type Settings struct {
	// Root is the directory the settings apply to.
	Root           Path
	Enabled        map[CheckCode]struct{}
	Fixable        map[CheckCode]struct{}
	LineLength     int
	Exclude        []string
	ExtendExclude  []string
	PerFileIgnores []PerFileIgnore
	ShowSource     bool
	// Fingerprint identifies the effective rule configuration; cached results
	// are only reused under an identical fingerprint.
	Fingerprint string
}

// IsEnabled reports whether code is enabled for this scope.
func (s *Settings) IsEnabled(code CheckCode) bool {
	if s == nil {
		return false
	}

	_, ok := s.Enabled[code]

	return ok
}

// IsFixable reports whether fixes for code may be generated or applied.
func (s *Settings) IsFixable(code CheckCode) bool {
	if s == nil || !code.Fixable() {
		return false
	}

	if s.Fixable == nil {
		return true
	}

	_, ok := s.Fixable[code]

	return ok
}

// EnabledFor reports whether code is enabled for path once per-file ignores
// are taken into account.
func (s *Settings) EnabledFor(path Path, code CheckCode) bool {
	if !s.IsEnabled(code) {
		return false
	}

	for _, ignore := range s.PerFileIgnores {
		if !ignore.Matches(s.Root, path) {
			continue
		}

		for _, ignored := range ignore.Codes {
			if ignored == code {
				return false
			}
		}
	}

	return true
}

// EnabledCodes returns the enabled codes in ascending order.
func (s *Settings) EnabledCodes() []CheckCode {
	var codes []CheckCode

	for _, code := range AllCodes() {
		if s.IsEnabled(code) {
			codes = append(codes, code)
		}
	}

	return codes
}

// Overrides are command-line adjustments applied on top of every
// configuration file. Nil fields leave the file's value untouched.
type Overrides struct {
	Select        []string
	ExtendSelect  []string
	Ignore        []string
	ExtendIgnore  []string
	Fixable       []string
	Exclude       []string
	ExtendExclude []string
	LineLength    *int
	ShowSource    *bool
}
