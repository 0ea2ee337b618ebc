package controller

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lintel/internal/model"
)

type settingsView struct {
	Root           string              `yaml:"root"`
	Enabled        []string            `yaml:"enabled"`
	Fixable        []string            `yaml:"fixable"`
	LineLength     int                 `yaml:"line-length"`
	Exclude        []string            `yaml:"exclude"`
	ExtendExclude  []string            `yaml:"extend-exclude,omitempty"`
	PerFileIgnores map[string][]string `yaml:"per-file-ignores,omitempty"`
	ShowSource     bool                `yaml:"show-source"`
	Fingerprint    string              `yaml:"fingerprint"`
}

func newSettingsView(settings *m.Settings) settingsView {
	view := settingsView{
		Root:          string(settings.Root),
		LineLength:    settings.LineLength,
		Exclude:       settings.Exclude,
		ExtendExclude: settings.ExtendExclude,
		ShowSource:    settings.ShowSource,
		Fingerprint:   settings.Fingerprint,
	}

	for _, code := range settings.EnabledCodes() {
		view.Enabled = append(view.Enabled, string(code))
		if settings.IsFixable(code) {
			view.Fixable = append(view.Fixable, string(code))
		}
	}

	if len(settings.PerFileIgnores) > 0 {
		view.PerFileIgnores = make(map[string][]string, len(settings.PerFileIgnores))

		for _, ignore := range settings.PerFileIgnores {
			for _, code := range ignore.Codes {
				view.PerFileIgnores[ignore.Pattern] = append(view.PerFileIgnores[ignore.Pattern], string(code))
			}
		}
	}

	return view
}

// WriteSettings renders the settings resolved for path as YAML.
func WriteSettings(w io.Writer, path m.Path, settings *m.Settings) error {
	if settings == nil {
		return fmt.Errorf("no settings resolved for %s", path)
	}

	if _, err := fmt.Fprintf(w, "Resolved settings for: %s\n", path); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(newSettingsView(settings)); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	return encoder.Close()
}
