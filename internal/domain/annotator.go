package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/mouse-blink/lintel/internal/adapter"
	"github.com/mouse-blink/lintel/internal/domain/rules"
	m "github.com/mouse-blink/lintel/internal/model"
)

// Annotator adds suppression directives for the current findings of a file.
type Annotator interface {
	// AddSuppressions returns the number of lines that received or extended
	// a //noqa directive.
	AddSuppressions(path m.Path, settings *m.Settings) (int, error)
}

type annotator struct {
	fs     adapter.SourceFSAdapter
	engine engine
}

// NewAnnotator returns an Annotator reading and writing files through fs.
func NewAnnotator(fs adapter.SourceFSAdapter, parser adapter.GoFileAdapter) Annotator {
	return &annotator{fs: fs, engine: engine{parser: parser}}
}

func (a *annotator) AddSuppressions(path m.Path, settings *m.Settings) (int, error) {
	if settings == nil {
		return 0, errNoSettings
	}

	content, err := a.fs.ReadFile(path)
	if err != nil {
		return 0, err
	}

	diagnostics, _ := a.engine.lint(string(path), content, settings, m.AutofixNone)

	codesByRow := make(map[int][]m.CheckCode)

	for _, msg := range diagnostics.Messages {
		row := msg.Location.Row
		if row <= 0 || slices.Contains(codesByRow[row], msg.Kind.Code) {
			continue
		}

		codesByRow[row] = append(codesByRow[row], msg.Kind.Code)
	}

	if len(codesByRow) == 0 {
		return 0, nil
	}

	lines := strings.Split(string(content), "\n")
	fset, file, parseErr := a.engine.parser.Parse(string(path), content)
	noqa := noqaIndexFor(lines, fset, file, parseErr)

	if parseErr != nil {
		file = nil
	}

	// A trailing comment on these rows would land inside the literal or comment.
	blocked := rules.MultilineStringRows(fset, file)
	maps.Copy(blocked, rules.MultilineCommentRows(fset, file))
	changed := 0

	for row, codes := range codesByRow {
		if row > len(lines) || blocked[row] {
			continue
		}

		slices.Sort(codes)

		line := lines[row-1]
		eol := ""

		if strings.HasSuffix(line, "\r") {
			line, eol = strings.TrimSuffix(line, "\r"), "\r"
		}

		d, found := noqa[row]

		updated := withCodes(line, d, found, codes)
		if updated == line {
			continue
		}

		lines[row-1] = updated + eol
		changed++
	}

	if changed == 0 {
		return 0, nil
	}

	if err := a.fs.WriteFile(path, []byte(strings.Join(lines, "\n"))); err != nil {
		return 0, err
	}

	return changed, nil
}
