package domain

import (
	"go/ast"
	"go/token"
	"maps"
	"regexp"
	"slices"
	"strings"

	m "github.com/mouse-blink/lintel/internal/model"
)

// noqaPattern matches `//noqa` and `//noqa:E501,W291` with optional spaces.
var noqaPattern = regexp.MustCompile(`(?i)//\s*noqa(?::\s*([A-Z]+[0-9]+(?:\s*,\s*[A-Z]+[0-9]+)*))?`)

type noqaRule struct {
	all   bool
	codes map[m.CheckCode]struct{}
}

func (r noqaRule) suppresses(code m.CheckCode) bool {
	if r.all {
		return true
	}

	_, ok := r.codes[code]

	return ok
}

// directive is a noqa comment found on a line: its byte span and codes.
type directive struct {
	start, end int
	rule       noqaRule
}

func parseNoqaDirective(line string) (directive, bool) {
	loc := noqaPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return directive{}, false
	}

	d := directive{start: loc[0], end: loc[1]}

	if loc[2] < 0 {
		d.rule.all = true
		return d, true
	}

	d.rule.codes = make(map[m.CheckCode]struct{})

	for _, part := range strings.Split(line[loc[2]:loc[3]], ",") {
		d.rule.codes[m.CheckCode(strings.ToUpper(strings.TrimSpace(part)))] = struct{}{}
	}

	return d, true
}

func (d directive) sortedCodes() []m.CheckCode {
	codes := make([]m.CheckCode, 0, len(d.rule.codes))
	for code := range d.rule.codes {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

// noqaIndex maps 1-based rows to the directive on that row.
type noqaIndex map[int]directive

func buildNoqaIndex(lines []string) noqaIndex {
	index := make(noqaIndex)

	for i, line := range lines {
		if d, ok := parseNoqaDirective(line); ok {
			index[i+1] = d
		}
	}

	return index
}

// noqaFromComments collects directives from the // comments of file, so text
// inside string literals is never taken for one. Offsets are byte offsets
// into the comment's line.
func noqaFromComments(fset *token.FileSet, file *ast.File) noqaIndex {
	index := make(noqaIndex)

	for _, group := range file.Comments {
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, "//") {
				continue
			}

			d, ok := parseNoqaDirective(c.Text)
			if !ok {
				continue
			}

			pos := fset.PositionFor(c.Pos(), false)
			if _, seen := index[pos.Line]; seen {
				continue
			}

			d.start += pos.Column - 1
			d.end += pos.Column - 1
			index[pos.Line] = d
		}
	}

	return index
}

// noqaIndexFor uses the comments of a cleanly parsed file and falls back to
// scanning lines otherwise.
func noqaIndexFor(lines []string, fset *token.FileSet, file *ast.File, parseErr error) noqaIndex {
	if parseErr != nil || fset == nil || file == nil {
		return buildNoqaIndex(lines)
	}

	return noqaFromComments(fset, file)
}

// suppressed reports whether msg sits on a row whose directive covers its
// code. Messages without a row are never suppressed.
func (idx noqaIndex) suppressed(msg m.Message) bool {
	if msg.Location.Row <= 0 {
		return false
	}

	d, ok := idx[msg.Location.Row]

	return ok && d.rule.suppresses(msg.Kind.Code)
}

// withCodes returns line with its directive d covering codes as well. When
// found is false a directive is added at the end of the line.
func withCodes(line string, d directive, found bool, codes []m.CheckCode) string {
	if !found {
		return line + "  " + formatNoqa(codes)
	}

	if d.rule.all {
		return line
	}

	d.rule.codes = maps.Clone(d.rule.codes)
	for _, code := range codes {
		d.rule.codes[code] = struct{}{}
	}

	return line[:d.start] + formatNoqa(d.sortedCodes()) + line[d.end:]
}

func formatNoqa(codes []m.CheckCode) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = string(code)
	}

	return "//noqa:" + strings.Join(parts, ",")
}
