// Package rules holds the individual lint checks run by the checker.
package rules

import (
	"go/ast"
	"go/token"
	"strings"

	m "github.com/mouse-blink/lintel/internal/model"
)

// Source is one file as seen by the rules. File is nil when the content did
// not parse; AST rules then report nothing.
type Source struct {
	Filename string
	Content  []byte
	Lines    []string
	Fset     *token.FileSet
	File     *ast.File
	Settings *m.Settings

	// StringRows marks rows that end inside a multi-line string literal.
	StringRows map[int]bool
}

// NewSource splits content into lines. A trailing newline does not start an
// extra line.
func NewSource(filename string, content []byte, fset *token.FileSet, file *ast.File, settings *m.Settings) *Source {
	return &Source{
		Filename: filename,
		Content:  content,
		Lines:    SplitLines(content),
		Fset:     fset,
		File:     file,
		Settings: settings,

		StringRows: MultilineStringRows(fset, file),
	}
}

// MultilineStringRows marks every row whose line break belongs to a string
// literal. Text at the end of such a row is part of the literal's value.
func MultilineStringRows(fset *token.FileSet, file *ast.File) map[int]bool {
	rows := make(map[int]bool)
	if fset == nil || file == nil {
		return rows
	}

	ast.Inspect(file, func(n ast.Node) bool {
		if lit, ok := n.(*ast.BasicLit); ok && lit.Kind == token.STRING {
			markRows(rows, fset, lit.Pos(), lit.End())
		}

		return true
	})

	return rows
}

// MultilineCommentRows marks every row whose line break belongs to a
// /* */ comment.
func MultilineCommentRows(fset *token.FileSet, file *ast.File) map[int]bool {
	rows := make(map[int]bool)
	if fset == nil || file == nil {
		return rows
	}

	for _, group := range file.Comments {
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, "/*") {
				markRows(rows, fset, c.Pos(), c.End())
			}
		}
	}

	return rows
}

func markRows(rows map[int]bool, fset *token.FileSet, from, to token.Pos) {
	start, end := fset.PositionFor(from, false).Line, fset.PositionFor(to, false).Line
	for row := start; row < end; row++ {
		rows[row] = true
	}
}

// SplitLines returns the lines of content without their terminators.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Rule binds a check code to the function producing its findings.
type Rule struct {
	Code  m.CheckCode
	Check func(src *Source) []m.Message
}

// All returns every rule in code order. E902 and E999 are produced by the
// checker itself and have no entry here.
func All() []Rule {
	return []Rule{
		{Code: m.CodeB001, Check: CheckBoolLiteralComparison},
		{Code: m.CodeD100, Check: CheckPackageDoc},
		{Code: m.CodeE501, Check: CheckLineLength},
		{Code: m.CodeW291, Check: CheckTrailingWhitespace},
		{Code: m.CodeW292, Check: CheckMissingNewline},
	}
}

func (src *Source) location(pos token.Pos) m.Location {
	if src.Fset == nil || !pos.IsValid() {
		return m.Location{}
	}

	p := src.Fset.PositionFor(pos, false)

	return m.Location{Row: p.Line, Column: p.Column}
}

func (src *Source) text(from, to token.Pos) (string, bool) {
	file := src.Fset.File(from)
	if file == nil {
		return "", false
	}

	start, end := file.Offset(from), file.Offset(to)
	if start < 0 || end < start || end > len(src.Content) {
		return "", false
	}

	return string(src.Content[start:end]), true
}
