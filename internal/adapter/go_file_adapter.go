package adapter

import (
	"errors"
	"go/ast"
	"go/format"
	"go/parser"
	"go/scanner"
	"go/token"

	m "github.com/mouse-blink/lintel/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing and printing so the rules
// and the formatter work on plain bytes and ASTs.
type GoFileAdapter interface {
	// Parse builds an AST for the provided filename/source pair.
	Parse(filename string, src []byte) (*token.FileSet, *ast.File, error)

	// Format returns src in canonical gofmt style.
	Format(src []byte) ([]byte, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser
// and go/format.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair, keeping comments.
func (a *LocalGoFileAdapter) Parse(filename string, src []byte) (*token.FileSet, *ast.File, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return fset, nil, err
	}

	return fset, file, nil
}

// Format runs gofmt over src.
func (a *LocalGoFileAdapter) Format(src []byte) ([]byte, error) {
	return format.Source(src)
}

// SyntaxErrorLocation extracts the position and text of the first error in a
// go/parser error. ok is false when err carries no position.
func SyntaxErrorLocation(err error) (loc m.Location, msg string, ok bool) {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]

		return m.Location{Row: first.Pos.Line, Column: first.Pos.Column}, first.Msg, true
	}

	var single scanner.Error
	if errors.As(err, &single) {
		return m.Location{Row: single.Pos.Line, Column: single.Pos.Column}, single.Msg, true
	}

	return m.Location{}, "", false
}
