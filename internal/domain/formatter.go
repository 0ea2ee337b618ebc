package domain

import (
	"bytes"

	"github.com/mouse-blink/lintel/internal/adapter"
	m "github.com/mouse-blink/lintel/internal/model"
)

// Formatter rewrites a file in canonical style.
type Formatter interface {
	Format(path m.Path, settings *m.Settings) error
}

type formatter struct {
	fs     adapter.SourceFSAdapter
	parser adapter.GoFileAdapter
}

// NewFormatter returns a gofmt-backed Formatter. Files already formatted are
// left untouched.
func NewFormatter(fs adapter.SourceFSAdapter, parser adapter.GoFileAdapter) Formatter {
	return &formatter{fs: fs, parser: parser}
}

func (f *formatter) Format(path m.Path, _ *m.Settings) error {
	content, err := f.fs.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := f.parser.Format(content)
	if err != nil {
		return err
	}

	if bytes.Equal(formatted, content) {
		return nil
	}

	return f.fs.WriteFile(path, formatted)
}
