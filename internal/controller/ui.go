// Package controller renders lint results and progress for the command line.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/lintel/internal/model"
)

// CountKind names what a DisplayCount total refers to.
type CountKind int

// Available CountKind values.
const (
	CountSuppressions CountKind = iota
	CountFormatted
)

// UI defines how the commands report progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
// FilesDiscovered and FileProcessed may be called from several goroutines.
type UI interface {
	Start() error
	Close()
	FilesDiscovered(count int)
	FileProcessed(path m.Path)
	DisplayDiagnostics(diagnostics m.Diagnostics, format m.SerializationFormat) error
	DisplayCount(kind CountKind, count int) error
	DisplayFiles(files []m.Path) error
	DisplaySettings(path m.Path, settings *m.Settings) error
	DisplayExplanation(text string) error
}

// NewUI creates a UI based on whether TTY mode is enabled. The TUI draws its
// progress on the command's error stream so reports on stdout stay clean.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
