package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/lintel/internal/model"
)

// SimpleUI implements UI with plain text on the command's output. It shows no
// progress.
type SimpleUI struct {
	cmd     *cobra.Command
	printer *Printer
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, printer: NewPrinter(false)}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// FilesDiscovered is a no-op.
func (s *SimpleUI) FilesDiscovered(int) {}

// FileProcessed is a no-op.
func (s *SimpleUI) FileProcessed(m.Path) {}

// DisplayDiagnostics prints diagnostics in format.
func (s *SimpleUI) DisplayDiagnostics(diagnostics m.Diagnostics, format m.SerializationFormat) error {
	return s.printer.Write(s.cmd.OutOrStdout(), diagnostics, format)
}

// DisplayCount prints the total of a suppression or format run.
func (s *SimpleUI) DisplayCount(kind CountKind, count int) error {
	s.printf("%s\n", countText(kind, count))
	return nil
}

// DisplayFiles prints one path per line.
func (s *SimpleUI) DisplayFiles(files []m.Path) error {
	for _, file := range files {
		s.printf("%s\n", file)
	}

	return nil
}

// DisplaySettings prints settings as YAML.
func (s *SimpleUI) DisplaySettings(path m.Path, settings *m.Settings) error {
	return WriteSettings(s.cmd.OutOrStdout(), path, settings)
}

// DisplayExplanation prints text as is.
func (s *SimpleUI) DisplayExplanation(text string) error {
	s.printf("%s", text)
	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func countText(kind CountKind, count int) string {
	switch kind {
	case CountSuppressions:
		return fmt.Sprintf("Added %d noqa directive(s).", count)
	case CountFormatted:
		return fmt.Sprintf("Formatted %d file(s).", count)
	}

	return fmt.Sprintf("%d", count)
}
