package controller

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/lintel/internal/model"
)

// TUI implements UI with a Bubble Tea progress display on progress and
// colored reports on output.
type TUI struct {
	output   io.Writer
	progress io.Writer
	printer  *Printer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output, progress io.Writer) *TUI {
	return &TUI{output: output, progress: progress, printer: NewPrinter(true)}
}

// Start launches the progress display.
func (t *TUI) Start() error {
	return t.startWithModel(newProgressModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.progress), tea.WithInput(nil))
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// Close stops the progress display and waits for it to clear.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done, t.started = nil, nil, false
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishedMsg{})
	<-done
}

// Wait blocks until the progress display exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// FilesDiscovered sets the progress total.
func (t *TUI) FilesDiscovered(count int) {
	t.send(discoveredMsg{count: count})
}

// FileProcessed advances the progress bar.
func (t *TUI) FileProcessed(path m.Path) {
	t.send(processedMsg{path: path})
}

// DisplayDiagnostics prints diagnostics in format with color.
func (t *TUI) DisplayDiagnostics(diagnostics m.Diagnostics, format m.SerializationFormat) error {
	return t.printer.Write(t.output, diagnostics, format)
}

// DisplayCount prints a highlighted total.
func (t *TUI) DisplayCount(kind CountKind, count int) error {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	_, err := fmt.Fprintln(t.output, style.Render(countText(kind, count)))

	return err
}

// DisplayFiles prints the files as a numbered table.
func (t *TUI) DisplayFiles(files []m.Path) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, file := range files {
		table.Append([]string{fmt.Sprintf("%d", i+1), string(file)})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Files %d", len(files))})
	table.Render()

	_, err := t.output.Write(tableBuffer.Bytes())

	return err
}

// DisplaySettings prints settings as YAML.
func (t *TUI) DisplaySettings(path m.Path, settings *m.Settings) error {
	return WriteSettings(t.output, path, settings)
}

// DisplayExplanation prints text as is.
func (t *TUI) DisplayExplanation(text string) error {
	_, err := io.WriteString(t.output, text)
	return err
}
