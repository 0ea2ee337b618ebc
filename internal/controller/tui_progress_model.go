package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultProgressWidth = 40
	defaultTermWidth     = 80
)

// progressModel shows a spinner while files are discovered and a progress
// bar while they are processed. It renders nothing once finished so the
// report printed afterwards starts on a clean screen.
type progressModel struct {
	spinner   spinner.Model
	bar       progress.Model
	width     int
	total     int
	completed int
	current   string
	finished  bool
}

func newProgressModel() progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(defaultProgressWidth),
		progress.WithoutPercentage(),
	)

	return progressModel{spinner: s, bar: bar, width: defaultTermWidth, total: -1}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.bar.Width = min(defaultProgressWidth, max(msg.Width-30, 10))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			pm.finished = true
			return pm, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case discoveredMsg:
		pm.total = msg.count
		pm.completed = 0

	case processedMsg:
		pm.completed++
		pm.current = string(msg.path)

	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.finished {
		return ""
	}

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	if pm.total < 0 {
		return fmt.Sprintf("%s Discovering files…\n", pm.spinner.View())
	}

	percent := 1.0
	if pm.total > 0 {
		percent = float64(pm.completed) / float64(pm.total)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s Linting %s %s\n",
		pm.spinner.View(),
		pm.bar.ViewAs(percent),
		accent.Render(fmt.Sprintf("%d/%d", pm.completed, pm.total)),
	)

	if pm.current != "" {
		fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(2)
		b.WriteString(fileStyle.Render(truncateLeft(pm.current, pm.width-4)))
		b.WriteString("\n")
	}

	return b.String()
}

// truncateLeft keeps the end of text, which for paths is the file name.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	runes := []rune(text)
	keep := make([]rune, 0, width)
	current := 0

	for i := len(runes) - 1; i >= 0; i-- {
		w := lipgloss.Width(string(runes[i]))
		if current+w > width-1 {
			break
		}

		keep = append([]rune{runes[i]}, keep...)
		current += w
	}

	return ellipsis + string(keep)
}
