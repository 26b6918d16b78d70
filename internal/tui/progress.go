package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	byteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ProgressMsg carries download progress into the model.
type ProgressMsg struct {
	Written int64
	Total   int64
}

// DoneMsg ends the progress display.
type DoneMsg struct {
	Err error
}

// DownloadModel renders a progress bar for one archive download.
type DownloadModel struct {
	name    string
	bar     progress.Model
	written int64
	total   int64
	width   int
}

func NewDownload(name string) DownloadModel {
	return DownloadModel{name: name, bar: progress.New(progress.WithDefaultGradient()), total: -1}
}

func (m DownloadModel) Init() tea.Cmd { return nil }

func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil
	case ProgressMsg:
		m.written = msg.Written
		m.total = msg.Total
		return m, nil
	case DoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DownloadModel) View() string {
	title := titleStyle.Render("Downloading " + m.name)
	var bar, bytes string
	if m.total > 0 {
		bar = m.bar.ViewAs(float64(m.written) / float64(m.total))
		bytes = byteStyle.Render(fmt.Sprintf("%s / %s", humanBytes(m.written), humanBytes(m.total)))
	} else {
		bar = m.bar.ViewAs(0)
		bytes = byteStyle.Render(humanBytes(m.written))
	}
	return title + "\n" + bar + " " + bytes + "\n"
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
