// Package watch shows live progress of a long map build. It is a
// display-only view: the only input it accepts is quitting, which cancels
// the build.
package watch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	barDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barLeft    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// RowMsg reports a completed row index.
type RowMsg int

// DoneMsg reports the end of the build.
type DoneMsg struct {
	Err error
}

// Model is a bubbletea model tracking rows completed out of a known total.
type Model struct {
	total   int
	done    int
	started time.Time
	err     error
	cancel  func()
	quit    bool
}

func New(total int, cancel func()) Model {
	return Model{
		total:   total,
		started: time.Now(),
		cancel:  cancel,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RowMsg:
		m.done++
		return m, nil
	case DoneMsg:
		m.err = msg.Err
		m.quit = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quit {
		if m.err != nil {
			return errStyle.Render(fmt.Sprintf("build failed: %v", m.err)) + "\n"
		}
		return ""
	}

	const width = 40
	filled := 0
	if m.total > 0 {
		filled = m.done * width / m.total
	}
	bar := barDone.Render(strings.Repeat("█", filled)) +
		barLeft.Render(strings.Repeat("░", width-filled))

	elapsed := time.Since(m.started).Round(time.Second)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("building flip map"))
	sb.WriteString("\n\n  ")
	sb.WriteString(bar)
	sb.WriteString(fmt.Sprintf("  %d/%d rows", m.done, m.total))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  elapsed %s · q to abort", elapsed)))
	sb.WriteString("\n")
	return sb.String()
}

// Err returns the error carried by the final DoneMsg, if any.
func (m Model) Err() error { return m.err }
