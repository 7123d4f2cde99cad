package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hakel/termdemo/internal/adapters/term"
)

type warmupDoneMsg struct{}

type warmupModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	done    bool
}

func newWarmupModel(label string, wait tea.Cmd) warmupModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(term.SpinnerStyle()),
	)

	return warmupModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m warmupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m warmupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case warmupDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m warmupModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWarmupSpinner shows a short decorative spinner before the demo
// sequence starts. It never renders on a pipe; the caller gates on a TTY.
func runWarmupSpinner(ctx context.Context, output io.Writer, delay time.Duration) error {
	wait := func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		return warmupDoneMsg{}
	}

	p := tea.NewProgram(
		newWarmupModel("Warming up the demo...", wait),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
