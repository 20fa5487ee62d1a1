package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/pareto-trade/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sweepRowMsg struct {
	done  int
	total int
}

type sweepFinishedMsg struct {
	result application.SweepResult
	err    error
}

// sweepRunner evaluates a sweep, reporting each finished row through onRow.
type sweepRunner func(ctx context.Context, onRow func(done, total int)) (application.SweepResult, error)

// sweepProgress shows a spinner with a row counter until the sweep finishes.
type sweepProgress struct {
	spinner  spinner.Model
	start    tea.Cmd
	done     int
	total    int
	result   application.SweepResult
	err      error
	finished bool
}

func newSweepProgress(start tea.Cmd) sweepProgress {
	return sweepProgress{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		start: start,
	}
}

func (m sweepProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m sweepProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sweepRowMsg:
		// rows finish out of order across workers
		if msg.done > m.done {
			m.done = msg.done
		}
		m.total = msg.total
		return m, nil
	case sweepFinishedMsg:
		m.finished = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sweepProgress) View() string {
	if m.finished {
		return ""
	}
	if m.total == 0 {
		return m.spinner.View() + " Sweeping allocations..."
	}

	return fmt.Sprintf("%s Sweeping allocations: row %d/%d", m.spinner.View(), m.done, m.total)
}

// sweepWithProgress runs sweep while drawing its row progress on output.
func sweepWithProgress(ctx context.Context, output io.Writer, sweep sweepRunner) (application.SweepResult, error) {
	var p *tea.Program
	start := func() tea.Msg {
		result, err := sweep(ctx, func(done, total int) {
			p.Send(sweepRowMsg{done: done, total: total})
		})
		return sweepFinishedMsg{result: result, err: err}
	}

	p = tea.NewProgram(
		newSweepProgress(start),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.SweepResult{}, err
	}

	progress, ok := finalModel.(sweepProgress)
	if !ok {
		return application.SweepResult{}, fmt.Errorf("unexpected final sweep model type %T", finalModel)
	}

	return progress.result, progress.err
}
