package board

import (
	"errors"
	"io"

	"github.com/bnema/pareto-trade/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type drawMsg struct{}

// frame draws once on its first message and quits, keeping the output.
type frame struct {
	draw   func() string
	output string
}

func (f frame) Init() tea.Cmd {
	return func() tea.Msg { return drawMsg{} }
}

func (f frame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(drawMsg); !ok {
		return f, nil
	}

	f.output = f.draw()
	return f, tea.Quit
}

func (f frame) View() string {
	return f.output
}

// Render draws the snapshot once through a headless bubbletea program.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	return renderHeadless(func() string { return View(snapshot, opts) })
}

// View draws the snapshot directly, for callers already inside a program.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderHeadless(draw func() string) (string, error) {
	p := tea.NewProgram(frame{draw: draw}, tea.WithInput(nil), tea.WithOutput(io.Discard))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	drawn, ok := finalModel.(frame)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return drawn.output, nil
}
