package play

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpText = "commands: trade <A pizza> <A soda> <B pizza> <B soda> | hint | apply | reset | scenario <id> | quit"

// ScenarioSwitcher loads a scenario by ID and restarts the session with it.
type ScenarioSwitcher interface {
	SwitchScenario(ctx context.Context, session *application.Session, id domain.ScenarioID) error
}

type Model struct {
	ctx      context.Context
	session  *application.Session
	switcher ScenarioSwitcher
	input    textinput.Model
	help     lipgloss.Style

	last     *application.TradeResult
	notice   string
	showHint bool
	quitting bool
}

func New(ctx context.Context, session *application.Session, switcher ScenarioSwitcher) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "trade 0 2 2 0"
	input.CharLimit = 64
	input.Focus()

	return Model{
		ctx:      ctx,
		session:  session,
		switcher: switcher,
		input:    input,
		help:     lipgloss.NewStyle().Faint(true),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return fmt.Sprintf("Thanks for playing, %s!\n", m.session.PlayerName())
	}

	boardView := board.View(m.session.Snapshot(), board.RenderOptions{
		ShowHint:     m.showHint,
		LastResult:   m.last,
		Notice:       m.notice,
		HistoryLimit: 5,
	})

	return boardView + "\n\n" + m.input.View() + "\n" + m.help.Render(helpText) + "\n"
}

func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}

	m.notice = ""
	command := strings.ToLower(fields[0])

	switch command {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit
	case "help", "?":
		m.notice = helpText
	case "hint":
		m.showHint = true
	case "trade":
		barter, err := domain.ParseBarter(fields[1:])
		if err != nil {
			m.notice = err.Error() + "; usage: trade <A pizza> <A soda> <B pizza> <B soda>"
			return m, nil
		}
		m.record(m.session.Propose(barter))
	case "apply":
		m.record(m.session.ApplySuggestion())
	case "reset":
		m.session.Reset()
		m.last = nil
		m.showHint = false
	case "scenario":
		if len(fields) != 2 {
			m.notice = "usage: scenario <id>"
			return m, nil
		}
		if err := m.switcher.SwitchScenario(m.ctx, m.session, domain.ScenarioID(fields[1])); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.last = nil
		m.showHint = false
	default:
		m.notice = fmt.Sprintf("unknown command %q, type help", command)
	}

	return m, nil
}

func (m *Model) record(result application.TradeResult, err error) {
	if err != nil {
		m.notice = application.Guidance(err)
		return
	}

	m.last = &result
	m.showHint = false
}

// Run drives an interactive game on the given terminal streams until the
// player quits or ctx is done.
func Run(ctx context.Context, session *application.Session, switcher ScenarioSwitcher, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, session, switcher),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	_, err := p.Run()
	return err
}
