package board

import (
	"fmt"
	"strings"

	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	ShowHint bool
	// LastResult is the trade that produced the snapshot, if any.
	LastResult *application.TradeResult
	// Notice is shown as a warning, typically guidance for a rejected trade.
	Notice string
	// HistoryLimit caps the history lines shown. Zero shows all of them.
	HistoryLimit int
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Pareto Efficiency Trading Game"),
		s.header.Render(fmt.Sprintf("scenario: %s (%s)  player: %s", snapshot.Scenario.Name, snapshot.Scenario.ID, snapshot.PlayerName)),
	}
	if snapshot.Scenario.Description != "" {
		lines = append(lines, s.empty.Render(snapshot.Scenario.Description))
	}

	lines = append(lines,
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			renderStudent(snapshot.A, s),
			renderStudent(snapshot.B, s),
		)),
		s.section.Render(renderStatus(snapshot.Status, opts.ShowHint, s)),
	)

	if opts.LastResult != nil {
		lines = append(lines, s.section.Render(renderResult(*opts.LastResult, s)))
	}
	if opts.Notice != "" {
		lines = append(lines, s.section.Render(s.warning.Render(opts.Notice)))
	}

	lines = append(lines, s.section.Render(renderHistory(snapshot.History, opts.HistoryLimit, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStudent(view application.StudentView, s styles) string {
	student := view.Student
	detail := fmt.Sprintf(
		"pizza: %d  soda: %d  weights: %dx pizza + %dx soda  utility: %d",
		student.Holdings.Pizza,
		student.Holdings.Soda,
		student.Weights.Pizza,
		student.Weights.Soda,
		view.Utility,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, s.student.Render(fmt.Sprintf("%-10s", student.Name)), " ", s.detail.Render(detail))
}

func renderStatus(status domain.ParetoStatus, showHint bool, s styles) string {
	label := s.improve.Render("Not Pareto efficient")
	if status.IsEfficient {
		label = s.efficient.Render("Pareto efficient")
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.detail.Render("status: "), label),
		s.detail.Render(status.Explanation),
	}
	if showHint {
		parts = append(parts, s.hint.Render("hint: "+HintText(status)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderResult(result application.TradeResult, s styles) string {
	messageStyle := s.warning
	if result.Outcome.IsParetoImprovement() {
		messageStyle = s.success
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.detail.Render("last trade: "+DescribeBarter(result.Barter)),
		s.detail.Render(fmt.Sprintf("utility A: %d -> %d  utility B: %d -> %d", result.BeforeA, result.AfterA, result.BeforeB, result.AfterB)),
		messageStyle.Render(result.Message),
	)
}

func renderHistory(history []application.HistoryEntry, limit int, s styles) string {
	if len(history) == 0 {
		return s.empty.Render("No trades yet.")
	}

	lines := []string{s.header.Render(fmt.Sprintf("history: %d trades", len(history)))}
	shown := history
	if limit > 0 && len(shown) > limit {
		shown = shown[len(shown)-limit:]
	}
	for _, entry := range shown {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"#%d A->B pizza %+d soda %+d (%s)",
			entry.Sequence,
			entry.Trade.Pizza,
			entry.Trade.Soda,
			entry.Outcome,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// HintText describes the suggested trade of status as one-way gives.
func HintText(status domain.ParetoStatus) string {
	if !status.CanImprove || status.SuggestedTrade == nil {
		return fmt.Sprintf("no improving trade of up to %d units per good was found", domain.SearchWindow)
	}

	return fmt.Sprintf("%s (total utility gain %+d)", DescribeBarter(domain.BarterFromNet(*status.SuggestedTrade)), status.Gain)
}

func DescribeBarter(barter domain.Barter) string {
	return fmt.Sprintf("Student A gives %s, Student B gives %s", describeGives(barter.A), describeGives(barter.B))
}

func describeGives(h domain.Holdings) string {
	if h.IsZero() {
		return "nothing"
	}

	parts := make([]string, 0, 2)
	for _, good := range []domain.Good{domain.GoodPizza, domain.GoodSoda} {
		if amount := h.Amount(good); amount != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", amount, good.Unit()))
		}
	}

	return strings.Join(parts, " and ")
}

// RenderSweep draws the sweep as a grid with A's pizza down the side and A's
// soda across the top. Efficient allocations are marked with '*'.
func RenderSweep(result application.SweepResult) string {
	s := newStyles()
	total := (result.Totals.Pizza + 1) * (result.Totals.Soda + 1)

	lines := []string{
		s.title.Render("Pareto frontier sweep"),
		s.header.Render(fmt.Sprintf(
			"totals: %d pizza, %d soda  weights A: %d/%d  weights B: %d/%d",
			result.Totals.Pizza, result.Totals.Soda,
			result.WeightsA.Pizza, result.WeightsA.Soda,
			result.WeightsB.Pizza, result.WeightsB.Soda,
		)),
	}

	width := len(fmt.Sprint(result.Totals.Soda)) + 1
	header := strings.Builder{}
	header.WriteString("A pizza\\soda")
	for soda := 0; soda <= result.Totals.Soda; soda++ {
		header.WriteString(fmt.Sprintf("%*d", width, soda))
	}
	grid := []string{s.header.Render(header.String())}

	for pizza, row := range result.Rows {
		line := strings.Builder{}
		line.WriteString(fmt.Sprintf("%12d", pizza))
		for _, cell := range row {
			mark := s.cellOpen.Render(fmt.Sprintf("%*s", width, "."))
			if cell.Status.IsEfficient {
				mark = s.cellDone.Render(fmt.Sprintf("%*s", width, "*"))
			}
			line.WriteString(mark)
		}
		grid = append(grid, line.String())
	}

	lines = append(lines,
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left, grid...)),
		s.section.Render(s.detail.Render(fmt.Sprintf("efficient allocations: %d of %d", result.Efficient, total))),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
