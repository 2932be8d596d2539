package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/listdemo/internal/core/styles"
)

// renderScreen draws every panel into a width x height frame.
func (m Model) renderScreen(width, height int) string {
	l := ComputeLayout(width, height)

	side := joinVertical(
		m.renderInfo(l.Info),
		m.renderGauge(l.Gauge),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(l.List), side)
	if l.List.Empty() && l.Info.Empty() {
		body = ""
	}

	screen := joinVertical(
		m.renderHeader(l.Header),
		body,
		m.renderFooter(l.Footer),
	)

	return lipgloss.NewStyle().Margin(screenMargin).Render(screen)
}

func (m Model) renderHeader(r Rect) string {
	line := "Welcome to " + styles.BrandStyle.Render(m.name) + " Example!"
	return box{title: "Header", lines: []string{line}, align: lipgloss.Center}.render(r.Width, r.Height)
}

// renderList draws one row per item. A selection outside the list, which
// is possible once every item is deleted, highlights nothing.
func (m Model) renderList(r Rect) string {
	lines := make([]string, 0, len(m.state.Items))
	for i, item := range m.state.Items {
		if i == m.state.Selected {
			lines = append(lines, "> "+styles.ItemSelectedStyle.Render(item))
			continue
		}
		lines = append(lines, "  "+styles.ItemNormalStyle.Render(item))
	}

	return box{title: m.keys.ListHint(), lines: lines, align: lipgloss.Left}.render(r.Width, r.Height)
}

func (m Model) renderInfo(r Rect) string {
	lines := []string{
		styles.InfoTextStyle.Render(fmt.Sprintf("Counter: %d", m.state.Counter)),
		styles.InfoTextStyle.Render(fmt.Sprintf("Selected: %d", m.state.Selected)),
		styles.InfoTextStyle.Render(fmt.Sprintf("Items: %d", len(m.state.Items))),
	}
	return box{title: "Info", lines: lines, align: lipgloss.Left}.render(r.Width, r.Height)
}

// renderGauge draws the progress bar on the middle row of its panel.
func (m Model) renderGauge(r Rect) string {
	innerW, innerH := r.Width-2, r.Height-2

	var lines []string
	if innerW > 0 && innerH > 0 {
		bar := m.gauge
		bar.Width = innerW
		lines = make([]string, innerH)
		lines[(innerH-1)/2] = bar.ViewAs(float64(m.state.Progress()) / 100)
	}

	return box{title: "Progress", lines: lines, align: lipgloss.Left}.render(r.Width, r.Height)
}

func (m Model) renderFooter(r Rect) string {
	line := "Press " + styles.QuitKeyStyle.Render(m.keys.Quit.Help().Key) +
		" to quit, " + styles.TickKeyStyle.Render(m.keys.Tick.Help().Key) +
		" to increment counter"
	return box{lines: []string{line}, align: lipgloss.Center}.render(r.Width, r.Height)
}

// joinVertical stacks the non-empty blocks.
func joinVertical(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			parts = append(parts, b)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
