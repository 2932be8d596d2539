package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/listdemo/internal/core/styles"
)

// box is a bordered panel with an optional title embedded in the top border.
type box struct {
	title string
	lines []string
	align lipgloss.Position
}

// render draws the box at exactly width x height cells. Content lines are
// truncated to the inner width and clipped to the inner height. Regions too
// small to hold a border render as blank space.
func (b box) render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		return blank(width, height)
	}

	border := lipgloss.NormalBorder()
	innerW, innerH := width-2, height-2
	edge := styles.BorderStyle.Render

	rows := make([]string, 0, height)
	rows = append(rows, b.topLine(border, innerW))

	for i := range innerH {
		var line string
		if i < len(b.lines) {
			line = ansi.Truncate(b.lines[i], innerW, "")
		}
		line = lipgloss.PlaceHorizontal(innerW, b.align, line)
		rows = append(rows, edge(border.Left)+line+edge(border.Right))
	}

	rows = append(rows, edge(border.BottomLeft+strings.Repeat(border.Bottom, innerW)+border.BottomRight))
	return strings.Join(rows, "\n")
}

func (b box) topLine(border lipgloss.Border, innerW int) string {
	edge := styles.BorderStyle.Render

	title := ansi.Truncate(b.title, innerW, "")
	fill := innerW - lipgloss.Width(title)

	var sb strings.Builder
	sb.WriteString(edge(border.TopLeft))
	if title != "" {
		sb.WriteString(styles.PanelTitleStyle.Render(title))
	}
	sb.WriteString(edge(strings.Repeat(border.Top, fill) + border.TopRight))
	return sb.String()
}

func blank(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
