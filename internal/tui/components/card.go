package components

import (
	"wishplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labeled value for a metric card.
type Metric struct {
	Label string
	Value string
	Note  string
}

// layoutRow distributes totalWidth into n widths summing exactly to it;
// earlier cells absorb the remainder.
func layoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	rem := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card with label, value and an
// optional note line. outerWidth includes the border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	label := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)

	content := label + "\n" + value
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}

	return card.Render(content)
}

// MetricRow renders metric cards side by side filling totalWidth.
func MetricRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := layoutRow(totalWidth, len(metrics))
	rendered := make([]string, 0, len(metrics))
	for i, m := range metrics {
		rendered = append(rendered, MetricCard(m, widths[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Panel renders a bordered content panel with an optional title.
func Panel(title, body string, outerWidth int) string {
	t := theme.Active

	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n" + body
	}

	return panel.Render(content)
}
