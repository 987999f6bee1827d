package tui

import (
	"fmt"
	"sort"
	"strings"

	"wishplan/internal/cli"
	"wishplan/internal/model"
	"wishplan/internal/planner"
	"wishplan/internal/tui/components"
	"wishplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWishlistTab(cw int) string {
	t := theme.Active
	suffix := a.cfg.General.CurrencySuffix

	if len(a.state.Wishlist) == 0 {
		return components.Panel("", "등록된 물건이 없습니다. n 키로 추가하세요.", cw) + "\n"
	}

	items := make([]model.WishlistItem, len(a.state.Wishlist))
	copy(items, a.state.Wishlist)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortPriority() < items[j].SortPriority()
	})

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	barWidth := cw - 30
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	for _, it := range items {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			nameStyle.Render(it.Name),
			metaStyle.Render(fmt.Sprintf("(우선순위 %s · %d개월 · id %d)", cli.FormatPriority(it.Priority), it.Months, it.ID)),
		))
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			components.GoalBar(it.Progress(), barWidth),
			metaStyle.Render(cli.FormatMoney(it.Current, suffix)+" / "+cli.FormatMoney(it.Target, suffix)),
		))
		if it.Achieved() {
			b.WriteString("  " + doneStyle.Render("달성!") + "\n")
		} else {
			b.WriteString("  " + metaStyle.Render(fmt.Sprintf("예상 남은 개월: %s", cli.FormatMonthsLeft(planner.EstMonthsLeft(it)))) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
