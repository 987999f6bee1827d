package tui

import (
	"fmt"
	"strings"

	"wishplan/internal/cli"
	"wishplan/internal/planner"
	"wishplan/internal/tui/components"
	"wishplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPlanTab(cw int) string {
	t := theme.Active
	suffix := a.cfg.General.CurrencySuffix

	usable := planner.CalculateUsable(a.state.Profile)
	rows, remaining := planner.Allocate(usable, a.state.Wishlist)

	if len(rows) == 0 {
		body := "할당할 목표가 없습니다. 목표를 추가해보세요.\n" +
			fmt.Sprintf("가용 자금(전액 생활비 가능): %s", cli.FormatMoney(usable, suffix))
		return components.Panel("자동 배분", body, cw) + "\n"
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	needStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body strings.Builder
	for _, row := range rows {
		body.WriteString(fmt.Sprintf("%s\n  %s %s\n",
			nameStyle.Render(fmt.Sprintf("%d. %s", row.ID, row.Name)),
			amtStyle.Render(cli.FormatMoney(row.Assigned, suffix)),
			needStyle.Render(fmt.Sprintf("/ 필요 %s", cli.FormatMoney(row.Need, suffix))),
		))
	}
	body.WriteString("\n")
	body.WriteString(needStyle.Render(fmt.Sprintf("가용 자금 %s · 할당 후 남는 생활비 %s",
		cli.FormatMoney(usable, suffix), cli.FormatMoney(remaining, suffix))))

	out := components.Panel("자동 배분 (미리보기)", body.String(), cw) + "\n"
	hint := lipgloss.NewStyle().Foreground(t.TextDim)
	out += " " + hint.Render("a 키로 이번 달 적립액에 반영") + "\n"
	return out
}
