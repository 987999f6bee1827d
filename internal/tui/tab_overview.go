package tui

import (
	"fmt"
	"strings"

	"wishplan/internal/cli"
	"wishplan/internal/planner"
	"wishplan/internal/tui/components"
)

func (a App) renderOverviewTab(cw int) string {
	suffix := a.cfg.General.CurrencySuffix
	p := a.state.Profile
	usable := planner.CalculateUsable(p)

	var b strings.Builder

	metrics := []components.Metric{
		{Label: "월 수입", Value: cli.FormatMoney(p.Income, suffix)},
		{Label: "고정 지출", Value: cli.FormatMoney(p.FixedExpenses, suffix)},
		{Label: "저축/투자", Value: cli.FormatMoney(p.SavingInvest, suffix)},
		{Label: "비상금", Value: cli.FormatMoney(p.Emergency, suffix)},
	}
	b.WriteString(components.MetricRow(metrics, cw))
	b.WriteString("\n")

	row2 := []components.Metric{
		{Label: "가용 자금", Value: cli.FormatMoney(usable, suffix), Note: "수입 - (고정+저축+비상)"},
		{Label: "위시리스트", Value: fmt.Sprintf("%d개", len(a.state.Wishlist))},
		{Label: "총 적립", Value: cli.FormatMoney(a.state.TotalSaved(), suffix)},
	}
	b.WriteString(components.MetricRow(row2, cw))
	b.WriteString("\n")

	if len(a.state.Wishlist) == 0 {
		b.WriteString(components.Panel("", "등록된 물건이 없습니다. n 키로 추가하세요.", cw))
		b.WriteString("\n")
	}

	return b.String()
}
