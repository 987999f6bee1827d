package tui

import (
	"fmt"
	"strings"

	"wishplan/internal/cli"
	"wishplan/internal/model"
	"wishplan/internal/planner"
	"wishplan/internal/tui/components"
	"wishplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active
	suffix := a.cfg.General.CurrencySuffix

	// State is already in memory here, so the in-memory scan is used
	// rather than the archive; `wishplan txns` does the filtered reads.
	txs := planner.FilterTransactions(a.state.Transactions, planner.TxFilter{Limit: historyEntries})

	if len(txs) == 0 {
		return components.Panel("", "거래 내역이 없습니다.", cw) + "\n"
	}

	tsStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	typeStyle := lipgloss.NewStyle().Foreground(t.Accent)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	memoStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body strings.Builder
	for _, tx := range txs {
		ts := tsStyle.Render(tx.TS.Local().Format("01-02 15:04"))

		switch tx.Type {
		case model.TxManualDeposit:
			name := fmt.Sprintf("item %d", tx.ItemID)
			if it := a.state.Item(tx.ItemID); it != nil {
				name = it.Name
			}
			line := fmt.Sprintf("%s %s %s",
				ts,
				typeStyle.Render("수동 입금"),
				textStyle.Render(cli.FormatMoney(tx.Amount, suffix)+" → "+name),
			)
			if tx.Memo != "" {
				line += " " + memoStyle.Render("("+tx.Memo+")")
			}
			body.WriteString(line + "\n")

		case model.TxMonthlyAlloc:
			var total int64
			funded := 0
			for _, row := range tx.Alloc {
				total += row.Assigned
				if row.Assigned > 0 {
					funded++
				}
			}
			body.WriteString(fmt.Sprintf("%s %s %s\n",
				ts,
				typeStyle.Render("월 할당"),
				textStyle.Render(fmt.Sprintf("%s → %d개 항목", cli.FormatMoney(total, suffix), funded)),
			))
		}
	}

	return components.Panel(fmt.Sprintf("거래 내역 (최근 %d건)", len(txs)), body.String(), cw) + "\n"
}
