package cmd

import (
	"fmt"

	"wishplan/internal/cli"
	"wishplan/internal/planner"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly budget summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}
	suffix := cfg.General.CurrencySuffix

	usable := planner.CalculateUsable(st.Profile)

	fmt.Println()
	fmt.Println(cli.RenderTitle("이번 달 요약"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"항목", "금액"},
		Rows: [][]string{
			{"월 수입", cli.FormatMoney(st.Profile.Income, suffix)},
			{"고정 지출", cli.FormatMoney(st.Profile.FixedExpenses, suffix)},
			{"저축/투자", cli.FormatMoney(st.Profile.SavingInvest, suffix)},
			{"비상금", cli.FormatMoney(st.Profile.Emergency, suffix)},
			cli.Sep,
			{"가용 자금", cli.FormatMoney(usable, suffix)},
		},
	}))

	if len(st.Wishlist) == 0 {
		fmt.Println(cli.RenderMuted("등록된 물건이 없습니다. `wishplan add`로 시작하세요."))
	} else {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("위시리스트 %d개 · 총 적립 %s",
			len(st.Wishlist), cli.FormatMoney(st.TotalSaved(), suffix))))
	}
	fmt.Println()

	return nil
}
