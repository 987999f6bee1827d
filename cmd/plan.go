package cmd

import (
	"fmt"

	"wishplan/internal/cli"
	"wishplan/internal/config"
	"wishplan/internal/model"
	"wishplan/internal/planner"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview this month's allocation",
	Long:  "Compute how this month's usable cash would be split across the wishlist by priority, without changing anything. `wishplan apply` commits the result.",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	usable := planner.CalculateUsable(st.Profile)
	rows, remaining := planner.Allocate(usable, st.Wishlist)

	fmt.Println()
	fmt.Println(cli.RenderTitle("자동 배분 (미리보기)"))
	fmt.Println()
	renderAllocation(cfg, usable, rows, remaining)
	return nil
}

// renderAllocation prints an allocation preview table, shared between
// `plan` and `apply`.
func renderAllocation(cfg config.Config, usable int64, rows []model.Allocation, remaining int64) {
	suffix := cfg.General.CurrencySuffix

	if len(rows) == 0 {
		fmt.Println(cli.RenderMuted("할당할 목표가 없습니다. 목표를 추가해보세요."))
		fmt.Println(cli.RenderMuted(fmt.Sprintf("가용 자금(전액 생활비 가능): %s", cli.FormatMoney(usable, suffix))))
		fmt.Println()
		return
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			fmt.Sprintf("%d", row.ID),
			row.Name,
			cli.FormatMoney(row.Need, suffix),
			cli.FormatMoney(row.Assigned, suffix),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "이름", "필요액", "할당액"},
		Rows:    table,
	}))
	fmt.Println(cli.RenderMuted(fmt.Sprintf("모든 할당 후 남는 생활비: %s", cli.FormatMoney(remaining, suffix))))
	fmt.Println()
}
