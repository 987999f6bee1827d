package cmd

import (
	"fmt"
	"sort"

	"wishplan/internal/cli"
	"wishplan/internal/planner"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Progress report per wishlist item",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}
	suffix := cfg.General.CurrencySuffix

	if len(st.Wishlist) == 0 {
		fmt.Println(cli.RenderMuted("등록된 물건이 없습니다."))
		return nil
	}

	items := make([]int, len(st.Wishlist))
	for i := range items {
		items[i] = i
	}
	sort.SliceStable(items, func(a, b int) bool {
		return st.Wishlist[items[a]].SortPriority() < st.Wishlist[items[b]].SortPriority()
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle("진행률 & 리포트"))
	fmt.Println()

	for _, idx := range items {
		it := st.Wishlist[idx]
		fmt.Printf("  %s — %s/%s (%s)\n",
			it.Name,
			cli.FormatMoney(it.Current, suffix),
			cli.FormatMoney(it.Target, suffix),
			cli.FormatPercent(it.Progress()),
		)
		fmt.Printf("  %s\n", cli.RenderProgressBar(it.Progress(), 40))
		if it.Achieved() {
			fmt.Println(cli.RenderSuccess("달성!"))
		} else {
			fmt.Println(cli.RenderMuted(fmt.Sprintf("예상 남은 개월: %s", cli.FormatMonthsLeft(planner.EstMonthsLeft(it)))))
		}
		fmt.Println()
	}

	return nil
}
