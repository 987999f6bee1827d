package cmd

import (
	"fmt"
	"sort"

	"wishplan/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the wishlist",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}
	suffix := cfg.General.CurrencySuffix

	if len(st.Wishlist) == 0 {
		fmt.Println(cli.RenderMuted("등록된 물건이 없습니다. `wishplan add`로 시작하세요."))
		return nil
	}

	items := make([]int, len(st.Wishlist))
	for i := range items {
		items[i] = i
	}
	sort.SliceStable(items, func(a, b int) bool {
		return st.Wishlist[items[a]].SortPriority() < st.Wishlist[items[b]].SortPriority()
	})

	rows := make([][]string, 0, len(st.Wishlist))
	for _, idx := range items {
		it := st.Wishlist[idx]
		rows = append(rows, []string{
			fmt.Sprintf("%d", it.ID),
			it.Name,
			cli.FormatPriority(it.Priority),
			cli.FormatMoney(it.Target, suffix),
			cli.FormatMoney(it.Current, suffix),
			cli.FormatPercent(it.Progress()),
			fmt.Sprintf("%d개월", it.Months),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("사고 싶은 물건"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "이름", "우선순위", "목표", "적립", "달성률", "기간"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
