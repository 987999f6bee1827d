package cmd

import (
	"errors"
	"fmt"
	"time"

	"wishplan/internal/cli"
	"wishplan/internal/planner"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagApplyYes bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply this month's allocation to the wishlist",
	Long:  "Commit the current allocation preview: assigned amounts move onto each item's accumulated savings and a monthly_alloc transaction is logged. Each apply stands for one month — running it twice records two months.",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().BoolVarP(&flagApplyYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	usable := planner.CalculateUsable(st.Profile)
	rows, remaining := planner.Allocate(usable, st.Wishlist)

	if len(rows) == 0 {
		fmt.Println(cli.RenderMuted("적용 가능한 할당이 없습니다."))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("이번 달 저축 반영"))
	fmt.Println()
	renderAllocation(cfg, usable, rows, remaining)

	if !flagApplyYes {
		ok := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("이번 달 할당을 현재 적립액에 반영할까요?").
				Affirmative("반영").
				Negative("취소").
				Value(&ok),
		))
		if err := confirm.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println(cli.RenderMuted("취소됨"))
				return nil
			}
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			fmt.Println(cli.RenderMuted("취소됨"))
			return nil
		}
	}

	planner.ApplyAllocation(st, rows, time.Now())
	if err := s.Save(st); err != nil {
		return err
	}
	mirrorToArchive(s, st.Transactions[len(st.Transactions)-1])

	fmt.Println(cli.RenderSuccess("이번 달 할당이 반영되었습니다."))
	return nil
}
