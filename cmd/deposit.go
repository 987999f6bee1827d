package cmd

import (
	"errors"
	"fmt"
	"time"

	"wishplan/internal/cli"
	"wishplan/internal/model"
	"wishplan/internal/planner"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagDepositItem   int64
	flagDepositAmount int64
	flagDepositMemo   string
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Record a manual deposit to a wishlist item",
	Long:  "Add an out-of-cycle amount to one item's savings and log a manual_deposit transaction. With no flags an interactive form opens.",
	RunE:  runDeposit,
}

func init() {
	depositCmd.Flags().Int64Var(&flagDepositItem, "item", 0, "Wishlist item id")
	depositCmd.Flags().Int64Var(&flagDepositAmount, "amount", -1, "Deposit amount")
	depositCmd.Flags().StringVar(&flagDepositMemo, "memo", "", "Optional memo")
	rootCmd.AddCommand(depositCmd)
}

func runDeposit(cmd *cobra.Command, _ []string) error {
	s, _ := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	if len(st.Wishlist) == 0 {
		fmt.Println(cli.RenderMuted("먼저 물건을 추가하세요."))
		return nil
	}

	itemID := flagDepositItem
	amount := flagDepositAmount
	memo := flagDepositMemo

	if !cmd.Flags().Changed("item") {
		var done bool
		itemID, amount, memo, done, err = depositForm(st.Wishlist)
		if err != nil {
			return err
		}
		if !done {
			fmt.Println(cli.RenderMuted("취소됨"))
			return nil
		}
	} else if !cmd.Flags().Changed("amount") {
		return fmt.Errorf("--amount is required with --item")
	}

	if err := planner.RecordDeposit(st, itemID, amount, memo, time.Now()); err != nil {
		if errors.Is(err, planner.ErrItemNotFound) {
			return fmt.Errorf("item %d not found — see `wishplan list` for ids", itemID)
		}
		return err
	}

	if err := s.Save(st); err != nil {
		return err
	}
	mirrorToArchive(s, st.Transactions[len(st.Transactions)-1])

	fmt.Println(cli.RenderSuccess("입금(기록) 완료"))
	return nil
}

// depositForm picks the target item and amount interactively.
func depositForm(wishlist []model.WishlistItem) (itemID, amount int64, memo string, done bool, err error) {
	opts := make([]huh.Option[int64], 0, len(wishlist))
	for _, it := range wishlist {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d: %s", it.ID, it.Name), it.ID))
	}

	amountStr := "0"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("대상 물건").
				Options(opts...).
				Value(&itemID),
			huh.NewInput().
				Title("금액 (원)").
				Value(&amountStr).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("메모 (선택)").
				Value(&memo),
		),
	)

	if err = form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, 0, "", false, nil
		}
		return 0, 0, "", false, fmt.Errorf("deposit form: %w", err)
	}

	amount, _ = cli.ParseAmount(amountStr)
	return itemID, amount, memo, true, nil
}
