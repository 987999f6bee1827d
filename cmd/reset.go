package cmd

import (
	"errors"
	"fmt"
	"os"

	"wishplan/internal/cli"
	"wishplan/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all planner data",
	Long:  "Remove the state file and the transaction archive, reverting to the zeroed first-run state. Irreversible, so it asks for confirmation first.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	s, _ := openStore()

	if !s.Exists() {
		fmt.Println(cli.RenderMuted("삭제할 데이터가 없습니다."))
		return nil
	}

	if !flagResetForce {
		ok := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("정말로 모든 데이터를 초기화하시겠어요?").
				Description("프로필, 위시리스트, 거래 내역이 모두 삭제됩니다. 되돌릴 수 없습니다.").
				Affirmative("초기화").
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

	if err := s.Reset(); err != nil {
		return err
	}
	// The archive is derived from the log; removing it keeps the two in
	// step. Failure here is harmless, the next read would resync anyway.
	_ = os.Remove(store.ArchivePath(s.Path()))

	fmt.Println(cli.RenderSuccess("모든 데이터가 초기화되었습니다."))
	return nil
}
