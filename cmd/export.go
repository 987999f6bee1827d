package cmd

import (
	"fmt"

	"wishplan/internal/cli"
	"wishplan/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the full state document",
	Long:  "Write the complete planner document (profile, wishlist, transactions) to a file, in the same JSON encoding as the state file. Defaults to ./" + store.ExportFilename + ".",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, _ := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	out := store.ExportFilename
	if len(args) == 1 {
		out = args[0]
	}

	if err := s.ExportTo(out, st); err != nil {
		return err
	}

	fmt.Println(cli.RenderSuccess(fmt.Sprintf("내보내기 완료: %s", out)))
	return nil
}
