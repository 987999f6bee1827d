package cmd

import (
	"fmt"
	"os"

	"wishplan/internal/cli"
	"wishplan/internal/model"
	"wishplan/internal/planner"
	"wishplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagTxnsLimit int
	flagTxnsType  string
	flagTxnsItem  int64
)

var txnsCmd = &cobra.Command{
	Use:   "txns",
	Short: "Show recent transactions",
	Long:  "List ledger transactions, newest first. Filters run against the SQLite archive; when the archive is unavailable the JSON log is scanned directly.",
	RunE:  runTxns,
}

func init() {
	txnsCmd.Flags().IntVarP(&flagTxnsLimit, "limit", "n", 20, "Max entries to show")
	txnsCmd.Flags().StringVarP(&flagTxnsType, "type", "t", "", "Filter by type (monthly_alloc or manual_deposit)")
	txnsCmd.Flags().Int64Var(&flagTxnsItem, "item", 0, "Filter by wishlist item id")
	rootCmd.AddCommand(txnsCmd)
}

func runTxns(_ *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	if flagTxnsType != "" &&
		flagTxnsType != string(model.TxMonthlyAlloc) &&
		flagTxnsType != string(model.TxManualDeposit) {
		return fmt.Errorf("unknown transaction type %q", flagTxnsType)
	}

	filter := planner.TxFilter{
		Type:   model.TxType(flagTxnsType),
		ItemID: flagTxnsItem,
		Limit:  flagTxnsLimit,
	}

	txs := queryTransactions(s, st, filter)

	if len(txs) == 0 {
		fmt.Println(cli.RenderMuted("거래 내역이 없습니다."))
		return nil
	}

	suffix := cfg.General.CurrencySuffix
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, txnRow(st, tx, suffix))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("거래 내역 (최근)"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"일시", "종류", "내용"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

// queryTransactions reads history via the archive, resyncing it from
// the JSON log when it has drifted. Any archive failure falls back to
// an in-memory scan — the log is always authoritative.
func queryTransactions(s *store.Store, st *model.AppState, filter planner.TxFilter) []model.Transaction {
	arch, err := store.OpenArchive(store.ArchivePath(s.Path()))
	if err != nil {
		return planner.FilterTransactions(st.Transactions, filter)
	}
	defer arch.Close()

	if n, err := arch.Count(); err != nil || n != len(st.Transactions) {
		if err := arch.Rebuild(st.Transactions); err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  archive resync failed, scanning log: %v\n", err)
			}
			return planner.FilterTransactions(st.Transactions, filter)
		}
	}

	txs, err := arch.Query(filter)
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  archive query failed, scanning log: %v\n", err)
		}
		return planner.FilterTransactions(st.Transactions, filter)
	}
	return txs
}

// txnRow renders one transaction for the history table.
func txnRow(st *model.AppState, tx model.Transaction, suffix string) []string {
	ts := tx.TS.Local().Format("2006-01-02 15:04")

	switch tx.Type {
	case model.TxManualDeposit:
		name := fmt.Sprintf("item %d", tx.ItemID)
		if it := st.Item(tx.ItemID); it != nil {
			name = it.Name
		}
		detail := fmt.Sprintf("%s → %s", cli.FormatMoney(tx.Amount, suffix), name)
		if tx.Memo != "" {
			detail += fmt.Sprintf(" (%s)", tx.Memo)
		}
		return []string{ts, "수동 입금", detail}

	case model.TxMonthlyAlloc:
		var total int64
		funded := 0
		for _, row := range tx.Alloc {
			total += row.Assigned
			if row.Assigned > 0 {
				funded++
			}
		}
		return []string{ts, "월 할당", fmt.Sprintf("%s → %d개 항목", cli.FormatMoney(total, suffix), funded)}

	default:
		return []string{ts, string(tx.Type), ""}
	}
}
