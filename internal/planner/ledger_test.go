package planner

import (
	"errors"
	"testing"
	"time"

	"wishplan/internal/model"
)

func testState(t *testing.T) *model.AppState {
	t.Helper()
	st := model.DefaultState()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	AddItem(st, "노트북", 400_000, 4, 1, now)
	AddItem(st, "키보드", 100_000, 2, 3, now)
	return st
}

func TestApplyAllocation(t *testing.T) {
	st := testState(t)
	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	rows, _ := Allocate(120_000, st.Wishlist)
	ApplyAllocation(st, rows, now)

	if got := st.Item(1).Current; got != 100_000 {
		t.Errorf("item 1 current = %d, want 100000", got)
	}
	if got := st.Item(2).Current; got != 20_000 {
		t.Errorf("item 2 current = %d, want 20000", got)
	}
	if len(st.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(st.Transactions))
	}
	tx := st.Transactions[0]
	if tx.Type != model.TxMonthlyAlloc || len(tx.Alloc) != len(rows) {
		t.Errorf("transaction = %+v, want monthly_alloc carrying the full result", tx)
	}
}

func TestApplyAllocation_SkipsZeroAssignments(t *testing.T) {
	st := testState(t)
	rows := []model.Allocation{
		{ID: 1, Name: "노트북", Assigned: 0, Need: 100_000},
		{ID: 2, Name: "키보드", Assigned: 5_000, Need: 50_000},
	}

	ApplyAllocation(st, rows, time.Now())

	if got := st.Item(1).Current; got != 0 {
		t.Errorf("item 1 current = %d, want 0 (zero assignment untouched)", got)
	}
	if got := st.Item(2).Current; got != 5_000 {
		t.Errorf("item 2 current = %d, want 5000", got)
	}
}

// Re-applying the same result double-counts on purpose: each apply is a
// distinct month's action. The test pins that down so nobody "fixes" it.
func TestApplyAllocation_NotIdempotent(t *testing.T) {
	st := testState(t)
	rows, _ := Allocate(120_000, st.Wishlist)

	ApplyAllocation(st, rows, time.Now())
	ApplyAllocation(st, rows, time.Now())

	if got := st.Item(1).Current; got != 200_000 {
		t.Errorf("item 1 current after double apply = %d, want 200000", got)
	}
	if len(st.Transactions) != 2 {
		t.Errorf("got %d transactions, want 2", len(st.Transactions))
	}
}

func TestRecordDeposit(t *testing.T) {
	st := testState(t)
	now := time.Date(2026, 8, 3, 18, 30, 0, 0, time.UTC)

	if err := RecordDeposit(st, 2, 50_000, "보너스", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := st.Item(2).Current; got != 50_000 {
		t.Errorf("item 2 current = %d, want 50000", got)
	}
	if len(st.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(st.Transactions))
	}
	tx := st.Transactions[0]
	if tx.Type != model.TxManualDeposit || tx.Amount != 50_000 || tx.ItemID != 2 || tx.Memo != "보너스" {
		t.Errorf("transaction = %+v", tx)
	}
}

func TestRecordDeposit_UnknownItemRejected(t *testing.T) {
	st := testState(t)

	err := RecordDeposit(st, 99, 10_000, "", time.Now())

	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
	// Rejected deposits leave no orphaned transaction behind.
	if len(st.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(st.Transactions))
	}
	if got := st.TotalSaved(); got != 0 {
		t.Errorf("total saved = %d, want 0", got)
	}
}

func TestRecordDeposit_NegativeAmountRejected(t *testing.T) {
	st := testState(t)
	if err := RecordDeposit(st, 1, -1, "", time.Now()); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("err = %v, want ErrNegativeAmount", err)
	}
}

func TestAddItem_MonotonicIDs(t *testing.T) {
	st := model.DefaultState()
	now := time.Now()

	a := AddItem(st, "a", 100, 1, 1, now)
	b := AddItem(st, "b", 100, 1, 2, now)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID, b.ID)
	}

	// Even with an item gone, the counter never hands out its id again.
	st.Wishlist = st.Wishlist[:1]
	c := AddItem(st, "c", 100, 1, 3, now)
	if c.ID != 3 {
		t.Errorf("id after removal = %d, want 3 (no reuse)", c.ID)
	}
}

func TestAddItem_CoercesMonths(t *testing.T) {
	st := model.DefaultState()
	it := AddItem(st, "x", 100, 0, 1, time.Now())
	if it.Months != 1 {
		t.Errorf("months = %d, want 1", it.Months)
	}
}

func TestFilterTransactions(t *testing.T) {
	st := testState(t)
	now := time.Now()
	rows, _ := Allocate(50_000, st.Wishlist)
	ApplyAllocation(st, rows, now)
	if err := RecordDeposit(st, 2, 10_000, "", now); err != nil {
		t.Fatal(err)
	}
	if err := RecordDeposit(st, 1, 20_000, "", now); err != nil {
		t.Fatal(err)
	}

	all := FilterTransactions(st.Transactions, TxFilter{})
	if len(all) != 3 {
		t.Fatalf("got %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Type != model.TxManualDeposit || all[0].ItemID != 1 {
		t.Errorf("all[0] = %+v, want the last deposit", all[0])
	}

	deposits := FilterTransactions(st.Transactions, TxFilter{Type: model.TxManualDeposit})
	if len(deposits) != 2 {
		t.Errorf("got %d deposits, want 2", len(deposits))
	}

	// Item filter catches both the deposit and the allocation that
	// funded item 1.
	item1 := FilterTransactions(st.Transactions, TxFilter{ItemID: 1})
	if len(item1) != 2 {
		t.Errorf("got %d for item 1, want 2", len(item1))
	}

	limited := FilterTransactions(st.Transactions, TxFilter{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("got %d with limit 1, want 1", len(limited))
	}
}
