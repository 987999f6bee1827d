package planner

import (
	"errors"
	"time"

	"wishplan/internal/model"
)

var (
	// ErrItemNotFound is returned when a deposit references an id that
	// is not in the wishlist. The deposit is rejected outright rather
	// than logged as an orphaned transaction.
	ErrItemNotFound = errors.New("wishlist item not found")

	// ErrNegativeAmount is returned for deposits below zero.
	ErrNegativeAmount = errors.New("deposit amount must not be negative")
)

// ApplyAllocation moves each positive assignment onto the matching
// item's accumulated savings and appends a monthly_alloc transaction
// carrying the full result. Items absent from the result are untouched.
//
// Applying the same result twice doubles the savings: each call stands
// for a distinct month's action, so the caller must not re-apply a
// result it already committed. The caller is also responsible for
// persisting the state afterward.
func ApplyAllocation(st *model.AppState, rows []model.Allocation, now time.Time) {
	assigned := make(map[int64]int64, len(rows))
	for _, row := range rows {
		if row.Assigned > 0 {
			assigned[row.ID] = row.Assigned
		}
	}
	for i := range st.Wishlist {
		if amt, ok := assigned[st.Wishlist[i].ID]; ok {
			st.Wishlist[i].Current += amt
		}
	}
	st.Transactions = append(st.Transactions, model.Transaction{
		TS:    now,
		Type:  model.TxMonthlyAlloc,
		Alloc: rows,
	})
}

// RecordDeposit adds an out-of-cycle amount to one item's savings and
// appends a manual_deposit transaction. The item id is validated first;
// nothing is logged when the deposit is rejected.
func RecordDeposit(st *model.AppState, itemID, amount int64, memo string, now time.Time) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	it := st.Item(itemID)
	if it == nil {
		return ErrItemNotFound
	}
	it.Current += amount
	st.Transactions = append(st.Transactions, model.Transaction{
		TS:     now,
		Type:   model.TxManualDeposit,
		Amount: amount,
		ItemID: itemID,
		Memo:   memo,
	})
	return nil
}

// AddItem appends a new wishlist item with the next monotonic id and
// zero savings. Months below 1 are stored as 1.
func AddItem(st *model.AppState, name string, target, months int64, priority int, now time.Time) model.WishlistItem {
	if months < 1 {
		months = 1
	}
	it := model.WishlistItem{
		ID:       st.NextID,
		Name:     name,
		Target:   target,
		Months:   months,
		Current:  0,
		Priority: priority,
		Created:  now,
	}
	st.NextID++
	st.Wishlist = append(st.Wishlist, it)
	return it
}

// TxFilter selects transactions for history views. Zero values match
// everything; Limit caps the result after filtering, keeping the most
// recent entries.
type TxFilter struct {
	Type   model.TxType
	ItemID int64
	Limit  int
}

// Matches reports whether the transaction passes the filter. Item
// filtering matches manual deposits to that item as well as allocation
// cycles that assigned it money.
func (f TxFilter) Matches(tx model.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.ItemID > 0 {
		if tx.Type == model.TxManualDeposit {
			return tx.ItemID == f.ItemID
		}
		for _, row := range tx.Alloc {
			if row.ID == f.ItemID && row.Assigned > 0 {
				return true
			}
		}
		return false
	}
	return true
}

// FilterTransactions returns matching transactions newest first. It is
// the in-memory fallback used when the SQLite archive is unavailable.
func FilterTransactions(txs []model.Transaction, f TxFilter) []model.Transaction {
	var out []model.Transaction
	for i := len(txs) - 1; i >= 0; i-- {
		if f.Matches(txs[i]) {
			out = append(out, txs[i])
			if f.Limit > 0 && len(out) >= f.Limit {
				break
			}
		}
	}
	return out
}
