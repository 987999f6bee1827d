// Package model defines the persistent planner data model.
package model

import "time"

// TxType identifies a transaction record kind.
type TxType string

const (
	TxMonthlyAlloc  TxType = "monthly_alloc"
	TxManualDeposit TxType = "manual_deposit"
)

// priorityUnset is the effective priority for items with no priority
// value. They sort after every real priority (1 is highest, 5 lowest).
const priorityUnset = 999

// Profile holds one month's recurring cash-flow plan. All amounts are
// whole currency units (won) and never negative.
type Profile struct {
	Income        int64 `json:"income"`
	FixedExpenses int64 `json:"fixed_expenses"`
	SavingInvest  int64 `json:"saving_invest"`
	Emergency     int64 `json:"emergency"`
}

// WishlistItem is one savings goal.
type WishlistItem struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Target   int64     `json:"target"`
	Months   int64     `json:"months"`
	Current  int64     `json:"current"`
	Priority int       `json:"priority,omitempty"`
	Created  time.Time `json:"created"`
}

// SortPriority resolves the allocation ordering key for the item.
// Items carrying no priority (or a non-positive one from an old data
// file) are served after every explicitly prioritized item.
func (it WishlistItem) SortPriority() int {
	if it.Priority < 1 {
		return priorityUnset
	}
	return it.Priority
}

// Progress returns the achievement ratio in [0, 1].
func (it WishlistItem) Progress() float64 {
	if it.Target <= 0 {
		return 0
	}
	pct := float64(it.Current) / float64(it.Target)
	if pct > 1 {
		pct = 1
	}
	return pct
}

// Achieved reports whether the item has reached its target.
func (it WishlistItem) Achieved() bool {
	return it.Target > 0 && it.Current >= it.Target
}

// Allocation is one row of an allocation cycle result: how much of the
// item's monthly need was assigned from the usable budget.
type Allocation struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Assigned int64  `json:"assigned"`
	Need     int64  `json:"need"`
}

// Transaction is one append-only ledger record. The payload depends on
// Type: monthly_alloc carries the full allocation result in Alloc,
// manual_deposit carries Amount, ItemID and Memo.
type Transaction struct {
	TS     time.Time    `json:"ts"`
	Type   TxType       `json:"type"`
	Alloc  []Allocation `json:"alloc,omitempty"`
	Amount int64        `json:"amount,omitempty"`
	ItemID int64        `json:"item_id,omitempty"`
	Memo   string       `json:"memo,omitempty"`
}

// AppState is the single persisted root object.
type AppState struct {
	Profile      Profile        `json:"profile"`
	Wishlist     []WishlistItem `json:"wishlist"`
	Transactions []Transaction  `json:"transactions"`
	// NextID is a monotonic item id counter. Unlike a max+1 scheme it
	// never reuses an id, even if item deletion is added later.
	NextID int64 `json:"next_id"`
}

// DefaultState returns the zeroed first-run state.
func DefaultState() *AppState {
	return &AppState{
		Wishlist:     []WishlistItem{},
		Transactions: []Transaction{},
		NextID:       1,
	}
}

// Normalize applies default-resolution rules once after load, so read
// sites never have to deal with absent or zero-valued fields:
// nil slices become empty (keeping the serialized form stable), item
// months are coerced to at least 1, and NextID is seeded past the
// highest existing id for files written before the counter existed.
func (st *AppState) Normalize() {
	if st.Wishlist == nil {
		st.Wishlist = []WishlistItem{}
	}
	if st.Transactions == nil {
		st.Transactions = []Transaction{}
	}
	for i := range st.Wishlist {
		if st.Wishlist[i].Months < 1 {
			st.Wishlist[i].Months = 1
		}
	}
	var maxID int64
	for _, it := range st.Wishlist {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	if st.NextID <= maxID {
		st.NextID = maxID + 1
	}
	if st.NextID < 1 {
		st.NextID = 1
	}
}

// Item returns a pointer to the wishlist item with the given id, or nil.
func (st *AppState) Item(id int64) *WishlistItem {
	for i := range st.Wishlist {
		if st.Wishlist[i].ID == id {
			return &st.Wishlist[i]
		}
	}
	return nil
}

// TotalSaved sums accumulated savings across the wishlist.
func (st *AppState) TotalSaved() int64 {
	var total int64
	for _, it := range st.Wishlist {
		total += it.Current
	}
	return total
}
