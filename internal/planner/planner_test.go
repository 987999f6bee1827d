package planner

import (
	"testing"

	"wishplan/internal/model"
)

func TestCalculateUsable(t *testing.T) {
	cases := []struct {
		name string
		p    model.Profile
		want int64
	}{
		{"typical month", model.Profile{Income: 2_000_000, FixedExpenses: 500_000, SavingInvest: 550_000, Emergency: 60_000}, 890_000},
		{"zero profile", model.Profile{}, 0},
		{"expenses exceed income clamps to zero", model.Profile{Income: 100_000, FixedExpenses: 80_000, SavingInvest: 50_000}, 0},
		{"exact break-even", model.Profile{Income: 300_000, FixedExpenses: 100_000, SavingInvest: 150_000, Emergency: 50_000}, 0},
		{"no commitments", model.Profile{Income: 1_000_000}, 1_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateUsable(tc.p); got != tc.want {
				t.Errorf("CalculateUsable = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMonthlyNeed(t *testing.T) {
	cases := []struct {
		name string
		it   model.WishlistItem
		want int64
	}{
		{"even split", model.WishlistItem{Target: 400_000, Current: 100_000, Months: 3}, 100_000},
		{"truncates toward zero", model.WishlistItem{Target: 400_000, Current: 150_000, Months: 3}, 83_333},
		{"zero months treated as one", model.WishlistItem{Target: 200_000, Months: 0}, 200_000},
		{"target met yields zero", model.WishlistItem{Target: 100_000, Current: 100_000, Months: 4}, 0},
		{"overfunded clamps to zero", model.WishlistItem{Target: 100_000, Current: 150_000, Months: 4}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthlyNeed(tc.it); got != tc.want {
				t.Errorf("MonthlyNeed = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMonthlyNeed_RecomputedAfterDeposit(t *testing.T) {
	it := model.WishlistItem{Target: 400_000, Current: 100_000, Months: 3}
	if got := MonthlyNeed(it); got != 100_000 {
		t.Fatalf("need before deposit = %d, want 100000", got)
	}
	it.Current += 50_000
	if got := MonthlyNeed(it); got != 83_333 {
		t.Errorf("need after deposit = %d, want 83333 (not cached)", got)
	}
}

func TestAllocate_PriorityOrderAndEarlyExit(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 1, Name: "headphones", Priority: 2, Target: 100, Months: 1},
		{ID: 2, Name: "keyboard", Priority: 1, Target: 50, Months: 1},
		{ID: 3, Name: "monitor", Priority: 2, Target: 80, Months: 1},
	}

	rows, remaining := Allocate(120, wishlist)

	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
	// id 2 (priority 1) first, then id 1; id 3 never appears because the
	// budget hits zero on id 1.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (id 3 must be absent entirely)", len(rows))
	}
	if rows[0].ID != 2 || rows[0].Assigned != 50 {
		t.Errorf("rows[0] = %+v, want id 2 assigned 50", rows[0])
	}
	if rows[1].ID != 1 || rows[1].Assigned != 70 || rows[1].Need != 100 {
		t.Errorf("rows[1] = %+v, want id 1 assigned 70 of need 100", rows[1])
	}
}

func TestAllocate_StableForEqualPriority(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 10, Name: "first", Priority: 3, Target: 100, Months: 1},
		{ID: 11, Name: "second", Priority: 3, Target: 100, Months: 1},
	}

	rows, _ := Allocate(100, wishlist)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	// Insertion order breaks the tie, so the earlier item drains the
	// whole budget.
	if rows[0].ID != 10 || rows[0].Assigned != 100 {
		t.Errorf("rows[0] = %+v, want id 10 fully funded", rows[0])
	}
}

func TestAllocate_MissingPrioritySortsLast(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 1, Name: "no priority", Target: 100, Months: 1},
		{ID: 2, Name: "low priority", Priority: 5, Target: 100, Months: 1},
	}

	rows, remaining := Allocate(150, wishlist)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != 2 {
		t.Errorf("rows[0].ID = %d, want 2 (priority 5 beats unset)", rows[0].ID)
	}
	if rows[1].ID != 1 || rows[1].Assigned != 50 {
		t.Errorf("rows[1] = %+v, want id 1 assigned the leftover 50", rows[1])
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
}

func TestAllocate_ZeroBudgetRecordsOnlyFirstItem(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 1, Name: "a", Priority: 1, Target: 100, Months: 1},
		{ID: 2, Name: "b", Priority: 2, Target: 100, Months: 1},
	}

	rows, remaining := Allocate(0, wishlist)

	// Zero budget still previews the top-priority item (assigned 0),
	// then stops.
	if len(rows) != 1 || rows[0].ID != 1 || rows[0].Assigned != 0 {
		t.Errorf("rows = %+v, want single zero-assigned row for id 1", rows)
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
}

func TestAllocate_BudgetSurplus(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 1, Name: "a", Priority: 1, Target: 60_000, Months: 2},
		{ID: 2, Name: "b", Priority: 2, Target: 40_000, Months: 4},
	}

	rows, remaining := Allocate(100_000, wishlist)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Assigned != 30_000 || rows[1].Assigned != 10_000 {
		t.Errorf("assignments = %d, %d, want 30000, 10000", rows[0].Assigned, rows[1].Assigned)
	}
	if remaining != 60_000 {
		t.Errorf("remaining = %d, want 60000", remaining)
	}
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	wishlist := []model.WishlistItem{
		{ID: 1, Name: "b", Priority: 2, Target: 100, Months: 1},
		{ID: 2, Name: "a", Priority: 1, Target: 100, Months: 1},
	}

	Allocate(500, wishlist)

	if wishlist[0].ID != 1 || wishlist[1].ID != 2 {
		t.Error("Allocate reordered the caller's wishlist slice")
	}
}

func TestEstMonthsLeft(t *testing.T) {
	it := model.WishlistItem{Target: 400_000, Current: 100_000, Months: 3}
	if got := EstMonthsLeft(it); got != 3.0 {
		t.Errorf("EstMonthsLeft = %v, want 3.0", got)
	}

	done := model.WishlistItem{Target: 100_000, Current: 100_000, Months: 3}
	if got := EstMonthsLeft(done); got != 0 {
		t.Errorf("EstMonthsLeft for achieved item = %v, want 0", got)
	}
}
