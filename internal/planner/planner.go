// Package planner implements the allocation engine and wishlist ledger.
//
// All money math is integer arithmetic over whole currency units.
// Deficits never surface as negative numbers or errors: usable cash and
// monthly need are explicitly clamped at zero.
package planner

import (
	"sort"

	"wishplan/internal/model"
)

// clampZero floors v at zero: expenses exceeding income mean zero
// usable cash, and an overfunded item means zero remaining need.
func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// CalculateUsable returns the monthly cash left after fixed expenses,
// savings/investments and the emergency fund, floored at zero.
func CalculateUsable(p model.Profile) int64 {
	return clampZero(p.Income - (p.FixedExpenses + p.SavingInvest + p.Emergency))
}

// MonthlyNeed returns how much the item needs per month to hit its
// target on schedule: (target - current) / months, truncating toward
// zero. Months below 1 count as 1. Recomputed on every call, never
// cached, so a deposit immediately lowers the need.
func MonthlyNeed(it model.WishlistItem) int64 {
	months := it.Months
	if months < 1 {
		months = 1
	}
	return clampZero((it.Target - it.Current) / months)
}

// Allocate distributes usable cash across the wishlist in priority
// order (1 first, unset priorities last; equal priorities keep their
// original relative order). Each item gets min(need, remaining).
//
// Iteration stops the moment the budget reaches zero, after recording
// the row that exhausted it. Items beyond that point get no row at all,
// not even a zero-assigned one. Returns the rows and the unassigned
// rest.
func Allocate(usable int64, wishlist []model.WishlistItem) ([]model.Allocation, int64) {
	items := make([]model.WishlistItem, len(wishlist))
	copy(items, wishlist)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortPriority() < items[j].SortPriority()
	})

	var rows []model.Allocation
	remaining := usable
	for _, it := range items {
		need := MonthlyNeed(it)
		assigned := need
		if assigned > remaining {
			assigned = remaining
		}
		rows = append(rows, model.Allocation{
			ID:       it.ID,
			Name:     it.Name,
			Assigned: assigned,
			Need:     need,
		})
		remaining -= assigned
		if remaining <= 0 {
			break
		}
	}
	return rows, remaining
}

// EstMonthsLeft estimates how many months of allocation remain until
// the item hits its target at its current monthly need. Returns 0 for
// achieved items.
func EstMonthsLeft(it model.WishlistItem) float64 {
	if it.Achieved() {
		return 0
	}
	need := MonthlyNeed(it)
	if need < 1 {
		need = 1
	}
	return float64(it.Target-it.Current) / float64(need)
}
