// Package allocation implements value-density greedy selection under a
// capacity constraint. Both the financial intervention optimizer and the
// incentive portfolio optimizer funnel through it so the two call sites
// cannot drift.
package allocation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Candidate is one selectable item: a cost against the budget and a
// priority used for ranking.
type Candidate struct {
	Cost     decimal.Decimal
	Priority float64
}

// Select ranks candidates by priority descending (stable, so input order
// breaks ties) and greedily accepts each candidate the remaining budget
// can cover, deducting its cost on acceptance. A candidate that does not
// fit is skipped, not a stopping condition. Returns the indexes of
// accepted candidates in selection order.
func Select(budget decimal.Decimal, candidates []Candidate) []int {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].Priority > candidates[order[b]].Priority
	})

	remaining := budget
	var selected []int
	for _, idx := range order {
		cost := candidates[idx].Cost
		if remaining.GreaterThanOrEqual(cost) {
			selected = append(selected, idx)
			remaining = remaining.Sub(cost)
		}
	}
	return selected
}
