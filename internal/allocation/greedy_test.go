package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSelectPrefersHigherPriority(t *testing.T) {
	budget := decimal.NewFromInt(1000)
	candidates := []Candidate{
		{Cost: decimal.NewFromInt(600), Priority: 3.0},
		{Cost: decimal.NewFromInt(700), Priority: 2.5},
	}

	selected := Select(budget, candidates)

	// Both together exceed the budget; only the higher-priority candidate
	// fits, and the second no longer does.
	if len(selected) != 1 || selected[0] != 0 {
		t.Fatalf("expected [0], got %v", selected)
	}
}

func TestSelectSkipsUnaffordableWithoutStopping(t *testing.T) {
	budget := decimal.NewFromInt(1000)
	candidates := []Candidate{
		{Cost: decimal.NewFromInt(900), Priority: 3.0},
		{Cost: decimal.NewFromInt(2000), Priority: 2.0},
		{Cost: decimal.NewFromInt(100), Priority: 1.0},
	}

	selected := Select(budget, candidates)

	if len(selected) != 2 || selected[0] != 0 || selected[1] != 2 {
		t.Fatalf("expected [0 2], got %v", selected)
	}
}

func TestSelectTieBreaksOnInputOrder(t *testing.T) {
	budget := decimal.NewFromInt(300)
	candidates := []Candidate{
		{Cost: decimal.NewFromInt(100), Priority: 1.0},
		{Cost: decimal.NewFromInt(100), Priority: 1.0},
		{Cost: decimal.NewFromInt(100), Priority: 1.0},
	}

	selected := Select(budget, candidates)

	if len(selected) != 3 {
		t.Fatalf("expected 3 selections, got %d", len(selected))
	}
	for i, idx := range selected {
		if idx != i {
			t.Fatalf("ties must keep input order: got %v", selected)
		}
	}
}

func TestSelectNeverExceedsBudget(t *testing.T) {
	budget := decimal.NewFromInt(250)
	candidates := []Candidate{
		{Cost: decimal.NewFromInt(100), Priority: 5.0},
		{Cost: decimal.NewFromInt(100), Priority: 4.0},
		{Cost: decimal.NewFromInt(100), Priority: 3.0},
		{Cost: decimal.NewFromInt(50), Priority: 2.0},
	}

	selected := Select(budget, candidates)

	total := decimal.Zero
	for _, idx := range selected {
		total = total.Add(candidates[idx].Cost)
	}
	if total.GreaterThan(budget) {
		t.Fatalf("selection cost %s exceeds budget %s", total, budget)
	}
	if len(selected) != 3 || selected[2] != 3 {
		t.Fatalf("expected the $50 candidate to backfill, got %v", selected)
	}
}

func TestSelectEmptyAndZeroBudget(t *testing.T) {
	if got := Select(decimal.NewFromInt(100), nil); len(got) != 0 {
		t.Fatalf("expected no selections for no candidates, got %v", got)
	}

	candidates := []Candidate{{Cost: decimal.NewFromInt(10), Priority: 1.0}}
	if got := Select(decimal.Zero, candidates); len(got) != 0 {
		t.Fatalf("expected no selections on zero budget, got %v", got)
	}

	// Free candidates always fit.
	free := []Candidate{{Cost: decimal.Zero, Priority: 1.0}}
	if got := Select(decimal.Zero, free); len(got) != 1 {
		t.Fatalf("expected zero-cost candidate to be selected, got %v", got)
	}
}
