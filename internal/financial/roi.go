package financial

import (
	"github.com/shopspring/decimal"

	"wellness-engine/internal/allocation"
	"wellness-engine/internal/model"
)

// DefaultAdherence is the assumed completion probability when the caller
// supplies none.
const DefaultAdherence = 0.7

// paybackNeverMonths is the sentinel payback period when an intervention
// avoids no cost at all.
const paybackNeverMonths = 999.9

// InterventionROI projects the multi-year return of one intervention for
// one member. Benefits decay 80% per year and discount at the annual rate
// over a 3-year horizon.
func (e *Engine) InterventionROI(member model.MemberFinancialProfile, interventionType model.InterventionType, cost decimal.Decimal, expectedRiskReduction, expectedAdherence float64) model.InterventionROI {
	annualAvoidance := e.costPerRiskPoint.Mul(decimal.NewFromFloat(expectedRiskReduction))

	retention := decimal.NewFromFloat(0.80)
	one := decimal.NewFromInt(1)
	npv := decimal.Zero
	for year := int64(1); year <= 3; year++ {
		yearBenefit := annualAvoidance.Mul(retention.Pow(decimal.NewFromInt(year - 1)))
		discountFactor := one.Add(e.discountRate).Pow(decimal.NewFromInt(year))
		npv = npv.Add(yearBenefit.Div(discountFactor))
	}
	npv = npv.Sub(cost)

	var roiPct float64
	if cost.IsPositive() {
		roiPct, _ = npv.Div(cost).Mul(decimal.NewFromInt(100)).Float64()
	}

	paybackMonths := paybackNeverMonths
	if annualAvoidance.IsPositive() {
		paybackMonths, _ = cost.Div(annualAvoidance).Mul(decimal.NewFromInt(12)).Float64()
	}

	expectedValue := npv.Mul(decimal.NewFromFloat(expectedAdherence))

	priority, _ := expectedValue.Div(cost.Add(one)).Float64()
	priority *= expectedAdherence

	return model.InterventionROI{
		InterventionType:       interventionType,
		MemberID:               member.MemberID,
		InterventionCost:       cost,
		RiskScoreReduction:     expectedRiskReduction,
		EstimatedCostAvoidance: annualAvoidance,
		ROIPercentage:          roiPct,
		PaybackPeriodMonths:    paybackMonths,
		NetPresentValue:        npv.Round(2),
		SuccessProbability:     expectedAdherence,
		ExpectedValue:          expectedValue.Round(2),
		PriorityScore:          priority,
	}
}

// OptimizeInterventionBudget picks the interventions with the highest
// expected value per dollar until the budget binds. Candidates below the
// ROI threshold or with nonpositive expected value never qualify. An
// exhausted budget truncates silently; it is not an error.
func (e *Engine) OptimizeInterventionBudget(availableBudget decimal.Decimal, candidates []model.InterventionROI) []model.InterventionROI {
	var eligible []model.InterventionROI
	var items []allocation.Candidate
	for _, c := range candidates {
		if c.ROIPercentage >= e.roiThreshold*100 && c.ExpectedValue.IsPositive() {
			eligible = append(eligible, c)
			items = append(items, allocation.Candidate{Cost: c.InterventionCost, Priority: c.PriorityScore})
		}
	}

	var selected []model.InterventionROI
	for _, idx := range allocation.Select(availableBudget, items) {
		selected = append(selected, eligible[idx])
	}
	return selected
}
