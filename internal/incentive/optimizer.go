// Package incentive allocates a constrained wellness incentive budget
// across members: pick who to target, which behavior to reward, how much
// to pay, and which offers make the final budget-feasible portfolio.
package incentive

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wellness-engine/internal/allocation"
	"wellness-engine/internal/model"
)

// Optimizer runs one portfolio optimization against a fixed budget. The
// remaining-budget accumulator lives inside a single OptimizePortfolio
// call; concurrent runs must use independent budget snapshots.
type Optimizer struct {
	budget           model.IncentiveBudget
	costPerRiskPoint decimal.Decimal

	// now is injection point for offer dating in tests.
	now func() time.Time
}

// NewOptimizer binds an optimizer to a budget and the dollars-per-risk-
// point benchmark.
func NewOptimizer(budget model.IncentiveBudget, costPerRiskPoint decimal.Decimal) *Optimizer {
	return &Optimizer{
		budget:           budget,
		costPerRiskPoint: costPerRiskPoint,
		now:              time.Now,
	}
}

// RankTargets orders members by incentive value: predicted cost scaled by
// risk, responsiveness, spare engagement capacity, and a discount for
// members who would act anyway.
func (o *Optimizer) RankTargets(members []model.MemberTarget, responsiveness map[string]model.MemberResponsiveness) []string {
	type scored struct {
		memberID string
		value    float64
	}

	ranked := make([]scored, 0, len(members))
	for _, m := range members {
		resp := responsivenessFor(responsiveness, m.MemberID)

		riskFactor := m.CurrentRiskScore / 100
		responseFactor := resp.IncentiveResponseRate

		engagementFactor := 1.0
		if m.ActiveProgramCount > 0 {
			engagementFactor = 0.5
		}

		// Paying self-motivated members buys behavior that would happen anyway.
		motivationFactor := 1.0
		if resp.SelfMotivated {
			motivationFactor = 0.3
		}

		cost, _ := m.PredictedAnnualCost.Float64()
		ranked = append(ranked, scored{
			memberID: m.MemberID,
			value:    cost * riskFactor * responseFactor * engagementFactor * motivationFactor,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].value > ranked[b].value
	})

	ids := make([]string, len(ranked))
	for i, s := range ranked {
		ids[i] = s.memberID
	}
	return ids
}

// RecommendBehavior picks the behavior to incentivize by mapping the
// member's top 3 risk factors to behavior categories and summing
// contribution points per candidate. With no mapped factor it falls back
// to preventive screening for overdue checkups, otherwise activity goals.
func (o *Optimizer) RecommendBehavior(member model.MemberTarget, factors []model.RiskFactorContribution) model.BehaviorCategory {
	scores := make(map[model.BehaviorCategory]float64)

	for i, f := range factors {
		if i == 3 {
			break
		}
		if behavior, ok := behaviorByFactorKey[f.FactorKey]; ok {
			scores[behavior] += f.ContributionPoints
		}
	}

	if len(scores) == 0 {
		if member.LastCheckupDaysAgo > 365 {
			return model.BehaviorPreventiveScreening
		}
		return model.BehaviorActivityGoals
	}

	// Highest score wins; break ties on category name for determinism.
	var best model.BehaviorCategory
	bestScore := -1.0
	for behavior, score := range scores {
		if score > bestScore || (score == bestScore && behavior < best) {
			best = behavior
			bestScore = score
		}
	}
	return best
}

// OptimalIncentive sizes the incentive: the member's minimum effective
// amount scaled by behavior difficulty, capped so the ROI floor stays
// structurally satisfiable, capped again by the per-member limit, then
// rounded to the nearest $5.
func (o *Optimizer) OptimalIncentive(resp model.MemberResponsiveness, behavior model.BehaviorCategory, expectedCostAvoidance decimal.Decimal) (model.IncentiveType, decimal.Decimal) {
	multiplier, ok := difficultyMultipliers[behavior]
	if !ok {
		multiplier = decimal.NewFromInt(1)
	}
	amount := resp.MinimumEffectiveIncentiveAmount.Mul(multiplier)

	// ROI = (avoidance - cost) / cost, so cost must stay under
	// avoidance / (1 + min_roi).
	maxAffordable := expectedCostAvoidance.Div(decimal.NewFromInt(1).Add(decimal.NewFromFloat(o.budget.MinROIThreshold)))
	if amount.GreaterThan(maxAffordable) {
		amount = maxAffordable
	}
	if amount.GreaterThan(o.budget.MaxPerMemberPerPeriod) {
		amount = o.budget.MaxPerMemberPerPeriod
	}

	// Round to the nearest $5.
	five := decimal.NewFromInt(5)
	amount = amount.Div(five).Round(0).Mul(five)

	if len(resp.PreferredIncentiveTypes) > 0 {
		return resp.PreferredIncentiveTypes[0], amount
	}
	switch {
	case amount.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return model.IncentivePremiumReduction, amount
	case amount.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return model.IncentiveCashReward, amount
	default:
		return model.IncentiveHSAContribution, amount
	}
}

// BuildOffer assembles the complete offer for one member and behavior,
// stamped with a 30-day acceptance window.
func (o *Optimizer) BuildOffer(memberID string, resp model.MemberResponsiveness, behavior model.BehaviorCategory, incentiveType model.IncentiveType, amount decimal.Decimal) model.IncentiveOffer {
	goal := goalDefinitions[behavior]

	healthImpact := behaviorHealthImpact[behavior]
	costAvoidance := o.costPerRiskPoint.Mul(decimal.NewFromFloat(healthImpact))

	difficulty, ok := completionDifficulty[behavior]
	if !ok {
		difficulty = defaultCompletionDifficulty
	}
	probability := resp.IncentiveResponseRate * difficulty

	expectedBenefit := costAvoidance.Mul(decimal.NewFromFloat(probability))

	var roi, priority float64
	if amount.IsPositive() {
		roi, _ = expectedBenefit.Sub(amount).Div(amount).Mul(decimal.NewFromInt(100)).Float64()
		benefit, _ := expectedBenefit.Float64()
		cost, _ := amount.Float64()
		priority = benefit * probability / cost
	}

	offerDate := o.now().UTC()
	expiration := offerDate.AddDate(0, 0, 30)

	return model.IncentiveOffer{
		OfferID:                 "INC-" + uuid.New().String(),
		MemberID:                memberID,
		BehaviorCategory:        behavior,
		BehaviorDescription:     goal.description,
		IncentiveType:           incentiveType,
		IncentiveAmount:         amount,
		GoalMetric:              goal.metric,
		GoalTarget:              goal.target,
		GoalDurationDays:        goal.durationDays,
		OfferDate:               offerDate.Format("2006-01-02"),
		ExpirationDate:          expiration.Format("2006-01-02"),
		ProbabilityOfCompletion: probability,
		ExpectedHealthImpact:    healthImpact,
		ExpectedCostAvoidance:   costAvoidance,
		IncentiveCost:           amount,
		ExpectedROI:             roi,
		PriorityScore:           priority,
		Status:                  model.OfferOffered,
	}
}

// OptimizePortfolio runs the full pipeline: rank targets, pick a behavior
// and incentive per member, drop candidates below the ROI floor, then
// greedily select by priority within the available budget. An exhausted
// budget truncates the portfolio silently.
func (o *Optimizer) OptimizePortfolio(members []model.MemberTarget, responsiveness map[string]model.MemberResponsiveness, riskFactors map[string][]model.RiskFactorContribution) []model.IncentiveOffer {
	byID := make(map[string]model.MemberTarget, len(members))
	for _, m := range members {
		byID[m.MemberID] = m
	}

	var candidates []model.IncentiveOffer
	for _, memberID := range o.RankTargets(members, responsiveness) {
		member := byID[memberID]
		resp := responsivenessFor(responsiveness, memberID)

		behavior := o.RecommendBehavior(member, riskFactors[memberID])

		costAvoidance := o.costPerRiskPoint.Mul(decimal.NewFromFloat(behaviorHealthImpact[behavior]))
		incentiveType, amount := o.OptimalIncentive(resp, behavior, costAvoidance)

		offer := o.BuildOffer(memberID, resp, behavior, incentiveType, amount)
		if offer.ExpectedROI >= o.budget.MinROIThreshold*100 {
			candidates = append(candidates, offer)
		}
	}

	items := make([]allocation.Candidate, len(candidates))
	for i, c := range candidates {
		items[i] = allocation.Candidate{Cost: c.IncentiveCost, Priority: c.PriorityScore}
	}

	var selected []model.IncentiveOffer
	for _, idx := range allocation.Select(o.budget.Available(), items) {
		selected = append(selected, candidates[idx])
	}
	return selected
}

func responsivenessFor(responsiveness map[string]model.MemberResponsiveness, memberID string) model.MemberResponsiveness {
	if resp, ok := responsiveness[memberID]; ok {
		return resp
	}
	// Unknown members get the neutral default profile.
	return model.MemberResponsiveness{
		MemberID:                        memberID,
		IncentiveResponseRate:           0.5,
		NeedsNudging:                    true,
		MinimumEffectiveIncentiveAmount: decimal.NewFromInt(25),
	}
}
