// Package financial implements the pool-level money math: savings
// measurement and split, member rebates, premium adjustment, intervention
// ROI, budget optimization, and P&L forecasting. Every function is pure;
// currency is decimal throughout and rounded half-up only at the point of
// external visibility.
package financial

import (
	"time"

	"github.com/shopspring/decimal"

	"wellness-engine/internal/model"
)

// Engine holds the business-model constants.
type Engine struct {
	companyProfitShare decimal.Decimal // 70% of savings
	memberRebateShare  decimal.Decimal // 30% returned to members

	reserveSafetyFactor  decimal.Decimal
	minimumReserveMonths int64

	maxAnnualPremiumIncrease decimal.Decimal
	maxAnnualPremiumDecrease decimal.Decimal

	discountRate decimal.Decimal // annual, for NPV
	roiThreshold float64         // minimum ROI multiple for approval

	nationalAvgAnnualCost decimal.Decimal
	costPerRiskPoint      decimal.Decimal
}

// NewEngine returns an engine with the standard business parameters and
// the given actuarial benchmarks.
func NewEngine(nationalAvgAnnualCost, costPerRiskPoint decimal.Decimal) *Engine {
	return &Engine{
		companyProfitShare:       decimal.NewFromFloat(0.70),
		memberRebateShare:        decimal.NewFromFloat(0.30),
		reserveSafetyFactor:      decimal.NewFromFloat(1.35),
		minimumReserveMonths:     3,
		maxAnnualPremiumIncrease: decimal.NewFromFloat(0.15),
		maxAnnualPremiumDecrease: decimal.NewFromFloat(0.20),
		discountRate:             decimal.NewFromFloat(0.08),
		roiThreshold:             1.5,
		nationalAvgAnnualCost:    nationalAvgAnnualCost,
		costPerRiskPoint:         costPerRiskPoint,
	}
}

// PoolMetrics aggregates premiums, claims, intervention spend and the risk
// distribution across the pool. Fails on an empty member list.
func (e *Engine) PoolMetrics(members []model.MemberFinancialProfile, riskCategories map[string]model.RiskCategory) (*model.RiskPoolMetrics, error) {
	if len(members) == 0 {
		return nil, ErrEmptyPopulation
	}

	var totalPremiums, totalClaims, totalInterventions, totalPredicted decimal.Decimal
	var totalMonths int64
	for _, m := range members {
		totalPremiums = totalPremiums.Add(m.MonthlyPremium)
		totalClaims = totalClaims.Add(m.ActualCostsYTD)
		totalInterventions = totalInterventions.Add(m.InterventionCostsYTD)
		totalPredicted = totalPredicted.Add(m.PredictedCostsAtEnrollment)
		totalMonths += int64(m.MonthsEnrolled)
	}

	var low, moderate, high, critical int
	for _, category := range riskCategories {
		switch category {
		case model.RiskLow:
			low++
		case model.RiskModerate:
			moderate++
		case model.RiskHigh:
			high++
		case model.RiskCritical:
			critical++
		}
	}

	actualSpend := totalClaims.Add(totalInterventions)
	savings := totalPredicted.Sub(actualSpend)
	var savingsPct float64
	if totalPredicted.IsPositive() {
		savingsPct, _ = savings.Div(totalPredicted).Mul(decimal.NewFromInt(100)).Float64()
	}

	if totalMonths < 1 {
		totalMonths = 1
	}
	avgMonthlyCost := totalClaims.Div(decimal.NewFromInt(totalMonths))
	requiredReserves := avgMonthlyCost.Mul(decimal.NewFromInt(e.minimumReserveMonths)).Mul(e.reserveSafetyFactor)

	avgCostPerMember := totalClaims.Div(decimal.NewFromInt(int64(len(members))))

	return &model.RiskPoolMetrics{
		TotalMembers:              len(members),
		TotalMonthlyPremiums:      totalPremiums,
		TotalReserves:             requiredReserves.Round(2),
		LowRiskCount:              low,
		ModerateRiskCount:         moderate,
		HighRiskCount:             high,
		CriticalRiskCount:         critical,
		TotalClaimsYTD:            totalClaims,
		TotalInterventionCostsYTD: totalInterventions,
		AverageCostPerMember:      avgCostPerMember.Round(2),
		SavingsYTD:                savings,
		SavingsPercentage:         savingsPct,
		CalculationDate:           time.Now().UTC().Format("2006-01-02"),
	}, nil
}

// DistributeSavings splits net savings between the company and the member
// rebate pool. Nonpositive savings distribute nothing: no negative rebates.
func (e *Engine) DistributeSavings(predictedCosts, actualClaims, interventionCosts decimal.Decimal) (savings, companyProfit, memberRebates decimal.Decimal) {
	savings = predictedCosts.Sub(actualClaims).Sub(interventionCosts)
	if !savings.IsPositive() {
		return savings, decimal.Zero, decimal.Zero
	}
	companyProfit = savings.Mul(e.companyProfitShare).Round(2)
	memberRebates = savings.Mul(e.memberRebateShare).Round(2)
	return savings, companyProfit, memberRebates
}

// MemberRebate computes one member's share of the rebate pool, weighted
// 50% premium contribution, 30% health improvement, 20% program
// participation. Zero pool savings or zero pool premiums yield zero.
func (e *Engine) MemberRebate(member model.MemberFinancialProfile, totalPoolSavings, totalPoolPremiums decimal.Decimal) decimal.Decimal {
	if !totalPoolSavings.IsPositive() || !totalPoolPremiums.IsPositive() {
		return decimal.Zero
	}

	rebatePool := totalPoolSavings.Mul(e.memberRebateShare)
	memberPremium := member.MonthlyPremium.Mul(decimal.NewFromInt(int64(member.MonthsEnrolled)))
	premiumRatio := memberPremium.Div(totalPoolPremiums)

	base := premiumRatio.Mul(rebatePool).Mul(decimal.NewFromFloat(0.50))

	improvement := (member.EnrollmentRiskScore - member.CurrentRiskScore) / 100
	if improvement < 0 {
		improvement = 0
	}
	improvementBonus := premiumRatio.Mul(rebatePool).Mul(decimal.NewFromFloat(0.30)).Mul(decimal.NewFromFloat(improvement))

	participationBonus := decimal.Zero
	if member.PreventionProgramParticipation {
		participationBonus = premiumRatio.Mul(rebatePool).Mul(decimal.NewFromFloat(0.20))
	}

	return base.Add(improvementBonus).Add(participationBonus).Round(2)
}

// PremiumAdjustment computes a member's new premium from four weighted
// signed factors, clamped to the annual change caps.
func (e *Engine) PremiumAdjustment(member model.MemberFinancialProfile, currentPremium decimal.Decimal, pool *model.RiskPoolMetrics) (decimal.Decimal, string) {
	// Factor 1: risk score change since enrollment (weight 0.40).
	riskChange := member.CurrentRiskScore - member.EnrollmentRiskScore
	adjustment := decimal.NewFromFloat(riskChange / 100).Mul(decimal.NewFromFloat(0.40))

	// Factor 2: pool performance tier (weight 0.30).
	var poolFactor decimal.Decimal
	switch {
	case pool.SavingsPercentage < -10: // pool losing money
		poolFactor = decimal.NewFromFloat(0.10)
	case pool.SavingsPercentage < 0:
		poolFactor = decimal.NewFromFloat(0.05)
	case pool.SavingsPercentage > 20: // pool doing very well
		poolFactor = decimal.NewFromFloat(-0.10)
	case pool.SavingsPercentage > 10:
		poolFactor = decimal.NewFromFloat(-0.05)
	}
	adjustment = adjustment.Add(poolFactor.Mul(decimal.NewFromFloat(0.30)))

	// Factor 3: individual cost experience tier (weight 0.20).
	memberPremium := member.MonthlyPremium.Mul(decimal.NewFromInt(int64(member.MonthsEnrolled)))
	var costFactor decimal.Decimal
	if memberPremium.IsPositive() {
		costRatio := member.ActualCostsYTD.Div(memberPremium)
		switch {
		case costRatio.GreaterThan(decimal.NewFromFloat(1.5)):
			costFactor = decimal.NewFromFloat(0.15)
		case costRatio.GreaterThan(decimal.NewFromFloat(1.0)):
			costFactor = decimal.NewFromFloat(0.08)
		case costRatio.LessThan(decimal.NewFromFloat(0.5)):
			costFactor = decimal.NewFromFloat(-0.15)
		}
	}
	adjustment = adjustment.Add(costFactor.Mul(decimal.NewFromFloat(0.20)))

	// Factor 4: regional medical inflation (weight 0.10).
	adjustment = adjustment.Add(decimal.NewFromFloat(0.03).Mul(decimal.NewFromFloat(0.10)))

	// Clamp to the annual caps.
	if adjustment.GreaterThan(e.maxAnnualPremiumIncrease) {
		adjustment = e.maxAnnualPremiumIncrease
	}
	if adjustment.LessThan(e.maxAnnualPremiumDecrease.Neg()) {
		adjustment = e.maxAnnualPremiumDecrease.Neg()
	}

	newPremium := currentPremium.Mul(decimal.NewFromInt(1).Add(adjustment)).Round(2)

	var reason string
	switch {
	case adjustment.GreaterThan(decimal.NewFromFloat(0.05)):
		reason = "Premium increased due to higher health risk and/or increased utilization"
	case adjustment.LessThan(decimal.NewFromFloat(-0.05)):
		reason = "Premium reduced due to improved health and excellent pool performance"
	default:
		reason = "Premium adjusted for medical inflation and market conditions"
	}

	return newPremium, reason
}
