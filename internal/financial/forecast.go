package financial

import (
	"fmt"

	"github.com/shopspring/decimal"

	"wellness-engine/internal/model"
)

// Fixed forecasting assumptions.
var (
	claimsTrendFactor  = decimal.NewFromFloat(1.03) // annual medical inflation
	interventionRatio  = decimal.NewFromFloat(0.06) // share of premium
	operatingRatio     = decimal.NewFromFloat(0.15)
	baselineCostRatio  = decimal.NewFromFloat(0.85) // expected costs absent interventions
	forecastVolatility = decimal.NewFromFloat(0.20)
)

// Forecast projects pool financials the given number of months forward:
// linear premium revenue, historical MLR trended by inflation for claims,
// fixed intervention and operating ratios, and a symmetric ±20%
// confidence band around profit.
func (e *Engine) Forecast(members []model.MemberFinancialProfile, pool *model.RiskPoolMetrics, monthsForward int) (*model.FinancialForecast, error) {
	if len(members) == 0 {
		return nil, ErrEmptyPopulation
	}

	projectedPremiums := pool.TotalMonthlyPremiums.Mul(decimal.NewFromInt(int64(monthsForward)))

	var totalPremiumsPaid decimal.Decimal
	for _, m := range members {
		totalPremiumsPaid = totalPremiumsPaid.Add(m.MonthlyPremium.Mul(decimal.NewFromInt(int64(m.MonthsEnrolled))))
	}
	if !totalPremiumsPaid.IsPositive() {
		return nil, ErrArithmeticDegeneracy
	}
	historicalMLR := pool.TotalClaimsYTD.Div(totalPremiumsPaid)

	projectedClaims := projectedPremiums.Mul(historicalMLR).Mul(claimsTrendFactor)
	projectedInterventions := projectedPremiums.Mul(interventionRatio)
	projectedOpex := projectedPremiums.Mul(operatingRatio)

	expectedWithoutIntervention := projectedPremiums.Mul(baselineCostRatio)
	actualWithIntervention := projectedClaims.Add(projectedInterventions)
	projectedSavings := expectedWithoutIntervention.Sub(actualWithIntervention)

	companyProfit := projectedSavings.Mul(e.companyProfitShare).Sub(projectedOpex)
	memberRebates := projectedSavings.Mul(e.memberRebateShare)

	var mlr, intervRatio, profitMargin float64
	if projectedPremiums.IsPositive() {
		mlr, _ = projectedClaims.Div(projectedPremiums).Float64()
		intervRatio, _ = projectedInterventions.Div(projectedPremiums).Float64()
		profitMargin, _ = companyProfit.Div(projectedPremiums).Float64()
	}

	// Abs keeps the band ordered when the projected profit is negative.
	band := companyProfit.Mul(forecastVolatility).Abs()

	return &model.FinancialForecast{
		ForecastPeriod:             fmt.Sprintf("Next %d months", monthsForward),
		ProjectedPremiumRevenue:    projectedPremiums.Round(2),
		ProjectedClaimsCosts:       projectedClaims.Round(2),
		ProjectedInterventionCosts: projectedInterventions.Round(2),
		ProjectedOperatingExpenses: projectedOpex.Round(2),
		ProjectedTotalSavings:      projectedSavings.Round(2),
		ProjectedCompanyProfit:     companyProfit.Round(2),
		ProjectedMemberRebates:     memberRebates.Round(2),
		MedicalLossRatio:           mlr,
		InterventionRatio:          intervRatio,
		ProfitMargin:               profitMargin,
		ConfidenceIntervalLow:      companyProfit.Sub(band).Round(2),
		ConfidenceIntervalHigh:     companyProfit.Add(band).Round(2),
	}, nil
}
