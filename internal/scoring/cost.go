package scoring

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	admissionCostPenalty = decimal.NewFromInt(25000)
	highCostMultiplier   = decimal.NewFromFloat(1.8)
	modelBlendWeight     = decimal.NewFromFloat(0.7)
	historyBlendWeight   = decimal.NewFromFloat(0.3)
	costVariance         = decimal.NewFromFloat(0.4)
)

// predictAnnualCost estimates next-year cost from the risk score and
// claims history. Cost grows super-linearly with risk, matching actuarial
// skew: base multiplier 1 + (score/100)^1.5 * 4.
func (e *Engine) predictAnnualCost(s *snapshot, score float64) (predicted, low, high decimal.Decimal) {
	baseMultiplier := 1 + math.Pow(score/100, 1.5)*4
	predicted = e.nationalAvgCost.Mul(decimal.NewFromFloat(baseMultiplier))

	// Blend toward claims history when present (regression to the mean).
	if s.TotalClaimsCost.IsPositive() {
		predicted = predicted.Mul(modelBlendWeight).Add(s.TotalClaimsCost.Mul(historyBlendWeight))
	}

	// High-cost condition families compound per diagnosed condition.
	for _, code := range s.ChronicConditions {
		if inHighCostFamily(code) {
			predicted = predicted.Mul(highCostMultiplier)
		}
	}

	if s.HospitalAdmissions > 0 {
		predicted = predicted.Add(admissionCostPenalty.Mul(decimal.NewFromInt(int64(s.HospitalAdmissions))))
	}

	spread := predicted.Mul(costVariance)
	return predicted.Round(2), predicted.Sub(spread).Round(2), predicted.Add(spread).Round(2)
}

func inHighCostFamily(code string) bool {
	for _, family := range highCostFamilies {
		if strings.HasPrefix(code, family) {
			return true
		}
	}
	return false
}
