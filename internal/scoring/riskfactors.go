package scoring

import (
	"fmt"
	"sort"

	"wellness-engine/internal/model"
)

// Stable factor keys behavior targeting binds on.
const (
	KeyChronicDisease   = "chronic_disease"
	KeyTobaccoUse       = "tobacco_use"
	KeyInactivity       = "physical_inactivity"
	KeyObesity          = "obesity"
	KeyHypertension     = "uncontrolled_hypertension"
	KeyHighEDUse        = "high_ed_use"
	KeyNoPreventiveCare = "no_preventive_care"
	KeyFoodInsecurity   = "food_insecurity"
)

// extractRiskFactors derives human-readable contributions for
// explainability. These are reported independently of the component
// sub-scores and need not sum to them.
func extractRiskFactors(s *snapshot) []model.RiskFactorContribution {
	var factors []model.RiskFactorContribution

	for _, condition := range s.ChronicConditions {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorChronicDisease,
			FactorKey:          KeyChronicDisease,
			FactorName:         "Chronic condition: " + condition,
			ContributionPoints: 15,
			Severity:           model.SeverityHigh,
			Description:        "Diagnosed with " + condition,
			RecommendedAction:  "Ensure regular monitoring and medication adherence",
		})
	}

	if s.Smoker {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorBehavioral,
			FactorKey:          KeyTobaccoUse,
			FactorName:         "Tobacco use",
			ContributionPoints: 30,
			Severity:           model.SeverityHigh,
			Description:        "Current smoker",
			RecommendedAction:  "Enroll in smoking cessation program",
		})
	}

	if s.AvgDailySteps != nil && *s.AvgDailySteps < 5000 {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorBehavioral,
			FactorKey:          KeyInactivity,
			FactorName:         "Physical inactivity",
			ContributionPoints: 15,
			Severity:           model.SeverityMedium,
			Description:        fmt.Sprintf("Average %d steps/day (target: 7000+)", *s.AvgDailySteps),
			RecommendedAction:  "Gradual increase in daily activity, consider fitness coaching",
		})
	}

	if s.BMI != nil && *s.BMI >= 30 {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorBiometric,
			FactorKey:          KeyObesity,
			FactorName:         "Obesity",
			ContributionPoints: 12,
			Severity:           model.SeverityMedium,
			Description:        fmt.Sprintf("BMI %.1f (healthy range: 18.5-24.9)", *s.BMI),
			RecommendedAction:  "Nutritionist consultation and weight management program",
		})
	}

	if s.BloodPressureSystolic != nil && *s.BloodPressureSystolic >= 140 {
		diastolic := 0
		if s.BloodPressureDiastolic != nil {
			diastolic = *s.BloodPressureDiastolic
		}
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorBiometric,
			FactorKey:          KeyHypertension,
			FactorName:         "Uncontrolled hypertension",
			ContributionPoints: 15,
			Severity:           model.SeverityHigh,
			Description:        fmt.Sprintf("BP %d/%d mmHg", *s.BloodPressureSystolic, diastolic),
			RecommendedAction:  "Immediate physician follow-up, medication review",
		})
	}

	if s.EmergencyVisits > 2 {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorUtilization,
			FactorKey:          KeyHighEDUse,
			FactorName:         "High emergency department use",
			ContributionPoints: float64(s.EmergencyVisits) * 15,
			Severity:           model.SeverityHigh,
			Description:        fmt.Sprintf("%d ED visits in past year", s.EmergencyVisits),
			RecommendedAction:  "Case management to address underlying issues",
		})
	}

	if !s.HasPrimaryCarePhysician {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorUtilization,
			FactorKey:          KeyNoPreventiveCare,
			FactorName:         "No primary care relationship",
			ContributionPoints: 8,
			Severity:           model.SeverityMedium,
			Description:        "No established PCP",
			RecommendedAction:  "Help member find and establish care with PCP",
		})
	}

	if s.FoodInsecurity {
		factors = append(factors, model.RiskFactorContribution{
			FactorType:         model.FactorSocialDeterminants,
			FactorKey:          KeyFoodInsecurity,
			FactorName:         "Food insecurity",
			ContributionPoints: 10,
			Severity:           model.SeverityMedium,
			Description:        "Reported difficulty accessing nutritious food",
			RecommendedAction:  "Connect with community food resources",
		})
	}

	return factors
}

// topFactors returns the n highest contributions, descending. The sort is
// stable so equal contributions keep extraction order.
func topFactors(factors []model.RiskFactorContribution, n int) []model.RiskFactorContribution {
	ranked := append([]model.RiskFactorContribution(nil), factors...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].ContributionPoints > ranked[b].ContributionPoints
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
