// Package scoring turns a member health snapshot into a composite risk
// score, a risk category, a predicted annual cost, and ranked risk
// factors. Every calculation is a pure function of its input.
package scoring

import (
	"math"

	"github.com/shopspring/decimal"

	"wellness-engine/internal/audit"
	"wellness-engine/internal/model"
)

type snapshot = model.MemberHealthSnapshot

// Component weights of the overall score.
const (
	weightDemographic = 0.20
	weightClinical    = 0.35
	weightBehavioral  = 0.25
	weightUtilization = 0.20
)

// Engine computes health risk scores against a national cost benchmark.
type Engine struct {
	nationalAvgCost decimal.Decimal
}

// NewEngine returns an engine using the given national average annual
// healthcare cost benchmark.
func NewEngine(nationalAvgCost decimal.Decimal) *Engine {
	return &Engine{nationalAvgCost: nationalAvgCost}
}

// Calculate scores one member. It fails only on missing identity fields;
// absent optional data lowers completeness and confidence instead.
func (e *Engine) Calculate(s *snapshot) (*model.HealthScore, error) {
	if err := validate(s); err != nil {
		return nil, err
	}

	components := model.ComponentScores{
		Demographic: demographicRisk(s),
		Clinical:    clinicalRisk(s),
		Behavioral:  behavioralRisk(s),
		Utilization: e.utilizationRisk(s),
	}

	overall := components.Demographic*weightDemographic +
		components.Clinical*weightClinical +
		components.Behavioral*weightBehavioral +
		components.Utilization*weightUtilization
	overall = clamp(overall, 1, 100)
	overall = round2(overall)

	category := Categorize(overall)
	factors := extractRiskFactors(s)
	predicted, low, high := e.predictAnnualCost(s, overall)
	completeness := dataCompleteness(s)

	return &model.HealthScore{
		MemberID:                 s.MemberID,
		Score:                    overall,
		RiskCategory:             category,
		ConfidenceLevel:          confidence(s, completeness),
		PredictedAnnualCost:      predicted,
		CostRangeLow:             low,
		CostRangeHigh:            high,
		TopRiskFactors:           topFactors(factors, 5),
		RecommendedInterventions: recommendInterventions(s, factors, category),
		DataCompleteness:         completeness,
		InputHash:                audit.Hash(s),
		Components: model.ComponentScores{
			Demographic: round2(components.Demographic),
			Clinical:    round2(components.Clinical),
			Behavioral:  round2(components.Behavioral),
			Utilization: round2(components.Utilization),
		},
	}, nil
}

// Categorize maps a numeric score to its fixed risk band.
func Categorize(score float64) model.RiskCategory {
	switch {
	case score <= 30:
		return model.RiskLow
	case score <= 60:
		return model.RiskModerate
	case score <= 85:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// demographicRisk is a step function of age with small gender-by-age
// adjustments from actuarial tables.
func demographicRisk(s *snapshot) float64 {
	var score float64

	switch {
	case s.Age < 30:
		score += 5
	case s.Age < 45:
		score += 10
	case s.Age < 60:
		score += 20
	case s.Age < 75:
		score += 35
	default:
		score += 50
	}

	if s.Gender == model.GenderMale && s.Age > 50 {
		score += 5 // cardiovascular risk
	} else if s.Gender == model.GenderFemale && s.Age > 40 {
		score += 3
	}

	return score
}

// clinicalRisk sums condition-prefix weights, polypharmacy risk, and
// out-of-range biometrics, capped at 100.
func clinicalRisk(s *snapshot) float64 {
	var score float64

	for _, code := range s.ChronicConditions {
		if pts, ok := conditionPoints(code); ok {
			score += pts
		}
	}

	switch {
	case len(s.Medications) >= 5:
		score += 15
	case len(s.Medications) >= 3:
		score += 8
	}

	if s.BMI != nil {
		switch {
		case *s.BMI < 18.5:
			score += 8 // underweight
		case *s.BMI >= 30:
			score += 12 // obese
		case *s.BMI >= 25:
			score += 6 // overweight
		}
	}

	if s.BloodPressureSystolic != nil {
		switch {
		case *s.BloodPressureSystolic >= 140:
			score += 15 // stage 2 hypertension
		case *s.BloodPressureSystolic >= 130:
			score += 10 // stage 1
		}
	}

	if s.GlucoseLevel != nil {
		switch {
		case *s.GlucoseLevel >= 126:
			score += 18 // diabetic range
		case *s.GlucoseLevel >= 100:
			score += 10 // prediabetic
		}
	}

	if s.CholesterolLDL != nil && *s.CholesterolLDL >= 160 {
		score += 12
	}

	return math.Min(score, 100)
}

// behavioralRisk scores smoking, alcohol use, activity, sleep, stress and
// resting heart rate, capped at 100.
func behavioralRisk(s *snapshot) float64 {
	var score float64

	if s.Smoker {
		score += 30
	}

	switch s.AlcoholUse {
	case model.AlcoholHeavy:
		score += 20
	case model.AlcoholModerate:
		score += 8
	}

	if s.AvgDailySteps != nil {
		switch {
		case *s.AvgDailySteps < 3000:
			score += 20 // sedentary
		case *s.AvgDailySteps < 5000:
			score += 12
		case *s.AvgDailySteps < 7000:
			score += 5
		}
		// 7000+ steps is protective, no points added
	}

	if s.ExerciseMinutesPerWeek != nil && *s.ExerciseMinutesPerWeek < 75 {
		score += 10 // below recommended minimum
	}

	if s.AvgSleepHours != nil {
		switch {
		case *s.AvgSleepHours < 6:
			score += 15 // sleep deprivation
		case *s.AvgSleepHours > 9:
			score += 8
		}
	}

	if s.ReportedStressLevel != nil && *s.ReportedStressLevel >= 8 {
		score += 12
	}

	if s.AvgRestingHeartRate != nil {
		switch {
		case *s.AvgRestingHeartRate > 80:
			score += 10
		case *s.AvgRestingHeartRate > 70:
			score += 5
		}
	}

	return math.Min(score, 100)
}

// utilizationRisk scores claims-history utilization patterns against the
// national cost benchmark, capped at 100.
func (e *Engine) utilizationRisk(s *snapshot) float64 {
	var score float64

	score += float64(s.EmergencyVisits) * 15
	score += float64(s.HospitalAdmissions) * 25

	switch {
	case s.SpecialistVisits > 6:
		score += 15
	case s.SpecialistVisits > 3:
		score += 8
	}

	switch {
	case s.PrimaryCareVisits == 0:
		score += 10 // no engagement
	case s.PrimaryCareVisits > 8:
		score += 12 // very high use indicates problems
	}

	costRatio, _ := s.TotalClaimsCost.Div(e.nationalAvgCost).Float64()
	switch {
	case costRatio > 3:
		score += 30
	case costRatio > 2:
		score += 20
	case costRatio > 1.5:
		score += 12
	case costRatio > 1:
		score += 5
	}

	if !s.HasPrimaryCarePhysician {
		score += 8
	}

	return math.Min(score, 100)
}

// confidence grows with data completeness, claims history, condition data
// and wearable data, capped at 0.95.
func confidence(s *snapshot, completeness float64) float64 {
	c := 0.5 + completeness*0.4

	if s.TotalClaimsCost.IsPositive() {
		c += 0.1
	}
	if len(s.ChronicConditions) > 0 {
		c += 0.1
	}
	if s.AvgDailySteps != nil {
		c += 0.05
	}

	return math.Min(c, 0.95)
}

// dataCompleteness is the populated fraction of a fixed checklist: the 13
// optional scalar fields plus conditions, medications and claims history.
func dataCompleteness(s *snapshot) float64 {
	populated := 0
	total := 16

	optional := []bool{
		s.BMI != nil,
		s.BloodPressureSystolic != nil,
		s.BloodPressureDiastolic != nil,
		s.GlucoseLevel != nil,
		s.CholesterolTotal != nil,
		s.CholesterolHDL != nil,
		s.CholesterolLDL != nil,
		s.AvgDailySteps != nil,
		s.AvgSleepHours != nil,
		s.AvgRestingHeartRate != nil,
		s.ExerciseMinutesPerWeek != nil,
		s.ReportedStressLevel != nil,
		s.HealthLiteracyScore != nil,
	}
	for _, ok := range optional {
		if ok {
			populated++
		}
	}

	if len(s.ChronicConditions) > 0 {
		populated++
	}
	if len(s.Medications) > 0 {
		populated++
	}
	if s.TotalClaimsCost.IsPositive() {
		populated++
	}

	return float64(populated) / float64(total)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
