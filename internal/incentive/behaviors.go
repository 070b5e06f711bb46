package incentive

import (
	"github.com/shopspring/decimal"

	"wellness-engine/internal/model"
	"wellness-engine/internal/scoring"
)

// goalDefinition fixes the measurable goal behind a behavior category.
type goalDefinition struct {
	description  string
	metric       string
	target       float64
	durationDays int
}

var goalDefinitions = map[model.BehaviorCategory]goalDefinition{
	model.BehaviorPreventiveScreening: {
		description:  "Complete annual physical exam and recommended screenings",
		metric:       "preventive_visits",
		target:       1.0,
		durationDays: 60,
	},
	model.BehaviorActivityGoals: {
		description:  "Walk 10,000 steps per day for 30 days",
		metric:       "avg_daily_steps",
		target:       10000.0,
		durationDays: 30,
	},
	model.BehaviorProgramCompletion: {
		description:  "Complete assigned wellness program",
		metric:       "program_completion",
		target:       1.0,
		durationDays: 90,
	},
	model.BehaviorBiometricImprovement: {
		description:  "Reduce BMI by 2 points or reach healthy BMI",
		metric:       "bmi_reduction",
		target:       2.0,
		durationDays: 180,
	},
	model.BehaviorMedicationAdherence: {
		description:  "Maintain 90%+ medication adherence for 90 days",
		metric:       "medication_adherence_rate",
		target:       0.90,
		durationDays: 90,
	},
	model.BehaviorHealthAssessment: {
		description:  "Complete comprehensive health risk assessment",
		metric:       "assessment_completion",
		target:       1.0,
		durationDays: 14,
	},
	model.BehaviorChronicDiseaseManagement: {
		description:  "Attend all scheduled disease management visits",
		metric:       "visit_attendance_rate",
		target:       1.0,
		durationDays: 180,
	},
	model.BehaviorMentalHealthEngagement: {
		description:  "Attend 6 counseling sessions",
		metric:       "counseling_sessions",
		target:       6.0,
		durationDays: 120,
	},
}

// behaviorHealthImpact is the expected risk-score reduction (points) per
// completed behavior.
var behaviorHealthImpact = map[model.BehaviorCategory]float64{
	model.BehaviorPreventiveScreening:      3.0,
	model.BehaviorActivityGoals:            8.0,
	model.BehaviorProgramCompletion:        12.0,
	model.BehaviorBiometricImprovement:     15.0,
	model.BehaviorMedicationAdherence:      10.0,
	model.BehaviorHealthAssessment:         1.0,
	model.BehaviorChronicDiseaseManagement: 20.0,
	model.BehaviorMentalHealthEngagement:   9.0,
}

// difficultyMultipliers scale the incentive amount by how hard the
// behavior is to sustain.
var difficultyMultipliers = map[model.BehaviorCategory]decimal.Decimal{
	model.BehaviorHealthAssessment:         decimal.NewFromFloat(0.5), // easy
	model.BehaviorPreventiveScreening:      decimal.NewFromFloat(0.8),
	model.BehaviorActivityGoals:            decimal.NewFromFloat(1.5), // sustained effort
	model.BehaviorMedicationAdherence:      decimal.NewFromFloat(1.3),
	model.BehaviorBiometricImprovement:     decimal.NewFromFloat(2.0), // hard
	model.BehaviorProgramCompletion:        decimal.NewFromFloat(1.8),
	model.BehaviorChronicDiseaseManagement: decimal.NewFromFloat(1.6),
	model.BehaviorMentalHealthEngagement:   decimal.NewFromFloat(1.4),
}

// completionDifficulty scales a member's base response rate into a
// completion probability per behavior.
var completionDifficulty = map[model.BehaviorCategory]float64{
	model.BehaviorHealthAssessment:         0.9,
	model.BehaviorPreventiveScreening:      0.85,
	model.BehaviorActivityGoals:            0.7,
	model.BehaviorMedicationAdherence:      0.75,
	model.BehaviorProgramCompletion:        0.65,
	model.BehaviorMentalHealthEngagement:   0.70,
	model.BehaviorBiometricImprovement:     0.55,
	model.BehaviorChronicDiseaseManagement: 0.80,
}

const defaultCompletionDifficulty = 0.7

// behaviorByFactorKey maps a risk factor's stable key to the behavior
// most likely to reduce it.
var behaviorByFactorKey = map[string]model.BehaviorCategory{
	scoring.KeyChronicDisease:   model.BehaviorChronicDiseaseManagement,
	scoring.KeyInactivity:       model.BehaviorActivityGoals,
	scoring.KeyObesity:          model.BehaviorBiometricImprovement,
	scoring.KeyHypertension:     model.BehaviorBiometricImprovement,
	scoring.KeyNoPreventiveCare: model.BehaviorPreventiveScreening,
	scoring.KeyTobaccoUse:       model.BehaviorProgramCompletion,
	scoring.KeyHighEDUse:        model.BehaviorChronicDiseaseManagement,
	scoring.KeyFoodInsecurity:   model.BehaviorHealthAssessment,
}
