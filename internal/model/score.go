package model

import "github.com/shopspring/decimal"

// RiskCategory buckets the numeric score into coarse bands shared by
// scoring and reporting code.
type RiskCategory string

const (
	RiskLow      RiskCategory = "low"      // score 1-30
	RiskModerate RiskCategory = "moderate" // score 31-60
	RiskHigh     RiskCategory = "high"     // score 61-85
	RiskCritical RiskCategory = "critical" // score 86-100
)

// RiskFactorType categorizes an individual risk factor contribution.
type RiskFactorType string

const (
	FactorChronicDisease     RiskFactorType = "chronic_disease"
	FactorBehavioral         RiskFactorType = "behavioral"
	FactorBiometric          RiskFactorType = "biometric"
	FactorUtilization        RiskFactorType = "utilization"
	FactorDemographic        RiskFactorType = "demographic"
	FactorSocialDeterminants RiskFactorType = "social_determinants"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// RiskFactorContribution is one explainability entry. Contribution points
// are reported independently of the component sub-scores and need not sum
// to them. FactorKey is the stable lookup key behavior targeting binds on.
type RiskFactorContribution struct {
	FactorType         RiskFactorType `json:"factor_type"`
	FactorKey          string         `json:"factor_key"`
	FactorName         string         `json:"factor_name"`
	ContributionPoints float64        `json:"contribution_points"`
	Severity           string         `json:"severity"`
	Description        string         `json:"description"`
	RecommendedAction  string         `json:"recommended_action"`
}

// ComponentScores holds the four sub-scores behind the overall score.
type ComponentScores struct {
	Demographic float64 `json:"demographic"`
	Clinical    float64 `json:"clinical"`
	Behavioral  float64 `json:"behavioral"`
	Utilization float64 `json:"utilization"`
}

// HealthScore is the result of one scoring calculation. It is immutable
// once created.
type HealthScore struct {
	MemberID        string       `json:"member_id"`
	Score           float64      `json:"score"` // 1-100
	RiskCategory    RiskCategory `json:"risk_category"`
	ConfidenceLevel float64      `json:"confidence_level"` // 0-1

	PredictedAnnualCost decimal.Decimal `json:"predicted_annual_cost"`
	CostRangeLow        decimal.Decimal `json:"cost_range_low"`
	CostRangeHigh       decimal.Decimal `json:"cost_range_high"`

	TopRiskFactors           []RiskFactorContribution `json:"top_risk_factors"`
	RecommendedInterventions []string                 `json:"recommended_interventions"`

	DataCompleteness float64         `json:"data_completeness"` // 0-1
	InputHash        string          `json:"input_hash"`        // SHA-256 of canonical input
	Components       ComponentScores `json:"component_scores"`
}
