package model

import "github.com/shopspring/decimal"

// InterventionType categorizes wellness interventions.
type InterventionType string

const (
	InterventionPreventiveScreening      InterventionType = "preventive_screening"
	InterventionChronicDiseaseManagement InterventionType = "chronic_disease_management"
	InterventionBehavioralCoaching       InterventionType = "behavioral_coaching"
	InterventionMentalHealth             InterventionType = "mental_health"
	InterventionNutritionCounseling      InterventionType = "nutrition_counseling"
	InterventionFitnessProgram           InterventionType = "fitness_program"
	InterventionSmokingCessation         InterventionType = "smoking_cessation"
	InterventionMedicationAdherence      InterventionType = "medication_adherence"
	InterventionCareCoordination         InterventionType = "care_coordination"
)

// MemberFinancialProfile carries the per-member financial inputs to the
// pool-level calculations.
type MemberFinancialProfile struct {
	MemberID       string          `json:"member_id"`
	MonthlyPremium decimal.Decimal `json:"monthly_premium"`
	MonthsEnrolled int             `json:"months_enrolled"`

	ActualCostsYTD             decimal.Decimal `json:"actual_costs_ytd"`
	PredictedCostsAtEnrollment decimal.Decimal `json:"predicted_costs_at_enrollment"`

	CurrentRiskScore    float64 `json:"current_risk_score"`
	EnrollmentRiskScore float64 `json:"enrollment_risk_score"`

	InterventionCostsYTD           decimal.Decimal `json:"intervention_costs_ytd"`
	PreventionProgramParticipation bool            `json:"prevention_program_participation"`
}

// RiskPoolMetrics is an aggregate snapshot across all members, recomputed
// on demand and never partially updated.
type RiskPoolMetrics struct {
	TotalMembers         int             `json:"total_members"`
	TotalMonthlyPremiums decimal.Decimal `json:"total_monthly_premiums"`
	TotalReserves        decimal.Decimal `json:"total_reserves"`

	LowRiskCount      int `json:"low_risk_count"`
	ModerateRiskCount int `json:"moderate_risk_count"`
	HighRiskCount     int `json:"high_risk_count"`
	CriticalRiskCount int `json:"critical_risk_count"`

	TotalClaimsYTD            decimal.Decimal `json:"total_claims_ytd"`
	TotalInterventionCostsYTD decimal.Decimal `json:"total_intervention_costs_ytd"`
	AverageCostPerMember      decimal.Decimal `json:"average_cost_per_member"`

	SavingsYTD        decimal.Decimal `json:"savings_ytd"`
	SavingsPercentage float64         `json:"savings_percentage"`

	CalculationDate string `json:"calculation_date"`
}

// InterventionROI is the projected return for one intervention offered to
// one member.
type InterventionROI struct {
	InterventionType InterventionType `json:"intervention_type"`
	MemberID         string           `json:"member_id"`

	InterventionCost decimal.Decimal `json:"intervention_cost"`

	RiskScoreReduction     float64         `json:"risk_score_reduction"`
	EstimatedCostAvoidance decimal.Decimal `json:"estimated_cost_avoidance"` // annual

	ROIPercentage       float64         `json:"roi_percentage"`
	PaybackPeriodMonths float64         `json:"payback_period_months"`
	NetPresentValue     decimal.Decimal `json:"net_present_value"` // 3-year horizon

	SuccessProbability float64         `json:"success_probability"`
	ExpectedValue      decimal.Decimal `json:"expected_value"`

	PriorityScore float64 `json:"priority_score"`
}

// FinancialForecast is a P&L projection for a future period.
type FinancialForecast struct {
	ForecastPeriod string `json:"forecast_period"`

	ProjectedPremiumRevenue    decimal.Decimal `json:"projected_premium_revenue"`
	ProjectedClaimsCosts       decimal.Decimal `json:"projected_claims_costs"`
	ProjectedInterventionCosts decimal.Decimal `json:"projected_intervention_costs"`
	ProjectedOperatingExpenses decimal.Decimal `json:"projected_operating_expenses"`

	ProjectedTotalSavings  decimal.Decimal `json:"projected_total_savings"`
	ProjectedCompanyProfit decimal.Decimal `json:"projected_company_profit"`
	ProjectedMemberRebates decimal.Decimal `json:"projected_member_rebates"`

	MedicalLossRatio  float64 `json:"medical_loss_ratio"`
	InterventionRatio float64 `json:"intervention_ratio"`
	ProfitMargin      float64 `json:"profit_margin"`

	ConfidenceIntervalLow  decimal.Decimal `json:"confidence_interval_low"`
	ConfidenceIntervalHigh decimal.Decimal `json:"confidence_interval_high"`
}
