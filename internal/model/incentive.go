package model

import "github.com/shopspring/decimal"

// IncentiveType is the reward vehicle offered to a member.
type IncentiveType string

const (
	IncentivePremiumReduction IncentiveType = "premium_reduction"
	IncentiveCashReward       IncentiveType = "cash_reward"
	IncentiveHSAContribution  IncentiveType = "hsa_contribution"
	IncentivePoints           IncentiveType = "points"
	IncentiveProgramDiscount  IncentiveType = "program_discount"
	IncentiveGiftCard         IncentiveType = "gift_card"
)

// BehaviorCategory is a wellness behavior an incentive can target.
type BehaviorCategory string

const (
	BehaviorPreventiveScreening      BehaviorCategory = "preventive_screening"
	BehaviorActivityGoals            BehaviorCategory = "activity_goals"
	BehaviorProgramCompletion        BehaviorCategory = "program_completion"
	BehaviorBiometricImprovement     BehaviorCategory = "biometric_improvement"
	BehaviorMedicationAdherence      BehaviorCategory = "medication_adherence"
	BehaviorHealthAssessment         BehaviorCategory = "health_assessment"
	BehaviorChronicDiseaseManagement BehaviorCategory = "chronic_disease_management"
	BehaviorMentalHealthEngagement   BehaviorCategory = "mental_health_engagement"
)

// OfferStatus tracks the incentive offer lifecycle.
type OfferStatus string

const (
	OfferOffered    OfferStatus = "offered"
	OfferAccepted   OfferStatus = "accepted"
	OfferInProgress OfferStatus = "in_progress"
	OfferCompleted  OfferStatus = "completed"
	OfferExpired    OfferStatus = "expired"
)

// MemberTarget is the per-member input to incentive targeting.
type MemberTarget struct {
	MemberID            string          `json:"member_id"`
	CurrentRiskScore    float64         `json:"current_risk_score"`
	PredictedAnnualCost decimal.Decimal `json:"predicted_annual_cost"`
	ActiveProgramCount  int             `json:"active_program_count"`
	LastCheckupDaysAgo  int             `json:"last_checkup_days_ago"`
}

// MemberResponsiveness models how a member reacts to incentives.
type MemberResponsiveness struct {
	MemberID string `json:"member_id"`

	PreviousIncentivesReceived int     `json:"previous_incentives_received"`
	PreviousIncentivesActedOn  int     `json:"previous_incentives_acted_on"`
	IncentiveResponseRate      float64 `json:"incentive_response_rate"` // 0-1

	SelfMotivated bool `json:"self_motivated"`
	NeedsNudging  bool `json:"needs_nudging"`
	HighInertia   bool `json:"high_inertia"`

	PreferredIncentiveTypes         []IncentiveType `json:"preferred_incentive_types,omitempty"`
	MinimumEffectiveIncentiveAmount decimal.Decimal `json:"minimum_effective_incentive_amount"`
}

// IncentiveOffer is a budget-feasible incentive proposal for one behavior.
type IncentiveOffer struct {
	OfferID  string `json:"offer_id"`
	MemberID string `json:"member_id"`

	BehaviorCategory    BehaviorCategory `json:"behavior_category"`
	BehaviorDescription string           `json:"behavior_description"`

	IncentiveType   IncentiveType   `json:"incentive_type"`
	IncentiveAmount decimal.Decimal `json:"incentive_amount"`

	GoalMetric       string  `json:"goal_metric"`
	GoalTarget       float64 `json:"goal_target"`
	GoalDurationDays int     `json:"goal_duration_days"`

	OfferDate      string `json:"offer_date"`      // YYYY-MM-DD
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD

	ProbabilityOfCompletion float64         `json:"probability_of_completion"`
	ExpectedHealthImpact    float64         `json:"expected_health_impact"` // risk points
	ExpectedCostAvoidance   decimal.Decimal `json:"expected_cost_avoidance"`

	IncentiveCost decimal.Decimal `json:"incentive_cost"`
	ExpectedROI   float64         `json:"expected_roi"`
	PriorityScore float64         `json:"priority_score"`

	Status         OfferStatus `json:"status"`
	AcceptanceDate string      `json:"acceptance_date,omitempty"`
	CompletionDate string      `json:"completion_date,omitempty"`
}

// IncentiveBudget constrains one optimization run. Available is derived,
// never stored.
type IncentiveBudget struct {
	TotalBudget  decimal.Decimal `json:"total_budget"`
	BudgetPeriod string          `json:"budget_period"` // monthly, quarterly, annual

	MaxPerMemberPerPeriod decimal.Decimal `json:"max_per_member_per_period"`
	MinROIThreshold       float64         `json:"min_roi_threshold"`

	SpentToDate     decimal.Decimal `json:"spent_to_date"`
	CommittedToDate decimal.Decimal `json:"committed_to_date"`
}

// Available returns total minus spent minus committed.
func (b *IncentiveBudget) Available() decimal.Decimal {
	return b.TotalBudget.Sub(b.SpentToDate).Sub(b.CommittedToDate)
}
