package model

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// BatchScoreRequest scores a list of member snapshots in one call.
type BatchScoreRequest struct {
	TenantID  string                 `json:"tenant_id"`
	Snapshots []MemberHealthSnapshot `json:"snapshots"`
}

// PoolMetricsRequest aggregates pool-level financials.
type PoolMetricsRequest struct {
	Members        []MemberFinancialProfile `json:"members"`
	RiskCategories map[string]RiskCategory  `json:"risk_categories"`
}

// SavingsRequest computes net savings and the company/member split.
type SavingsRequest struct {
	PredictedCosts    decimal.Decimal `json:"predicted_costs"`
	ActualClaims      decimal.Decimal `json:"actual_claims"`
	InterventionCosts decimal.Decimal `json:"intervention_costs"`
}

// RebateRequest computes one member's share of the rebate pool.
type RebateRequest struct {
	Member            MemberFinancialProfile `json:"member"`
	TotalPoolSavings  decimal.Decimal        `json:"total_pool_savings"`
	TotalPoolPremiums decimal.Decimal        `json:"total_pool_premiums"`
}

// PremiumRequest computes a member's adjusted premium.
type PremiumRequest struct {
	Member         MemberFinancialProfile `json:"member"`
	CurrentPremium decimal.Decimal        `json:"current_premium"`
	Pool           RiskPoolMetrics        `json:"pool"`
}

// ROIRequest evaluates one candidate intervention.
type ROIRequest struct {
	Member                MemberFinancialProfile `json:"member"`
	InterventionType      InterventionType       `json:"intervention_type"`
	InterventionCost      decimal.Decimal        `json:"intervention_cost"`
	ExpectedRiskReduction float64                `json:"expected_risk_reduction"`
	ExpectedAdherence     *float64               `json:"expected_adherence,omitempty"`
}

// OptimizeRequest selects interventions under a budget.
type OptimizeRequest struct {
	AvailableBudget decimal.Decimal   `json:"available_budget"`
	Candidates      []InterventionROI `json:"candidates"`
}

// ForecastRequest projects pool financials forward.
type ForecastRequest struct {
	Members       []MemberFinancialProfile `json:"members"`
	Pool          RiskPoolMetrics          `json:"pool"`
	MonthsForward int                      `json:"months_forward"`
}

// PortfolioRequest builds a budget-feasible incentive offer portfolio.
type PortfolioRequest struct {
	Members        []MemberTarget                      `json:"members"`
	Responsiveness map[string]MemberResponsiveness     `json:"responsiveness"`
	RiskFactors    map[string][]RiskFactorContribution `json:"risk_factors"`
	Budget         IncentiveBudget                     `json:"budget"`
}

// TransitionRequest advances an offer through its lifecycle.
type TransitionRequest struct {
	Offer       IncentiveOffer  `json:"offer"`
	Transition  string          `json:"transition"`
	EffectiveAt string          `json:"effective_at"` // YYYY-MM-DD
	Properties  json.RawMessage `json:"properties,omitempty"`
}

// DiffRequest explains what changed between two recorded snapshots.
type DiffRequest struct {
	Before MemberHealthSnapshot `json:"before"`
	After  MemberHealthSnapshot `json:"after"`
}
