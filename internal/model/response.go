package model

import "github.com/shopspring/decimal"

// CalculationMetadata stamps every batch response for auditability.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// MemberScoreResult pairs one snapshot's outcome with the indexes of any
// messages raised while scoring it. Score is nil when the snapshot failed
// validation.
type MemberScoreResult struct {
	MemberID       string       `json:"member_id"`
	Score          *HealthScore `json:"score"`
	MessageIndexes []int        `json:"calculation_message_indexes,omitempty"`
}

// BatchScoreResponse is the result of scoring a whole batch. A failed
// member never aborts the batch; it surfaces as a CRITICAL message and a
// nil score.
type BatchScoreResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Results             []MemberScoreResult  `json:"results"`
	Messages            []CalculationMessage `json:"messages"`
}

// SavingsResponse is the three-way savings split.
type SavingsResponse struct {
	TotalSavings  decimal.Decimal `json:"total_savings"`
	CompanyProfit decimal.Decimal `json:"company_profit"`
	MemberRebates decimal.Decimal `json:"member_rebates"`
}

// RebateResponse is one member's rebate amount.
type RebateResponse struct {
	MemberID string          `json:"member_id"`
	Rebate   decimal.Decimal `json:"rebate"`
}

// PremiumResponse is the adjusted premium and its explanation.
type PremiumResponse struct {
	MemberID   string          `json:"member_id"`
	NewPremium decimal.Decimal `json:"new_premium"`
	Reason     string          `json:"reason"`
}

// TransitionResponse returns the offer after a lifecycle transition along
// with any messages the transition raised.
type TransitionResponse struct {
	Offer    IncentiveOffer       `json:"offer"`
	Applied  bool                 `json:"applied"`
	Messages []CalculationMessage `json:"messages"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
