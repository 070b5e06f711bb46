package handler

import (
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"wellness-engine/internal/model"
)

func post(t *testing.T, path, body string) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(http.MethodPost)
	req.SetRequestURI(path)
	req.SetBodyString(body)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	HandleRequest(ctx)
	return ctx
}

func TestScoreRoute(t *testing.T) {
	ctx := post(t, "/v1/scores", `{
		"member_id": "M-1",
		"age": 58,
		"gender": "M",
		"bmi": 31.5,
		"blood_pressure_systolic": 148,
		"glucose_level": 135,
		"chronic_conditions": ["E11.9", "I10"],
		"total_claims_cost": "8500",
		"emergency_visits": 2,
		"has_primary_care_physician": true
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var score model.HealthScore
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &score))
	assert.Equal(t, "M-1", score.MemberID)
	assert.Equal(t, model.RiskModerate, score.RiskCategory)
	assert.NotEmpty(t, score.InputHash)
}

func TestScoreRouteValidationFailure(t *testing.T) {
	ctx := post(t, "/v1/scores", `{"age": 58, "gender": "M"}`)

	require.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Contains(t, errResp.Message, "member_id")
}

func TestScoreRouteMalformedBody(t *testing.T) {
	ctx := post(t, "/v1/scores", `{not json`)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestBatchScoreRoute(t *testing.T) {
	ctx := post(t, "/v1/scores/batch", `{
		"tenant_id": "test-tenant",
		"snapshots": [
			{"member_id": "M-1", "age": 45, "gender": "F"},
			{"member_id": "", "age": 45, "gender": "F"}
		]
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.BatchScoreResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomePartial, resp.CalculationMetadata.CalculationOutcome)
	assert.Len(t, resp.Results, 2)
	assert.Len(t, resp.Messages, 1)
}

func TestScoreDiffRoute(t *testing.T) {
	ctx := post(t, "/v1/scores/diff", `{
		"before": {"member_id": "M-1", "age": 45, "gender": "F", "total_claims_cost": "0"},
		"after": {"member_id": "M-1", "age": 46, "gender": "F", "total_claims_cost": "0"}
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp struct {
		BeforeHash string                   `json:"before_hash"`
		AfterHash  string                   `json:"after_hash"`
		Changes    []map[string]interface{} `json:"changes"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.NotEqual(t, resp.BeforeHash, resp.AfterHash)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, "/age", resp.Changes[0]["path"])
}

func TestPoolMetricsRoute(t *testing.T) {
	ctx := post(t, "/v1/pool/metrics", `{
		"members": [
			{"member_id": "M-1", "monthly_premium": "400", "months_enrolled": 12,
			 "actual_costs_ytd": "6000", "predicted_costs_at_enrollment": "10000"}
		],
		"risk_categories": {"M-1": "high"}
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var metrics model.RiskPoolMetrics
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &metrics))
	assert.Equal(t, 1, metrics.TotalMembers)
	assert.Equal(t, 1, metrics.HighRiskCount)
}

func TestPoolMetricsRouteEmptyPopulation(t *testing.T) {
	ctx := post(t, "/v1/pool/metrics", `{"members": []}`)

	assert.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestSavingsRoute(t *testing.T) {
	ctx := post(t, "/v1/pool/savings", `{
		"predicted_costs": "10000",
		"actual_claims": "11000",
		"intervention_costs": "0"
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.SavingsResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "-1000", resp.TotalSavings.String())
	assert.True(t, resp.CompanyProfit.IsZero())
	assert.True(t, resp.MemberRebates.IsZero())
}

func TestRebateRoute(t *testing.T) {
	ctx := post(t, "/v1/pool/rebate", `{
		"member": {"member_id": "M-3", "monthly_premium": "400", "months_enrolled": 12,
		           "enrollment_risk_score": 60, "current_risk_score": 50,
		           "prevention_program_participation": true},
		"total_pool_savings": "10000",
		"total_pool_premiums": "48000"
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.RebateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "M-3", resp.MemberID)
	assert.Equal(t, "219", resp.Rebate.String())
}

func TestPremiumRoute(t *testing.T) {
	ctx := post(t, "/v1/pool/premium", `{
		"member": {"member_id": "M-6", "monthly_premium": "400", "months_enrolled": 12,
		           "enrollment_risk_score": 10, "current_risk_score": 95,
		           "actual_costs_ytd": "12000"},
		"current_premium": "400",
		"pool": {"savings_percentage": -15}
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.PremiumResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "460", resp.NewPremium.String())
	assert.NotEmpty(t, resp.Reason)
}

func TestForecastRoute(t *testing.T) {
	ctx := post(t, "/v1/pool/forecast", `{
		"members": [{"member_id": "M-60", "monthly_premium": "750", "months_enrolled": 12}],
		"pool": {"total_monthly_premiums": "750", "total_claims_ytd": "5400"},
		"months_forward": 12
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var forecast model.FinancialForecast
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &forecast))
	assert.Equal(t, "Next 12 months", forecast.ForecastPeriod)
	assert.Equal(t, "9000", forecast.ProjectedPremiumRevenue.String())
}

func TestInterventionROIRoute(t *testing.T) {
	ctx := post(t, "/v1/interventions/roi", `{
		"member": {"member_id": "M-30"},
		"intervention_type": "chronic_disease_management",
		"intervention_cost": "2000",
		"expected_risk_reduction": 10
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var roi model.InterventionROI
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &roi))
	assert.Equal(t, "5800", roi.EstimatedCostAvoidance.String())
	assert.Equal(t, 0.7, roi.SuccessProbability, "default adherence applies")
}

func TestOptimizeRoute(t *testing.T) {
	ctx := post(t, "/v1/interventions/optimize", `{
		"available_budget": "1000",
		"candidates": [
			{"member_id": "M-40", "intervention_cost": "600", "roi_percentage": 300,
			 "expected_value": "1800", "priority_score": 3.0},
			{"member_id": "M-41", "intervention_cost": "700", "roi_percentage": 250,
			 "expected_value": "1750", "priority_score": 2.5}
		]
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var selected []model.InterventionROI
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &selected))
	require.Len(t, selected, 1)
	assert.Equal(t, "M-40", selected[0].MemberID)
}

func TestPortfolioRoute(t *testing.T) {
	ctx := post(t, "/v1/incentives/portfolio", `{
		"members": [{"member_id": "M-85", "current_risk_score": 80, "predicted_annual_cost": "20000"}],
		"responsiveness": {"M-85": {"member_id": "M-85", "incentive_response_rate": 0.6,
		                            "minimum_effective_incentive_amount": "40"}},
		"risk_factors": {"M-85": [{"factor_key": "chronic_disease", "contribution_points": 15}]},
		"budget": {"total_budget": "10000", "max_per_member_per_period": "500", "min_roi_threshold": 1.0}
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var offers []model.IncentiveOffer
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &offers))
	require.Len(t, offers, 1)
	assert.Equal(t, model.BehaviorChronicDiseaseManagement, offers[0].BehaviorCategory)
	assert.Equal(t, model.OfferOffered, offers[0].Status)
}

func TestTransitionRoute(t *testing.T) {
	ctx := post(t, "/v1/offers/transition", `{
		"offer": {"offer_id": "INC-test", "member_id": "M-100", "status": "offered",
		          "expiration_date": "2026-08-31", "incentive_amount": "75"},
		"transition": "accept_offer",
		"effective_at": "2026-08-10"
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.TransitionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.Applied)
	assert.Equal(t, model.OfferAccepted, resp.Offer.Status)
}

func TestTransitionRouteRejected(t *testing.T) {
	ctx := post(t, "/v1/offers/transition", `{
		"offer": {"offer_id": "INC-test", "member_id": "M-100", "status": "completed",
		          "expiration_date": "2026-08-31", "incentive_amount": "75"},
		"transition": "accept_offer",
		"effective_at": "2026-08-10"
	}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp model.TransitionResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.Applied)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "INVALID_STATUS", resp.Messages[0].Code)
}

func TestUnknownRoute(t *testing.T) {
	ctx := post(t, "/v1/nope", `{}`)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestMethodNotAllowed(t *testing.T) {
	var req fasthttp.Request
	req.Header.SetMethod(http.MethodGet)
	req.SetRequestURI("/v1/scores")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	HandleRequest(ctx)

	assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())
}
