// Package handler exposes the calculation engines over HTTP. It owns
// (de)serialization and error mapping only; all business logic lives in
// the engine packages.
package handler

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"wellness-engine/internal/audit"
	"wellness-engine/internal/benchmarks"
	"wellness-engine/internal/engine"
	"wellness-engine/internal/financial"
	"wellness-engine/internal/incentive"
	"wellness-engine/internal/lifecycle"
	"wellness-engine/internal/model"
	"wellness-engine/internal/scoring"
)

// HandleRequest is the fasthttp entry point for all routes.
func HandleRequest(ctx *fasthttp.RequestCtx) {
	if string(ctx.Method()) != http.MethodPost {
		writeError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	switch string(ctx.Path()) {
	case "/v1/scores":
		handleScore(ctx)
	case "/v1/scores/batch":
		handleScoreBatch(ctx)
	case "/v1/scores/diff":
		handleScoreDiff(ctx)
	case "/v1/pool/metrics":
		handlePoolMetrics(ctx)
	case "/v1/pool/savings":
		handleSavings(ctx)
	case "/v1/pool/rebate":
		handleRebate(ctx)
	case "/v1/pool/premium":
		handlePremium(ctx)
	case "/v1/pool/forecast":
		handleForecast(ctx)
	case "/v1/interventions/roi":
		handleInterventionROI(ctx)
	case "/v1/interventions/optimize":
		handleOptimizeBudget(ctx)
	case "/v1/incentives/portfolio":
		handlePortfolio(ctx)
	case "/v1/offers/transition":
		handleTransition(ctx)
	default:
		writeError(ctx, http.StatusNotFound, "Not found")
	}
}

func newScoringEngine() *scoring.Engine {
	return scoring.NewEngine(benchmarks.NationalAvgAnnualCost())
}

func newFinancialEngine() *financial.Engine {
	return financial.NewEngine(benchmarks.NationalAvgAnnualCost(), benchmarks.CostPerRiskPoint())
}

func handleScore(ctx *fasthttp.RequestCtx) {
	var snapshot model.MemberHealthSnapshot
	if !decode(ctx, &snapshot) {
		return
	}

	score, err := newScoringEngine().Calculate(&snapshot)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			writeError(ctx, http.StatusUnprocessableEntity, verr.Error())
			return
		}
		writeError(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(ctx, score)
}

func handleScoreBatch(ctx *fasthttp.RequestCtx) {
	var req model.BatchScoreRequest
	if !decode(ctx, &req) {
		return
	}
	writeJSON(ctx, engine.Process(&req, newScoringEngine()))
}

func handleScoreDiff(ctx *fasthttp.RequestCtx) {
	var req model.DiffRequest
	if !decode(ctx, &req) {
		return
	}

	writeJSON(ctx, struct {
		BeforeHash string     `json:"before_hash"`
		AfterHash  string     `json:"after_hash"`
		Changes    []audit.Op `json:"changes"`
	}{
		BeforeHash: audit.Hash(&req.Before),
		AfterHash:  audit.Hash(&req.After),
		Changes:    audit.Changes(&req.Before, &req.After),
	})
}

func handlePoolMetrics(ctx *fasthttp.RequestCtx) {
	var req model.PoolMetricsRequest
	if !decode(ctx, &req) {
		return
	}

	metrics, err := newFinancialEngine().PoolMetrics(req.Members, req.RiskCategories)
	if err != nil {
		writeError(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(ctx, metrics)
}

func handleSavings(ctx *fasthttp.RequestCtx) {
	var req model.SavingsRequest
	if !decode(ctx, &req) {
		return
	}

	savings, profit, rebates := newFinancialEngine().DistributeSavings(req.PredictedCosts, req.ActualClaims, req.InterventionCosts)
	writeJSON(ctx, model.SavingsResponse{
		TotalSavings:  savings,
		CompanyProfit: profit,
		MemberRebates: rebates,
	})
}

func handleRebate(ctx *fasthttp.RequestCtx) {
	var req model.RebateRequest
	if !decode(ctx, &req) {
		return
	}

	rebate := newFinancialEngine().MemberRebate(req.Member, req.TotalPoolSavings, req.TotalPoolPremiums)
	writeJSON(ctx, model.RebateResponse{MemberID: req.Member.MemberID, Rebate: rebate})
}

func handlePremium(ctx *fasthttp.RequestCtx) {
	var req model.PremiumRequest
	if !decode(ctx, &req) {
		return
	}

	newPremium, reason := newFinancialEngine().PremiumAdjustment(req.Member, req.CurrentPremium, &req.Pool)
	writeJSON(ctx, model.PremiumResponse{
		MemberID:   req.Member.MemberID,
		NewPremium: newPremium,
		Reason:     reason,
	})
}

func handleForecast(ctx *fasthttp.RequestCtx) {
	var req model.ForecastRequest
	if !decode(ctx, &req) {
		return
	}

	forecast, err := newFinancialEngine().Forecast(req.Members, &req.Pool, req.MonthsForward)
	if err != nil {
		writeError(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(ctx, forecast)
}

func handleInterventionROI(ctx *fasthttp.RequestCtx) {
	var req model.ROIRequest
	if !decode(ctx, &req) {
		return
	}

	adherence := financial.DefaultAdherence
	if req.ExpectedAdherence != nil {
		adherence = *req.ExpectedAdherence
	}

	roi := newFinancialEngine().InterventionROI(req.Member, req.InterventionType, req.InterventionCost, req.ExpectedRiskReduction, adherence)
	writeJSON(ctx, roi)
}

func handleOptimizeBudget(ctx *fasthttp.RequestCtx) {
	var req model.OptimizeRequest
	if !decode(ctx, &req) {
		return
	}

	selected := newFinancialEngine().OptimizeInterventionBudget(req.AvailableBudget, req.Candidates)
	if selected == nil {
		selected = []model.InterventionROI{}
	}
	writeJSON(ctx, selected)
}

func handlePortfolio(ctx *fasthttp.RequestCtx) {
	var req model.PortfolioRequest
	if !decode(ctx, &req) {
		return
	}

	optimizer := incentive.NewOptimizer(req.Budget, benchmarks.CostPerRiskPoint())
	offers := optimizer.OptimizePortfolio(req.Members, req.Responsiveness, req.RiskFactors)
	if offers == nil {
		offers = []model.IncentiveOffer{}
	}
	writeJSON(ctx, offers)
}

func handleTransition(ctx *fasthttp.RequestCtx) {
	var req model.TransitionRequest
	if !decode(ctx, &req) {
		return
	}

	transition := lifecycle.Transition{
		Name:        req.Transition,
		EffectiveAt: req.EffectiveAt,
		Properties:  req.Properties,
	}
	msgs, applied := lifecycle.Execute(&req.Offer, &transition)
	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}
	writeJSON(ctx, model.TransitionResponse{
		Offer:    req.Offer,
		Applied:  applied,
		Messages: msgs,
	})
}

func decode(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	ctx.SetContentType("application/json")
	json.NewEncoder(ctx).Encode(v)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
