package lifecycle

import (
	"fmt"
	"time"

	"wellness-engine/internal/model"
)

type AcceptHandler struct{}

func (h *AcceptHandler) Validate(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if offer.Status != model.OfferOffered {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("Cannot accept an offer in status %s", offer.Status),
		})
		return msgs
	}

	if !isValidDate(t.EffectiveAt) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_EFFECTIVE_DATE",
			Message: "Effective date is missing or malformed",
		})
		return msgs
	}

	// Dates are ISO strings, so lexical comparison is chronological.
	if t.EffectiveAt > offer.ExpirationDate {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "OFFER_EXPIRED",
			Message: fmt.Sprintf("Acceptance window closed on %s", offer.ExpirationDate),
		})
	}

	return msgs
}

func (h *AcceptHandler) Apply(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	offer.Status = model.OfferAccepted
	offer.AcceptanceDate = t.EffectiveAt
	return nil
}

type StartHandler struct{}

func (h *StartHandler) Validate(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	if offer.Status != model.OfferAccepted {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("Cannot start an offer in status %s", offer.Status),
		}}
	}
	return nil
}

func (h *StartHandler) Apply(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	offer.Status = model.OfferInProgress
	return nil
}

type CompleteHandler struct{}

func (h *CompleteHandler) Validate(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if offer.Status != model.OfferInProgress {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("Cannot complete an offer in status %s", offer.Status),
		})
		return msgs
	}

	if !isValidDate(t.EffectiveAt) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_EFFECTIVE_DATE",
			Message: "Effective date is missing or malformed",
		})
		return msgs
	}

	// Finishing before the goal duration elapsed is suspicious but allowed.
	if offer.AcceptanceDate != "" {
		accepted, _ := time.Parse("2006-01-02", offer.AcceptanceDate)
		effective, _ := time.Parse("2006-01-02", t.EffectiveAt)
		if effective.Before(accepted.AddDate(0, 0, offer.GoalDurationDays)) {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "EARLY_COMPLETION",
				Message: fmt.Sprintf("Completed before the %d-day goal duration elapsed", offer.GoalDurationDays),
			})
		}
	}

	return msgs
}

func (h *CompleteHandler) Apply(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	offer.Status = model.OfferCompleted
	offer.CompletionDate = t.EffectiveAt
	return nil
}

type ExpireHandler struct{}

func (h *ExpireHandler) Validate(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if offer.Status == model.OfferCompleted || offer.Status == model.OfferExpired {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("Cannot expire an offer in status %s", offer.Status),
		})
		return msgs
	}

	if !isValidDate(t.EffectiveAt) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_EFFECTIVE_DATE",
			Message: "Effective date is missing or malformed",
		})
		return msgs
	}

	if t.EffectiveAt <= offer.ExpirationDate {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "NOT_YET_EXPIRED",
			Message: fmt.Sprintf("Offer does not expire until %s", offer.ExpirationDate),
		})
	}

	return msgs
}

func (h *ExpireHandler) Apply(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage {
	offer.Status = model.OfferExpired
	return nil
}

func isValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
