// Package lifecycle advances incentive offers through their status chain:
// offered → accepted → in_progress → completed, with expiry from any
// non-terminal state. Each transition validates business rules before
// applying state changes.
package lifecycle

import (
	json "github.com/goccy/go-json"

	"wellness-engine/internal/model"
)

// Transition is one requested status change for an offer.
type Transition struct {
	Name        string          `json:"transition"`
	EffectiveAt string          `json:"effective_at"` // YYYY-MM-DD
	Properties  json.RawMessage `json:"properties,omitempty"`
}

// TransitionHandler defines the contract for all transition
// implementations.
type TransitionHandler interface {
	Validate(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage
	Apply(offer *model.IncentiveOffer, t *Transition) []model.CalculationMessage
}

var registry = map[string]TransitionHandler{
	"accept_offer":   &AcceptHandler{},
	"start_offer":    &StartHandler{},
	"complete_offer": &CompleteHandler{},
	"expire_offer":   &ExpireHandler{},
}

// Get looks up a transition handler by name.
func Get(name string) (TransitionHandler, bool) {
	h, ok := registry[name]
	return h, ok
}

// Execute validates and, when clean of CRITICAL findings, applies the
// transition. Returns all messages and whether the offer was changed.
func Execute(offer *model.IncentiveOffer, t *Transition) ([]model.CalculationMessage, bool) {
	handler, ok := Get(t.Name)
	if !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_TRANSITION",
			Message: "Unknown transition: " + t.Name,
		}}, false
	}

	msgs := handler.Validate(offer, t)
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return numbered(msgs), false
		}
	}

	msgs = append(msgs, handler.Apply(offer, t)...)
	return numbered(msgs), true
}

func numbered(msgs []model.CalculationMessage) []model.CalculationMessage {
	for i := range msgs {
		msgs[i].ID = i
	}
	return msgs
}
