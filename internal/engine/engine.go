// Package engine runs batch scoring with per-member failure isolation:
// one malformed snapshot becomes a CRITICAL message, never an aborted
// batch.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"wellness-engine/internal/model"
	"wellness-engine/internal/scoring"
)

// Process scores every snapshot in the request. The response outcome is
// SUCCESS when all members scored, PARTIAL when some failed, and FAILURE
// when none did (or the batch was empty).
func Process(req *model.BatchScoreRequest, scorer *scoring.Engine) *model.BatchScoreResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	results := make([]model.MemberScoreResult, 0, len(req.Snapshots))
	scored := 0

	for i := range req.Snapshots {
		snapshot := &req.Snapshots[i]

		score, err := scorer.Calculate(snapshot)
		if err != nil {
			msg := model.CalculationMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "INVALID_SNAPSHOT",
				Message: fmt.Sprintf("Snapshot %d (member %q): %v", i, snapshot.MemberID, err),
			}
			allMessages = append(allMessages, msg)
			results = append(results, model.MemberScoreResult{
				MemberID:       snapshot.MemberID,
				MessageIndexes: []int{msg.ID},
			})
			continue
		}

		results = append(results, model.MemberScoreResult{
			MemberID: snapshot.MemberID,
			Score:    score,
		})
		scored++
	}

	outcome := model.OutcomeFailure
	switch {
	case scored == len(req.Snapshots) && scored > 0:
		outcome = model.OutcomeSuccess
	case scored > 0:
		outcome = model.OutcomePartial
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.BatchScoreResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		Results:  results,
		Messages: allMessages,
	}
}
