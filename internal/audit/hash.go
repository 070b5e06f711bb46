// Package audit makes score calculations independently re-verifiable: a
// stable hash proves which inputs produced a score, and a diff between two
// recorded snapshots explains why a member's score changed between runs.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	json "github.com/goccy/go-json"

	"wellness-engine/internal/model"
)

// Hash returns the SHA-256 hex digest of the canonical subset of a
// snapshot. Map keys serialize in sorted order, so the digest is stable
// for identical inputs.
func Hash(s *model.MemberHealthSnapshot) string {
	b, _ := json.Marshal(canonicalSubset(s))
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// canonicalSubset holds the identity and high-signal clinical fields the
// audit trail commits to. Chronic conditions are sorted; claims cost is
// serialized as its exact decimal string.
func canonicalSubset(s *model.MemberHealthSnapshot) map[string]interface{} {
	conditions := append([]string(nil), s.ChronicConditions...)
	sort.Strings(conditions)

	var bmi interface{}
	if s.BMI != nil {
		bmi = *s.BMI
	}

	return map[string]interface{}{
		"member_id":          s.MemberID,
		"age":                s.Age,
		"gender":             s.Gender,
		"bmi":                bmi,
		"chronic_conditions": conditions,
		"total_claims_cost":  s.TotalClaimsCost.String(),
	}
}

// fullForm is the complete snapshot as generic JSON, used for diffs.
func fullForm(s *model.MemberHealthSnapshot) interface{} {
	b, _ := json.Marshal(s)
	var v interface{}
	json.Unmarshal(b, &v)
	return v
}
