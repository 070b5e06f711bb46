package scoring

import "fmt"

// ValidationError reports a missing required identity field. Optional
// clinical fields never produce it; they only lower completeness.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid snapshot: %s %s", e.Field, e.Reason)
}

func validate(s *snapshot) error {
	if s.MemberID == "" {
		return &ValidationError{Field: "member_id", Reason: "is required"}
	}
	if s.Age <= 0 {
		return &ValidationError{Field: "age", Reason: "must be positive"}
	}
	if s.Gender == "" {
		return &ValidationError{Field: "gender", Reason: "is required"}
	}
	return nil
}
