package scoring

import (
	"testing"

	"github.com/shopspring/decimal"

	"wellness-engine/internal/model"
)

var nationalAvg = decimal.NewFromInt(5800)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// diabeticHypertensiveSnapshot is a 58-year-old male with type 2 diabetes,
// hypertension, obesity, elevated glucose and two ED visits.
func diabeticHypertensiveSnapshot() *model.MemberHealthSnapshot {
	return &model.MemberHealthSnapshot{
		MemberID:                "M-1001",
		Age:                     58,
		Gender:                  model.GenderMale,
		BMI:                     fptr(31.5),
		BloodPressureSystolic:   iptr(148),
		GlucoseLevel:            iptr(135),
		ChronicConditions:       []string{"E11.9", "I10"},
		TotalClaimsCost:         decimal.NewFromInt(8500),
		EmergencyVisits:         2,
		PrimaryCareVisits:       2,
		HasPrimaryCarePhysician: true,
	}
}

func TestCalculateDiabeticHypertensiveMember(t *testing.T) {
	eng := NewEngine(nationalAvg)

	score, err := eng.Calculate(diabeticHypertensiveSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score.Score < 1 || score.Score > 100 {
		t.Fatalf("score %v out of [1,100]", score.Score)
	}

	// E11 (15) + I10 (12) + obese BMI (12) + stage 2 BP (15) + diabetic
	// glucose (18) = 72.
	if score.Components.Clinical != 72 {
		t.Fatalf("expected clinical sub-score 72, got %v", score.Components.Clinical)
	}

	// Age 58 (20) + male over 50 (5).
	if score.Components.Demographic != 25 {
		t.Fatalf("expected demographic sub-score 25, got %v", score.Components.Demographic)
	}

	// 2 ED visits (30) + claims 1.47x benchmark (5).
	if score.Components.Utilization != 35 {
		t.Fatalf("expected utilization sub-score 35, got %v", score.Components.Utilization)
	}

	if score.RiskCategory != model.RiskModerate {
		t.Fatalf("expected moderate category, got %s", score.RiskCategory)
	}

	if !score.PredictedAnnualCost.GreaterThan(nationalAvg) {
		t.Fatalf("predicted cost %s not above benchmark %s", score.PredictedAnnualCost, nationalAvg)
	}

	if score.InputHash == "" {
		t.Fatal("expected a non-empty input hash")
	}
}

func TestCalculateCriticalMember(t *testing.T) {
	eng := NewEngine(nationalAvg)

	s := diabeticHypertensiveSnapshot()
	s.Age = 78
	s.ChronicConditions = append(s.ChronicConditions, "I50.9", "N18.4")
	s.Medications = []string{"metformin", "lisinopril", "furosemide", "atorvastatin", "insulin"}
	s.Smoker = true
	s.AlcoholUse = model.AlcoholHeavy
	s.AvgDailySteps = iptr(2100)
	s.AvgSleepHours = fptr(5.2)
	s.ReportedStressLevel = iptr(9)
	s.HospitalAdmissions = 2
	s.EmergencyVisits = 4
	s.TotalClaimsCost = decimal.NewFromInt(42000)
	s.HasPrimaryCarePhysician = false

	score, err := eng.Calculate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score.RiskCategory != model.RiskCritical {
		t.Fatalf("expected critical category, got %s (score %v)", score.RiskCategory, score.Score)
	}

	if score.Score > 100 {
		t.Fatalf("score %v exceeds cap", score.Score)
	}

	// Critical members always get the care-manager assignment first.
	if len(score.RecommendedInterventions) == 0 {
		t.Fatal("expected recommended interventions")
	}
	if score.RecommendedInterventions[0] != "Assign dedicated care manager immediately" {
		t.Fatalf("expected care manager assignment first, got %q", score.RecommendedInterventions[0])
	}
	if len(score.RecommendedInterventions) > 8 {
		t.Fatalf("expected at most 8 interventions, got %d", len(score.RecommendedInterventions))
	}
}

func TestCategorizeBandBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  model.RiskCategory
	}{
		{1, model.RiskLow},
		{30, model.RiskLow},
		{30.01, model.RiskModerate},
		{60, model.RiskModerate},
		{60.01, model.RiskHigh},
		{85, model.RiskHigh},
		{85.01, model.RiskCritical},
		{100, model.RiskCritical},
	}

	for _, c := range cases {
		if got := Categorize(c.score); got != c.want {
			t.Fatalf("Categorize(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	eng := NewEngine(nationalAvg)

	first, err := eng.Calculate(diabeticHypertensiveSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eng.Calculate(diabeticHypertensiveSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Score != second.Score {
		t.Fatalf("scores diverged: %v vs %v", first.Score, second.Score)
	}
	if first.RiskCategory != second.RiskCategory {
		t.Fatalf("categories diverged: %s vs %s", first.RiskCategory, second.RiskCategory)
	}
	if first.InputHash != second.InputHash {
		t.Fatalf("hashes diverged: %s vs %s", first.InputHash, second.InputHash)
	}
	if !first.PredictedAnnualCost.Equal(second.PredictedAnnualCost) {
		t.Fatalf("predicted costs diverged: %s vs %s", first.PredictedAnnualCost, second.PredictedAnnualCost)
	}
}

func TestCalculateValidation(t *testing.T) {
	eng := NewEngine(nationalAvg)

	cases := []struct {
		name      string
		mutate    func(*model.MemberHealthSnapshot)
		wantField string
	}{
		{"missing member id", func(s *model.MemberHealthSnapshot) { s.MemberID = "" }, "member_id"},
		{"zero age", func(s *model.MemberHealthSnapshot) { s.Age = 0 }, "age"},
		{"missing gender", func(s *model.MemberHealthSnapshot) { s.Gender = "" }, "gender"},
	}

	for _, c := range cases {
		s := diabeticHypertensiveSnapshot()
		c.mutate(s)

		_, err := eng.Calculate(s)
		verr, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("%s: expected *ValidationError, got %v", c.name, err)
		}
		if verr.Field != c.wantField {
			t.Fatalf("%s: expected field %s, got %s", c.name, c.wantField, verr.Field)
		}
	}
}

func TestDataCompleteness(t *testing.T) {
	bare := &model.MemberHealthSnapshot{MemberID: "M-2", Age: 30, Gender: model.GenderFemale}
	if got := dataCompleteness(bare); got != 0 {
		t.Fatalf("expected completeness 0 for bare snapshot, got %v", got)
	}

	// 3 of the 13 optional scalars plus conditions and claims: 5/16.
	s := diabeticHypertensiveSnapshot()
	if got := dataCompleteness(s); got != 5.0/16.0 {
		t.Fatalf("expected completeness 5/16, got %v", got)
	}
}

func TestConfidenceCappedAt95(t *testing.T) {
	s := diabeticHypertensiveSnapshot()
	s.BloodPressureDiastolic = iptr(92)
	s.CholesterolTotal = iptr(210)
	s.CholesterolHDL = iptr(40)
	s.CholesterolLDL = iptr(150)
	s.AvgDailySteps = iptr(4000)
	s.AvgSleepHours = fptr(6.5)
	s.AvgRestingHeartRate = iptr(74)
	s.ExerciseMinutesPerWeek = iptr(60)
	s.ReportedStressLevel = iptr(5)
	s.HealthLiteracyScore = iptr(70)
	s.Medications = []string{"metformin"}

	if got := confidence(s, dataCompleteness(s)); got != 0.95 {
		t.Fatalf("expected confidence capped at 0.95, got %v", got)
	}
}
