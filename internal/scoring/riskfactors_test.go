package scoring

import (
	"testing"

	"wellness-engine/internal/model"
)

func TestExtractRiskFactors(t *testing.T) {
	s := &model.MemberHealthSnapshot{
		MemberID:              "M-20",
		Age:                   52,
		Gender:                model.GenderFemale,
		Smoker:                true,
		AvgDailySteps:         iptr(3200),
		BMI:                   fptr(33.0),
		BloodPressureSystolic: iptr(152),
		ChronicConditions:     []string{"E11.9"},
		EmergencyVisits:       3,
		FoodInsecurity:        true,
	}

	factors := extractRiskFactors(s)

	byKey := make(map[string]model.RiskFactorContribution, len(factors))
	for _, f := range factors {
		byKey[f.FactorKey] = f
	}

	wantKeys := []string{
		KeyChronicDisease,
		KeyTobaccoUse,
		KeyInactivity,
		KeyObesity,
		KeyHypertension,
		KeyHighEDUse,
		KeyNoPreventiveCare,
		KeyFoodInsecurity,
	}
	for _, key := range wantKeys {
		if _, ok := byKey[key]; !ok {
			t.Fatalf("expected factor %s to be extracted", key)
		}
	}

	if byKey[KeyTobaccoUse].ContributionPoints != 30 {
		t.Fatalf("expected tobacco at 30 points, got %v", byKey[KeyTobaccoUse].ContributionPoints)
	}
	if byKey[KeyHighEDUse].ContributionPoints != 45 {
		t.Fatalf("expected 3 ED visits at 45 points, got %v", byKey[KeyHighEDUse].ContributionPoints)
	}
}

func TestTopFactorsOrderingAndTruncation(t *testing.T) {
	s := &model.MemberHealthSnapshot{
		MemberID:              "M-21",
		Age:                   52,
		Gender:                model.GenderFemale,
		Smoker:                true,
		AvgDailySteps:         iptr(3200),
		BMI:                   fptr(33.0),
		BloodPressureSystolic: iptr(152),
		ChronicConditions:     []string{"E11.9"},
		EmergencyVisits:       3,
		FoodInsecurity:        true,
	}

	top := topFactors(extractRiskFactors(s), 5)

	if len(top) != 5 {
		t.Fatalf("expected 5 factors, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].ContributionPoints > top[i-1].ContributionPoints {
			t.Fatalf("factors not sorted descending at %d: %v > %v", i, top[i].ContributionPoints, top[i-1].ContributionPoints)
		}
	}
	if top[0].FactorKey != KeyHighEDUse {
		t.Fatalf("expected high ED use (45 pts) first, got %s", top[0].FactorKey)
	}
}

func TestTopFactorsStableTieBreak(t *testing.T) {
	factors := []model.RiskFactorContribution{
		{FactorKey: "a", ContributionPoints: 10},
		{FactorKey: "b", ContributionPoints: 10},
		{FactorKey: "c", ContributionPoints: 10},
	}

	top := topFactors(factors, 3)
	for i, want := range []string{"a", "b", "c"} {
		if top[i].FactorKey != want {
			t.Fatalf("tie-break not stable: position %d is %s, want %s", i, top[i].FactorKey, want)
		}
	}
}
