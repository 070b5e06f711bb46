package model

import "github.com/shopspring/decimal"

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

const (
	AlcoholNone     = "none"
	AlcoholModerate = "moderate"
	AlcoholHeavy    = "heavy"
)

// MemberHealthSnapshot is the input to a single scoring request. Optional
// clinical and wearable fields are pointers; nil means "unknown" and lowers
// the completeness score instead of failing the calculation.
type MemberHealthSnapshot struct {
	MemberID string `json:"member_id"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`

	// Biometrics
	BMI                    *float64 `json:"bmi,omitempty"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic,omitempty"`
	GlucoseLevel           *int     `json:"glucose_level,omitempty"`
	CholesterolTotal       *int     `json:"cholesterol_total,omitempty"`
	CholesterolHDL         *int     `json:"cholesterol_hdl,omitempty"`
	CholesterolLDL         *int     `json:"cholesterol_ldl,omitempty"`

	// Wearable data (30-day averages)
	AvgDailySteps          *int     `json:"avg_daily_steps,omitempty"`
	AvgSleepHours          *float64 `json:"avg_sleep_hours,omitempty"`
	AvgRestingHeartRate    *int     `json:"avg_resting_heart_rate,omitempty"`
	ExerciseMinutesPerWeek *int     `json:"exercise_minutes_per_week,omitempty"`

	// Clinical data
	ChronicConditions []string `json:"chronic_conditions,omitempty"` // ICD-10 codes
	Medications       []string `json:"medications,omitempty"`

	// Claims history (trailing 12 months)
	TotalClaimsCost    decimal.Decimal `json:"total_claims_cost"`
	EmergencyVisits    int             `json:"emergency_visits"`
	HospitalAdmissions int             `json:"hospital_admissions"`
	PrimaryCareVisits  int             `json:"primary_care_visits"`
	SpecialistVisits   int             `json:"specialist_visits"`

	// Behavioral factors
	Smoker              bool   `json:"smoker"`
	AlcoholUse          string `json:"alcohol_use,omitempty"`
	ReportedStressLevel *int   `json:"reported_stress_level,omitempty"` // 1-10

	// Social determinants
	HasPrimaryCarePhysician bool `json:"has_primary_care_physician"`
	HealthLiteracyScore     *int `json:"health_literacy_score,omitempty"` // 1-100
	FoodInsecurity          bool `json:"food_insecurity"`
	TransportationBarriers  bool `json:"transportation_barriers"`
}
