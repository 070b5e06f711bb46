package scoring

import (
	"sort"

	"wellness-engine/internal/model"
)

const maxInterventions = 8

// recommendInterventions builds the prioritized action list for a member.
// Critical-risk members always receive a care-manager assignment first.
func recommendInterventions(s *snapshot, factors []model.RiskFactorContribution, category model.RiskCategory) []string {
	var interventions []string

	if category == model.RiskCritical {
		interventions = append(interventions,
			"Assign dedicated care manager immediately",
			"Schedule comprehensive care coordination visit within 7 days")
	}

	if category == model.RiskHigh || category == model.RiskCritical {
		interventions = append(interventions, "Enroll in chronic disease management program")
		if s.HospitalAdmissions > 0 {
			interventions = append(interventions, "Post-discharge follow-up within 48 hours")
		}
	}

	// Address the top 3 modifiable risk factors.
	ranked := append([]model.RiskFactorContribution(nil), factors...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].ContributionPoints > ranked[b].ContributionPoints
	})
	for i, f := range ranked {
		if i == 3 {
			break
		}
		if f.RecommendedAction != "" {
			interventions = append(interventions, f.RecommendedAction)
		}
	}

	if s.PrimaryCareVisits == 0 {
		interventions = append(interventions, "Schedule annual wellness visit")
	}

	if s.ReportedStressLevel != nil && *s.ReportedStressLevel >= 7 {
		interventions = append(interventions, "Offer mental health screening and counseling resources")
	}

	if len(s.Medications) >= 3 {
		interventions = append(interventions, "Medication therapy management consultation")
	}

	if s.FoodInsecurity || s.TransportationBarriers {
		interventions = append(interventions, "Social work referral for community resource connection")
	}

	interventions = append(interventions, "Ensure up-to-date on age-appropriate preventive screenings")

	if len(interventions) > maxInterventions {
		interventions = interventions[:maxInterventions]
	}
	return interventions
}
