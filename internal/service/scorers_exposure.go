package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// exposureScorers covers allergy and burn diagnoses found on exposure.
func exposureScorers() []*scorer {
	return []*scorer{
		{
			id:       "anaphylaxis",
			name:     "Anaphylaxis",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "exposure.history.allergen_exposure", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.AllergenExposure, "Recent exposure to a known or likely allergen")
				}},
				{key: "exposure.rash", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Exposure.Rash, "Urticarial rash", "urticarial")
				}},
				{key: "breathing.breath_sounds", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Wheeze from lower airway involvement", "wheeze")
				}},
				{key: "airway.stridor", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Stridor, "Stridor suggesting laryngeal edema", "inspiratory", "biphasic")
				}},
				{key: "circulation.systolic_bp", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
			},
			nextQuestions: []string{
				"Minutes from exposure to symptom onset?",
				"Previous anaphylaxis or prescribed epinephrine autoinjector?",
			},
		},
		{
			id:       "severe_burns",
			name:     "Severe burns",
			category: domain.SeverityCritical,
			gate: &featureRule{key: "exposure.visible_burns", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
				return boolFlag(s.Exposure.VisibleBurns, "Visible burn injury")
			}},
			rules: []featureRule{
				{key: "exposure.burn_surface_area_pct", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.BurnSurfaceAreaPct, 10, "Burn surface area %.0f%% of body surface")
				}},
				{key: "airway.stridor", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Stridor, "Stridor suggesting inhalational airway injury", "inspiratory", "biphasic")
				}},
				{key: "circulation.systolic_bp", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
			},
			nextQuestions: []string{
				"Enclosed-space fire or facial burns raising inhalation concern?",
				"Burn mechanism and time of injury?",
			},
		},
	}
}
