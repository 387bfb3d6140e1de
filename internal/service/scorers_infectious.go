package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// infectiousScorers covers the infection-driven diagnoses outside the shock
// sub-classifier. Neonatal sepsis runs only for the neonate classification.
func infectiousScorers() []*scorer {
	return []*scorer{
		{
			id:       "severe_malaria",
			name:     "Severe malaria",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.history.malaria_exposure", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.MalariaExposure, "Residence in or travel to a malaria-endemic area")
				}},
				{key: "exposure.temperature_c", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.TemperatureC, 38.0, "Fever (%.1f°C)")
				}},
				{key: "disability.consciousness_level", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Impaired consciousness — possible cerebral malaria")
				}},
				{key: "exposure.pallor", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Pallor, "Severe pallor")
				}},
				{key: "exposure.jaundice", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Jaundice, "Jaundice")
				}},
			},
			nextQuestions: []string{
				"Rapid diagnostic test or blood film available?",
				"Dark urine suggesting hemoglobinuria?",
			},
		},
		{
			id:           "neonatal_sepsis",
			name:         "Neonatal sepsis",
			category:     domain.SeverityCritical,
			patientTypes: []domain.PatientType{domain.PatientNeonate},
			rules: []featureRule{
				{key: "exposure.temperature_c", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return feverOrHypothermia(s, "Temperature instability (%.1f°C)")
				}},
				{key: "exposure.history.poor_feeding", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.PoorFeeding, "Poor feeding")
				}},
				{key: "disability.consciousness_level", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Lethargy or reduced tone")
				}},
				{key: "breathing.breath_sounds", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Expiratory grunting", "grunting")
				}},
				{key: "breathing.pattern", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.Pattern, "Apneic episodes", "apneic", "irregular")
				}},
				{key: "circulation.perfusion", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor peripheral perfusion")
				}},
			},
			nextQuestions: []string{
				"Maternal fever, prolonged rupture of membranes, or GBS status?",
				"Age in days at symptom onset?",
			},
		},
	}
}
