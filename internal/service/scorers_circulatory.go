package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// circulatoryScorers covers cardiovascular and hematologic diagnoses.
func circulatoryScorers() []*scorer {
	return []*scorer{
		{
			id:       "heart_failure",
			name:     "Acute heart failure",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "circulation.jugular_venous_distension", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.JugularVenousDistension, "Raised jugular venous pressure")
				}},
				{key: "circulation.hepatomegaly", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.Hepatomegaly, "Hepatomegaly")
				}},
				{key: "exposure.history.known_heart_disease", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownHeartDisease, "Known structural or acquired heart disease")
				}},
				{key: "breathing.breath_sounds", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Bibasal crackles suggesting pulmonary congestion", "crackles")
				}},
				{key: "circulation.peripheral_edema", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.PeripheralEdema, "Peripheral edema")
				}},
				{key: "circulation.heart_rate", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return tachycardiaForAge(s, "Tachycardia (%.0f bpm)")
				}},
			},
			nextQuestions: []string{
				"Sweating or breathlessness during feeds?",
				"Any prior echocardiogram?",
			},
		},
		{
			id:       "supraventricular_tachycardia",
			name:     "Supraventricular tachycardia",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "circulation.heart_rate", weight: 0.55, eval: func(s *domain.PrimarySurveyData) finding {
					hr := s.Circulation.HeartRate
					if hr == nil {
						return finding{}
					}
					limit := 180.0
					if s.AgeYears != nil && *s.AgeYears < 1 {
						limit = 220
					}
					return numAbove(hr, limit, "Rate beyond sinus range (%.0f bpm)")
				}},
				{key: "circulation.perfusion", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor perfusion with the arrhythmia")
				}},
				{key: "exposure.history.known_heart_disease", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownHeartDisease, "Known cardiac history")
				}},
			},
			nextQuestions: []string{
				"Was the onset abrupt?",
				"Previous episodes terminated with vagal maneuvers or adenosine?",
			},
		},
		{
			id:       "severe_anemia",
			name:     "Severe anemia",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.pallor", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Pallor, "Marked conjunctival and palmar pallor")
				}},
				{key: "circulation.heart_rate", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return tachycardiaForAge(s, "Compensatory tachycardia (%.0f bpm)")
				}},
				{key: "exposure.jaundice", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Jaundice, "Jaundice suggesting hemolysis")
				}},
				{key: "exposure.history.sickle_cell_disease", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.SickleCellDisease, "Known sickle cell disease")
				}},
				{key: "exposure.history.malaria_exposure", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.MalariaExposure, "Malaria-endemic exposure")
				}},
			},
			nextQuestions: []string{
				"Any dark urine or known hemoglobinopathy?",
			},
		},
		{
			id:       "severe_dehydration",
			name:     "Severe dehydration",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "circulation.dehydration_signs", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.DehydrationSigns, "Sunken eyes and reduced skin turgor")
				}},
				{key: "exposure.history.vomiting_or_diarrhea", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.VomitingOrDiarrhea, "Ongoing vomiting or diarrhea")
				}},
				{key: "circulation.perfusion", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor peripheral perfusion")
				}},
				{key: "circulation.heart_rate", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return tachycardiaForAge(s, "Tachycardia (%.0f bpm)")
				}},
				{key: "disability.consciousness_level", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Lethargy")
				}},
			},
			nextQuestions: []string{
				"Number of wet diapers or urine output in the last 24 hours?",
				"Duration and volume of fluid losses?",
			},
		},
		{
			id:       "sickle_cell_crisis",
			name:     "Sickle cell vaso-occlusive crisis",
			category: domain.SeverityUrgent,
			rules: []featureRule{
				{key: "exposure.history.sickle_cell_disease", weight: 0.45, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.SickleCellDisease, "Known sickle cell disease")
				}},
				{key: "exposure.pallor", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Pallor, "Pallor suggesting acute anemia")
				}},
				{key: "exposure.jaundice", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.Jaundice, "Jaundice from hemolysis")
				}},
				{key: "exposure.temperature_c", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.TemperatureC, 38.0, "Fever (%.1f°C) — sepsis risk in asplenia")
				}},
			},
			nextQuestions: []string{
				"Location and severity of pain?",
				"Chest pain or new cough suggesting acute chest syndrome?",
			},
		},
	}
}
