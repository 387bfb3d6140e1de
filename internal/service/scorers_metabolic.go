package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// metabolicScorers covers glucose, electrolyte, and toxic diagnoses.
func metabolicScorers() []*scorer {
	return []*scorer{
		{
			id:       "dka",
			name:     "Diabetic ketoacidosis",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "disability.blood_glucose", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Disability.BloodGlucose, 11, "Marked hyperglycemia (%.1f mmol/L)")
				}},
				{key: "breathing.pattern", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.Pattern, "Kussmaul (deep sighing) respirations", "deep_kussmaul")
				}},
				{key: "circulation.perfusion", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor peripheral perfusion suggesting dehydration")
				}},
				{key: "exposure.history.known_diabetes", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownDiabetes, "Known diabetes mellitus")
				}},
				{key: "exposure.history.vomiting_or_diarrhea", weight: 0.05, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.VomitingOrDiarrhea, "Vomiting")
				}},
			},
			nextQuestions: []string{
				"Polyuria, polydipsia, or recent weight loss?",
				"Urine or blood ketones available?",
			},
		},
		{
			id:       "hypoglycemia",
			name:     "Hypoglycemia",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "disability.blood_glucose", weight: 0.90, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Disability.BloodGlucose, 3.0, "Severe hypoglycemia (%.1f mmol/L)")
				}},
				{key: "disability.consciousness_level", weight: 0.05, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Altered consciousness consistent with neuroglycopenia")
				}},
				{key: "disability.seizure.status", weight: 0.04, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Disability.Seizure.Status, "Hypoglycemic seizure", "active", "just_stopped")
				}},
			},
			nextQuestions: []string{
				"Last oral intake and any insulin or oral hypoglycemic exposure?",
			},
		},
		{
			id:       "hyperkalemia",
			name:     "Hyperkalemia",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.history.known_renal_disease", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownRenalDisease, "Known renal disease")
				}},
				{key: "circulation.heart_rate", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Circulation.HeartRate, 60, "Bradycardia (%.0f bpm) raising arrhythmia concern")
				}},
				{key: "circulation.perfusion", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor perfusion with possible rhythm compromise")
				}},
				{key: "disability.consciousness_level", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Weakness and lethargy")
				}},
			},
			nextQuestions: []string{
				"Missed dialysis sessions or potassium-sparing drugs?",
				"ECG changes (peaked T waves, widened QRS)?",
			},
		},
		{
			id:       "poisoning",
			name:     "Acute poisoning or ingestion",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.history.ingestion_suspected", weight: 0.45, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.IngestionSuspected, "Suspected ingestion of a toxic substance")
				}},
				{key: "disability.pupils", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Disability.Pupils, "Toxidromic pupillary findings", "pinpoint", "dilated")
				}},
				{key: "disability.consciousness_level", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Depressed consciousness")
				}},
				{key: "breathing.respiratory_rate", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Breathing.RespiratoryRate, 12, "Respiratory depression (%.0f breaths/min)")
				}},
			},
			nextQuestions: []string{
				"What substances are accessible in the home?",
				"Time since possible ingestion?",
			},
		},
	}
}
