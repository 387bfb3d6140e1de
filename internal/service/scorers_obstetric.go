package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// obstetricScorers runs only for the pregnant/postpartum classification.
func obstetricScorers() []*scorer {
	pregnantOnly := []domain.PatientType{domain.PatientPregnantPostpartum}

	return []*scorer{
		{
			id:           "eclampsia",
			name:         "Eclampsia",
			category:     domain.SeverityCritical,
			patientTypes: pregnantOnly,
			gate: &featureRule{key: "disability.seizure.status", weight: 0.45, eval: func(s *domain.PrimarySurveyData) finding {
				return enumIs(s.Disability.Seizure.Status, "Seizure in a pregnant or postpartum patient", "active", "just_stopped")
			}},
			rules: []featureRule{
				{key: "circulation.systolic_bp", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Circulation.SystolicBP, 140, "Hypertension (%.0f mmHg systolic)")
				}},
				{key: "exposure.history.gestation_weeks", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.History.GestationWeeks, 20, "Gestation %.0f weeks — beyond 20 weeks")
				}},
				{key: "circulation.peripheral_edema", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.PeripheralEdema, "Significant edema")
				}},
				{key: "disability.consciousness_level", weight: 0.05, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Post-ictal depressed consciousness")
				}},
			},
			nextQuestions: []string{
				"Headache, visual disturbance, or epigastric pain before the seizure?",
				"Known proteinuria or pre-eclampsia this pregnancy?",
			},
		},
		{
			id:           "severe_preeclampsia",
			name:         "Severe pre-eclampsia",
			category:     domain.SeverityEmergent,
			patientTypes: pregnantOnly,
			rules: []featureRule{
				{key: "circulation.systolic_bp", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Circulation.SystolicBP, 160, "Severe hypertension (%.0f mmHg systolic)")
				}},
				{key: "exposure.history.gestation_weeks", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.History.GestationWeeks, 20, "Gestation %.0f weeks — beyond 20 weeks")
				}},
				{key: "circulation.peripheral_edema", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.PeripheralEdema, "Marked edema")
				}},
				{key: "disability.focal_deficit", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Disability.FocalDeficit, "Neurological irritability or visual symptoms")
				}},
			},
			nextQuestions: []string{
				"Urine protein result?",
				"Right upper quadrant pain?",
			},
		},
		{
			id:           "postpartum_hemorrhage",
			name:         "Postpartum hemorrhage",
			category:     domain.SeverityCritical,
			patientTypes: pregnantOnly,
			gate: &featureRule{key: "exposure.history.postpartum", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
				return boolFlag(s.Exposure.History.Postpartum, "Postpartum patient")
			}},
			rules: []featureRule{
				{key: "circulation.active_bleeding", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.ActiveBleeding, "Ongoing visible blood loss")
				}},
				{key: "circulation.bleeding_source", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Circulation.BleedingSource, "Uterine source of bleeding", "uterine")
				}},
				{key: "circulation.systolic_bp", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
				{key: "circulation.perfusion", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor perfusion from volume loss")
				}},
			},
			nextQuestions: []string{
				"Time since delivery and estimated blood loss?",
				"Is the uterus firm or boggy on palpation?",
			},
		},
	}
}
