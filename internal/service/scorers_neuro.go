package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// neuroScorers covers the disability-section diagnoses.
func neuroScorers() []*scorer {
	return []*scorer{
		{
			id:       "status_epilepticus",
			name:     "Status epilepticus",
			category: domain.SeverityCritical,
			// An active or just-terminated seizure is mandatory; without it the
			// scorer never accumulates partial evidence.
			gate: &featureRule{key: "disability.seizure.status", weight: 0.50, eval: func(s *domain.PrimarySurveyData) finding {
				return enumIs(s.Disability.Seizure.Status, "Active or just-terminated seizure", "active", "just_stopped")
			}},
			rules: []featureRule{
				{key: "disability.seizure.duration_min", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Disability.Seizure.DurationMin, 5, "Seizure duration %.0f min exceeds 5 minutes")
				}},
				{key: "disability.consciousness_level", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Not returned to baseline consciousness")
				}},
			},
			nextQuestions: []string{
				"Exact seizure duration and any treatment already given?",
				"Known epilepsy and usual antiepileptic medication?",
			},
		},
		{
			id:       "meningitis",
			name:     "Bacterial meningitis",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "disability.neck_stiffness", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Disability.NeckStiffness, "Neck stiffness")
				}},
				{key: "exposure.rash", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Exposure.Rash, "Non-blanching petechial or purpuric rash", "petechial", "purpuric")
				}},
				{key: "exposure.temperature_c", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.TemperatureC, 38.0, "Fever (%.1f°C)")
				}},
				{key: "disability.bulging_fontanelle", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Disability.BulgingFontanelle, "Bulging fontanelle")
				}},
				{key: "disability.consciousness_level", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Reduced level of consciousness")
				}},
			},
			nextQuestions: []string{
				"Photophobia or severe headache in the verbal child?",
				"Recent antibiotic use that could mask findings?",
			},
		},
		{
			id:       "raised_icp",
			name:     "Raised intracranial pressure",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "disability.pupils", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Disability.Pupils, "Abnormal pupillary size or reactivity", "unequal", "dilated", "sluggish")
				}},
				{key: "disability.posturing", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Disability.Posturing, "Decorticate or decerebrate posturing")
				}},
				{key: "breathing.pattern", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.Pattern, "Irregular central breathing pattern", "irregular", "gasping")
				}},
				{key: "disability.consciousness_level", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Disability.ConsciousnessLevel, "Responds only to pain or unresponsive", "pain", "unresponsive")
				}},
			},
			nextQuestions: []string{
				"Early-morning vomiting or progressive headache?",
				"Ventriculoperitoneal shunt in place?",
			},
		},
		{
			id:       "traumatic_brain_injury",
			name:     "Traumatic brain injury",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.trauma_signs", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.TraumaSigns, "External signs of head or facial trauma")
				}},
				{key: "disability.consciousness_level", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return reducedConsciousness(s, "Reduced level of consciousness after injury")
				}},
				{key: "disability.pupils", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Disability.Pupils, "Unequal pupils", "unequal")
				}},
				{key: "exposure.history.recent_trauma", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.RecentTrauma, "Reported significant mechanism of injury")
				}},
				{key: "exposure.history.vomiting_or_diarrhea", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.VomitingOrDiarrhea, "Post-injury vomiting")
				}},
			},
			nextQuestions: []string{
				"Loss of consciousness at the scene?",
				"Anticoagulant use or bleeding disorder?",
			},
		},
	}
}
