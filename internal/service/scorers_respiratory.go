package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// respiratoryScorers covers the airway and breathing diagnoses.
func respiratoryScorers() []*scorer {
	return []*scorer{
		{
			id:       "upper_airway_obstruction",
			name:     "Upper airway obstruction",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "airway.patency", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Patency, "Airway compromise on examination", "partial_obstruction", "complete_obstruction")
				}},
				{key: "airway.stridor", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Stridor, "Stridor at rest", "inspiratory", "biphasic")
				}},
				{key: "airway.drooling", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Airway.Drooling, "Drooling, unable to handle secretions")
				}},
				{key: "airway.neck_swelling", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Airway.NeckSwelling, "Neck or submandibular swelling")
				}},
			},
			nextQuestions: []string{
				"Was the onset sudden or gradual?",
				"Any possibility of an inhaled object or caustic ingestion?",
			},
		},
		{
			id:       "severe_asthma",
			name:     "Severe acute asthma",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "breathing.breath_sounds", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Widespread expiratory wheeze", "wheeze")
				}},
				{key: "breathing.silent_chest", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Silent chest indicating critical airflow limitation", "silent_chest")
				}},
				{key: "breathing.work_of_breathing", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.WorkOfBreathing, "Severe work of breathing", "severe")
				}},
				{key: "breathing.spo2", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Breathing.SpO2, 92, "Hypoxemia (SpO2 %.0f%%)")
				}},
				{key: "exposure.history.known_asthma", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownAsthma, "Known asthma")
				}},
			},
			nextQuestions: []string{
				"Previous ICU admission or intubation for asthma?",
				"How many bronchodilator doses were given before arrival?",
			},
		},
		{
			id:       "croup",
			name:     "Croup (laryngotracheobronchitis)",
			category: domain.SeverityUrgent,
			rules: []featureRule{
				{key: "airway.stridor", weight: 0.40, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Stridor, "Inspiratory stridor", "inspiratory", "biphasic")
				}},
				{key: "breathing.work_of_breathing", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.WorkOfBreathing, "Moderate to severe work of breathing", "moderate", "severe")
				}},
				{key: "breathing.retractions", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Breathing.Retractions, "Suprasternal and intercostal retractions")
				}},
				{key: "exposure.temperature_c", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.TemperatureC, 37.5, "Low-grade fever (%.1f°C)")
				}},
			},
			nextQuestions: []string{
				"Is the cough barking in character?",
				"Symptoms worse at night?",
			},
		},
		{
			id:       "foreign_body_aspiration",
			name:     "Foreign body aspiration",
			category: domain.SeverityEmergent,
			rules: []featureRule{
				{key: "exposure.history.choking_episode", weight: 0.45, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.ChokingEpisode, "Witnessed choking episode")
				}},
				{key: "breathing.breath_sounds", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Asymmetric air entry", "asymmetric")
				}},
				{key: "airway.stridor", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Airway.Stridor, "Stridor of sudden onset", "inspiratory", "biphasic")
				}},
			},
			nextQuestions: []string{
				"Was the child eating or playing with small objects when symptoms started?",
			},
		},
		{
			id:       "pneumonia",
			name:     "Pneumonia",
			category: domain.SeverityUrgent,
			rules: []featureRule{
				{key: "breathing.breath_sounds", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Focal crackles on auscultation", "crackles")
				}},
				{key: "exposure.temperature_c", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Exposure.TemperatureC, 38.0, "Fever (%.1f°C)")
				}},
				{key: "breathing.respiratory_rate", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Breathing.RespiratoryRate, 50, "Tachypnea (%.0f breaths/min)")
				}},
				{key: "breathing.grunting", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Expiratory grunting", "grunting")
				}},
				{key: "breathing.spo2", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Breathing.SpO2, 92, "Hypoxemia (SpO2 %.0f%%)")
				}},
			},
			nextQuestions: []string{
				"Duration of cough and fever?",
				"Vaccination status, including pneumococcal vaccine?",
			},
		},
		{
			id:           "bronchiolitis",
			name:         "Bronchiolitis",
			category:     domain.SeverityUrgent,
			patientTypes: []domain.PatientType{domain.PatientNeonate, domain.PatientChild},
			rules: []featureRule{
				{key: "breathing.breath_sounds", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Diffuse wheeze with fine crackles", "wheeze")
				}},
				{key: "breathing.retractions", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Breathing.Retractions, "Chest wall retractions")
				}},
				{key: "exposure.history.poor_feeding", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.PoorFeeding, "Feeding poorly")
				}},
				{key: "breathing.respiratory_rate", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return numAbove(s.Breathing.RespiratoryRate, 60, "Tachypnea (%.0f breaths/min)")
				}},
				{key: "breathing.spo2", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Breathing.SpO2, 92, "Hypoxemia (SpO2 %.0f%%)")
				}},
			},
			nextQuestions: []string{
				"Preceding coryzal illness?",
				"Apneic episodes at home?",
			},
		},
		{
			id:       "tension_pneumothorax",
			name:     "Tension pneumothorax",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "breathing.breath_sounds", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Unilateral absent breath sounds", "asymmetric")
				}},
				{key: "breathing.tracheal_shift", weight: 0.35, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Breathing.TrachealShift, "Tracheal deviation away from the affected side")
				}},
				{key: "circulation.systolic_bp", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
				{key: "circulation.jugular_venous_distension", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.JugularVenousDistension, "Distended neck veins")
				}},
				{key: "exposure.trauma_signs", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.TraumaSigns, "Chest trauma signs")
				}},
			},
			nextQuestions: []string{
				"Recent chest trauma, central line attempt, or positive-pressure ventilation?",
			},
		},
	}
}
