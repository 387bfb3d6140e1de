package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// IntegratedProtocolGenerator merges treatment for matched dangerous overlaps
// into one authored sequence. Protocols are keyed by the catalogue entry's
// protocol id; overlaps without an authored protocol get a generic
// multi-system caution rather than silence.
type IntegratedProtocolGenerator struct {
	logger    *logrus.Logger
	protocols map[string]func(s *domain.PrimarySurveyData) domain.IntegratedProtocol
}

// NewIntegratedProtocolGenerator creates the generator with all authored protocols
func NewIntegratedProtocolGenerator(logger *logrus.Logger) *IntegratedProtocolGenerator {
	g := &IntegratedProtocolGenerator{
		logger:    logger,
		protocols: make(map[string]func(s *domain.PrimarySurveyData) domain.IntegratedProtocol),
	}
	g.protocols["sepsis_dka"] = buildSepsisDKAProtocol
	g.protocols["anaphylaxis_asthma"] = buildAnaphylaxisAsthmaProtocol
	g.protocols["heart_failure_pneumonia"] = buildHeartFailurePneumoniaProtocol
	g.protocols["meningitis_sepsis"] = buildMeningitisSepsisProtocol
	g.protocols["eclampsia_pph"] = buildEclampsiaPPHProtocol
	g.protocols["hypovolemia_anemia"] = buildHypovolemiaAnemiaProtocol
	return g
}

// Synthesize produces the merged protocol for an overlap assessment. Authored
// protocols for matched catalogue entries are concatenated; when conditions
// overlap without a catalogue match, a generic cross-system caution is
// emitted so multi-system presentations are never reported as routine.
func (g *IntegratedProtocolGenerator) Synthesize(assessment domain.OverlapAssessment, survey *domain.PrimarySurveyData) domain.IntegratedProtocol {
	merged := domain.IntegratedProtocol{
		ImmediateInterventions:    []domain.Intervention{},
		SystemInteractionWarnings: []string{},
		PrioritySequence:          []string{},
		ConflictResolutions:       []string{},
	}

	for _, overlap := range assessment.DangerousOverlaps {
		builder, ok := g.protocols[overlap.ProtocolID]
		if !ok {
			g.logger.WithField("protocol_id", overlap.ProtocolID).Warn("Catalogue entry without an authored protocol")
			merged.SystemInteractionWarnings = append(merged.SystemInteractionWarnings, overlap.InteractionWarnings...)
			continue
		}
		p := builder(survey)
		merged.ImmediateInterventions = append(merged.ImmediateInterventions, p.ImmediateInterventions...)
		merged.SystemInteractionWarnings = append(merged.SystemInteractionWarnings, p.SystemInteractionWarnings...)
		merged.PrioritySequence = append(merged.PrioritySequence, p.PrioritySequence...)
		merged.ConflictResolutions = append(merged.ConflictResolutions, p.ConflictResolutions...)
	}

	if len(assessment.DangerousOverlaps) == 0 && len(assessment.Overlapping) >= 2 {
		names := make([]string, 0, len(assessment.Overlapping))
		for _, d := range assessment.Overlapping {
			names = append(names, d.Name)
		}
		merged.SystemInteractionWarnings = append(merged.SystemInteractionWarnings,
			fmt.Sprintf("Multiple concurrent high-probability conditions (%s) — treat the most rapidly lethal first and reassess after every intervention", strings.Join(names, ", ")))
		merged.PrioritySequence = append(merged.PrioritySequence,
			"Address airway and breathing threats before circulatory support",
			"Reassess the full differential after each intervention")
	}

	g.logger.WithFields(logrus.Fields{
		"matched_protocols": len(assessment.DangerousOverlaps),
		"warnings":          len(merged.SystemInteractionWarnings),
	}).Debug("Integrated protocol synthesized")

	return merged
}

func buildSepsisDKAProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "fluid_bolus",
				Name:           "Moderated fluid resuscitation",
				Tier:           domain.TierImmediate,
				Indication:     "Shock with concurrent ketoacidosis",
				RiskIfWrong:    "Cerebral edema from over-resuscitation",
				BenefitIfRight: "Treats sepsis hypoperfusion without the ketoacidosis fluid penalty",
				TimeWindow:     "First 15 minutes",
				Dosing:         weightDose(s, 10, "mL over 30-60 min", "10 mL/kg 0.9% saline, reassess before repeating", "IV"),
				Monitoring: []string{
					"Complete fluid resuscitation before starting insulin",
					"Neurological observations hourly for cerebral edema",
					"Reassess perfusion after every bolus before repeating",
				},
			},
			{
				ID:             "empiric_antibiotics",
				Name:           "Empiric broad-spectrum antibiotics",
				Tier:           domain.TierImmediate,
				Indication:     "Sepsis cannot wait for ketoacidosis workup",
				RiskIfWrong:    "Minimal",
				BenefitIfRight: "Covers the infective driver of both processes",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose(s, 50, "mg", "Ceftriaxone 50 mg/kg (max 2 g)", "IV"),
			},
		},
		SystemInteractionWarnings: []string{
			"Use 10 mL/kg boluses, not the 20 mL/kg sepsis default — ketoacidosis raises cerebral edema risk",
			"Delay insulin until at least one hour of fluids has run",
		},
		PrioritySequence: []string{
			"Moderated fluid bolus first",
			"Antibiotics within the first hour",
			"Insulin infusion only after fluid resuscitation, never before",
			"Potassium replacement once urine output is confirmed",
		},
		ConflictResolutions: []string{
			"Fluid volume: ketoacidosis caution (10 mL/kg, reassess) overrides the sepsis 20 mL/kg default",
			"Insulin timing: deferred behind fluids despite hyperglycemia",
		},
	}
}

func buildAnaphylaxisAsthmaProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "epinephrine_im",
				Name:           "Intramuscular epinephrine",
				Tier:           domain.TierImmediate,
				Indication:     "Bronchospasm with possible anaphylaxis",
				RiskIfWrong:    "Transient tachycardia in a pure asthmatic",
				BenefitIfRight: "Treats both anaphylactic and asthmatic bronchospasm",
				TimeWindow:     "Immediately",
				Dosing:         weightDose1(s, 0.01, "mg (max 0.5 mg)", "0.01 mg/kg of 1 mg/mL solution", "IM"),
			},
		},
		SystemInteractionWarnings: []string{
			"Salbutamol alone will not reverse anaphylaxis — give epinephrine first when the two cannot be distinguished",
		},
		PrioritySequence: []string{
			"IM epinephrine before any nebulized therapy",
			"Nebulized salbutamol as the adjunct, not the substitute",
			"Systemic corticosteroids once epinephrine is given",
		},
		ConflictResolutions: []string{
			"When anaphylaxis and asthma are both plausible, epinephrine is the default — it treats both, salbutamol treats only one",
		},
	}
}

func buildHeartFailurePneumoniaProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "oxygen_high_flow",
				Name:           "Oxygen, upright positioning, restricted fluids",
				Tier:           domain.TierImmediate,
				Indication:     "Respiratory infection on a failing ventricle",
				RiskIfWrong:    "Negligible",
				BenefitIfRight: "Supports both processes without volume penalty",
			},
		},
		SystemInteractionWarnings: []string{
			"Restrict maintenance fluids to two-thirds; standard pneumonia volumes can decompensate heart failure",
		},
		PrioritySequence: []string{
			"Oxygen and positioning first",
			"Antibiotics within the first hour",
			"Diuretic before any fluid bolus is considered",
		},
		ConflictResolutions: []string{
			"Fluids: heart-failure restriction overrides pneumonia maintenance volumes",
		},
	}
}

func buildMeningitisSepsisProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "empiric_antibiotics",
				Name:           "Meningitic-dose antibiotics",
				Tier:           domain.TierImmediate,
				Indication:     "Covers both meningitis and septicemia",
				RiskIfWrong:    "Minimal",
				BenefitIfRight: "One agent at meningitic dose treats both",
				TimeWindow:     "Within 1 hour",
				Dosing:         weightDose(s, 100, "mg (max 4 g)", "Ceftriaxone 100 mg/kg", "IV"),
			},
		},
		SystemInteractionWarnings: []string{
			"Titrate fluids between shock correction and intracranial pressure — reassess neurology after every bolus",
			"Lumbar puncture deferred until hemodynamically stable with no raised-pressure signs",
		},
		PrioritySequence: []string{
			"Cautious fluid bolus with neurological reassessment",
			"Meningitic-dose antibiotics within the hour",
			"Lumbar puncture only after stabilization",
		},
		ConflictResolutions: []string{
			"Antibiotic dose: meningitic (higher) dosing wins over standard sepsis dosing",
			"Lumbar puncture: deferred behind hemodynamic and intracranial-pressure concerns",
		},
	}
}

func buildEclampsiaPPHProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "magnesium_sulfate",
				Name:           "Magnesium sulfate with concurrent uterotonic cover",
				Tier:           domain.TierImmediate,
				Indication:     "Eclamptic seizure with active postpartum bleeding",
				RiskIfWrong:    "Magnesium relaxes the uterus; bleeding must be watched continuously",
				BenefitIfRight: "Controls the seizure, which is the faster killer",
				Dosing:         &domain.Dosing{Formula: "4 g over 5-15 minutes with oxytocin infusion running", Route: "IV"},
				Monitoring:     []string{"Continuous estimation of blood loss while magnesium runs"},
			},
		},
		SystemInteractionWarnings: []string{
			"Magnesium sulfate reduces uterine tone and can worsen atonic hemorrhage — keep uterotonics running alongside",
		},
		PrioritySequence: []string{
			"Magnesium for the seizure first — the seizing patient cannot be resuscitated",
			"Oxytocin infusion and uterine massage concurrently",
			"Tranexamic acid and blood early, not as a last resort",
		},
		ConflictResolutions: []string{
			"Seizure control outranks bleeding control, but uterotonics run simultaneously to offset magnesium's tocolytic effect",
		},
	}
}

func buildHypovolemiaAnemiaProtocol(s *domain.PrimarySurveyData) domain.IntegratedProtocol {
	return domain.IntegratedProtocol{
		ImmediateInterventions: []domain.Intervention{
			{
				ID:             "blood_transfusion",
				Name:           "Early blood transfusion",
				Tier:           domain.TierImmediate,
				Indication:     "Volume loss on a critically low hemoglobin",
				RiskIfWrong:    "Transfusion reaction risk",
				BenefitIfRight: "Restores volume and oxygen-carrying capacity together",
				Dosing:         weightDose(s, 10, "mL packed cells", "10 mL/kg packed red cells", "IV"),
			},
		},
		SystemInteractionWarnings: []string{
			"Large crystalloid volumes dilute an already critical hemoglobin — cap crystalloid and transfuse early",
		},
		PrioritySequence: []string{
			"Single crystalloid bolus while blood is obtained",
			"Transfusion as the definitive volume replacement",
		},
		ConflictResolutions: []string{
			"Volume strategy: blood replaces the repeated-crystalloid default once anemia is severe",
		},
	}
}
