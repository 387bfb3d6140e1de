package service

import (
	"github.com/peds-emergency-server/internal/domain"
)

// ageModifierKey indexes the static modifier tables
type ageModifierKey struct {
	diagnosisID string
	group       domain.AgeGroup
}

// AgeModifierTable is the curated age-specific amendment lookup. Both tables
// are read-only after construction; one instance is shared across all calls.
type AgeModifierTable struct {
	guidance    map[ageModifierKey][]string
	probability map[ageModifierKey]float64
}

// NewAgeModifierTable loads the curated modifier catalogue
func NewAgeModifierTable() *AgeModifierTable {
	return &AgeModifierTable{
		guidance: map[ageModifierKey][]string{
			{"hypoglycemia", domain.AgeGroupNeonate}: {
				"Use 2 mL/kg of 10% dextrose rather than the standard 5 mL/kg bolus",
				"Recheck glucose 15 minutes after every bolus",
			},
			{"dka", domain.AgeGroupChild}: {
				"Restrict initial bolus to 10 mL/kg and reassess — children are at higher risk of cerebral edema",
				"Start insulin no earlier than one hour after fluids",
			},
			{"dka", domain.AgeGroupAdolescent}: {
				"Monitor for cerebral edema during the first 12 hours despite adolescent age",
			},
			{"anaphylaxis", domain.AgeGroupInfant}: {
				"Epinephrine 0.01 mg/kg IM (max 0.15 mg) using a 1 mg/mL solution",
			},
			{"severe_asthma", domain.AgeGroupInfant}: {
				"Wheeze under 12 months is more often bronchiolitis; reassess before repeated salbutamol",
			},
			{"septic_shock", domain.AgeGroupNeonate}: {
				"Add ampicillin to cover listeria and enterococcus",
				"Use 10 mL/kg boluses with reassessment after each",
			},
			{"hypovolemic_shock", domain.AgeGroupNeonate}: {
				"Bolus 10 mL/kg aliquots; neonatal myocardium tolerates rapid volume poorly",
			},
			{"status_epilepticus", domain.AgeGroupNeonate}: {
				"Phenobarbital 20 mg/kg IV is first line in the neonate, not benzodiazepines",
				"Check glucose and calcium before second-line agents",
			},
			{"meningitis", domain.AgeGroupNeonate}: {
				"Use cefotaxime instead of ceftriaxone; add ampicillin",
			},
			{"eclampsia", domain.AgeGroupPregnantPostpartum}: {
				"Continue magnesium sulfate for 24 hours after delivery or last seizure",
			},
			{"severe_burns", domain.AgeGroupInfant}: {
				"Use the Lund-Browder chart; infant head accounts for a larger surface fraction",
			},
		},
		// Multiplicative prevalence adjustments applied uniformly across the
		// generated list before final sorting.
		probability: map[ageModifierKey]float64{
			{"bronchiolitis", domain.AgeGroupInfant}:                 1.15,
			{"bronchiolitis", domain.AgeGroupAdolescent}:             0.5,
			{"croup", domain.AgeGroupInfant}:                         1.1,
			{"croup", domain.AgeGroupChild}:                          1.05,
			{"croup", domain.AgeGroupAdolescent}:                     0.6,
			{"foreign_body_aspiration", domain.AgeGroupInfant}:       1.1,
			{"supraventricular_tachycardia", domain.AgeGroupInfant}:  1.05,
			{"neonatal_sepsis", domain.AgeGroupNeonate}:              1.1,
			{"heart_failure", domain.AgeGroupNeonate}:                1.05,
			{"traumatic_brain_injury", domain.AgeGroupAdolescent}:    1.05,
		},
	}
}

// ClassifyAge maps an age in years onto the modifier age groups. The
// pregnant/postpartum flag dominates age.
func (t *AgeModifierTable) ClassifyAge(ageYears float64, pregnantOrPostpartum bool) domain.AgeGroup {
	if pregnantOrPostpartum {
		return domain.AgeGroupPregnantPostpartum
	}
	switch {
	case ageYears < 0.08: // first 28 days
		return domain.AgeGroupNeonate
	case ageYears < 1:
		return domain.AgeGroupInfant
	case ageYears < 12:
		return domain.AgeGroupChild
	case ageYears < 18:
		return domain.AgeGroupAdolescent
	default:
		return domain.AgeGroupAdult
	}
}

// Guidance returns the age-specific amendments for a diagnosis, or nil
func (t *AgeModifierTable) Guidance(diagnosisID string, group domain.AgeGroup) []string {
	return t.guidance[ageModifierKey{diagnosisID: diagnosisID, group: group}]
}

// AdjustProbability applies the age-specific prevalence factor, clamped to
// the probability ceiling. Unlisted pairs pass through unchanged.
func (t *AgeModifierTable) AdjustProbability(diagnosisID string, group domain.AgeGroup, probability float64) float64 {
	factor, ok := t.probability[ageModifierKey{diagnosisID: diagnosisID, group: group}]
	if !ok {
		return probability
	}
	p := probability * factor
	if p > maxProbability {
		p = maxProbability
	}
	return p
}

// surveyAgeGroup resolves the snapshot's age group, defaulting by patient
// classification when age was not recorded
func surveyAgeGroup(t domain.AgeModifierLookup, s *domain.PrimarySurveyData) domain.AgeGroup {
	if s.PatientType == domain.PatientPregnantPostpartum {
		return domain.AgeGroupPregnantPostpartum
	}
	if s.AgeYears != nil {
		return t.ClassifyAge(*s.AgeYears, false)
	}
	switch s.PatientType {
	case domain.PatientNeonate:
		return domain.AgeGroupNeonate
	case domain.PatientAdult:
		return domain.AgeGroupAdult
	default:
		return domain.AgeGroupChild
	}
}
