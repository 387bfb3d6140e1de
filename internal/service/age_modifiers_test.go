package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peds-emergency-server/internal/domain"
)

func TestClassifyAgeBands(t *testing.T) {
	table := NewAgeModifierTable()

	tests := []struct {
		name     string
		age      float64
		pregnant bool
		want     domain.AgeGroup
	}{
		{"two-week-old is a neonate", 0.04, false, domain.AgeGroupNeonate},
		{"six-month-old is an infant", 0.5, false, domain.AgeGroupInfant},
		{"seven-year-old is a child", 7, false, domain.AgeGroupChild},
		{"fifteen-year-old is an adolescent", 15, false, domain.AgeGroupAdolescent},
		{"twenty-five-year-old is an adult", 25, false, domain.AgeGroupAdult},
		{"pregnancy dominates age", 16, true, domain.AgeGroupPregnantPostpartum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.ClassifyAge(tt.age, tt.pregnant))
		})
	}
}

func TestGuidanceReturnsCuratedAmendments(t *testing.T) {
	table := NewAgeModifierTable()

	neonatal := table.Guidance("hypoglycemia", domain.AgeGroupNeonate)
	assert.NotEmpty(t, neonatal)

	assert.Empty(t, table.Guidance("hypoglycemia", domain.AgeGroupAdult))
	assert.Empty(t, table.Guidance("unknown_diagnosis", domain.AgeGroupNeonate))
}

func TestAdjustProbabilityPassThroughAndClamp(t *testing.T) {
	table := NewAgeModifierTable()

	// Unlisted pair passes through unchanged.
	assert.Equal(t, 0.5, table.AdjustProbability("dka", domain.AgeGroupChild, 0.5))

	// Listed pair is scaled.
	adjusted := table.AdjustProbability("bronchiolitis", domain.AgeGroupInfant, 0.6)
	assert.InDelta(t, 0.69, adjusted, 1e-9)

	// Scaling never exceeds the probability ceiling.
	clamped := table.AdjustProbability("bronchiolitis", domain.AgeGroupInfant, 0.95)
	assert.Equal(t, maxProbability, clamped)
}

func TestSurveyAgeGroupFallbacks(t *testing.T) {
	table := NewAgeModifierTable()

	pregnant := &domain.PrimarySurveyData{PatientType: domain.PatientPregnantPostpartum, AgeYears: f64(28)}
	assert.Equal(t, domain.AgeGroupPregnantPostpartum, surveyAgeGroup(table, pregnant))

	noAgeNeonate := &domain.PrimarySurveyData{PatientType: domain.PatientNeonate}
	assert.Equal(t, domain.AgeGroupNeonate, surveyAgeGroup(table, noAgeNeonate))

	noAgeChild := &domain.PrimarySurveyData{PatientType: domain.PatientChild}
	assert.Equal(t, domain.AgeGroupChild, surveyAgeGroup(table, noAgeChild))

	withAge := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(0.5)}
	assert.Equal(t, domain.AgeGroupInfant, surveyAgeGroup(table, withAge))
}
