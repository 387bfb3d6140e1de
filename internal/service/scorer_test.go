package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/domain"
)

func f64(v float64) *float64 { return &v }
func bptr(v bool) *bool      { return &v }

// findScorer locates a catalogue entry by diagnosis id
func findScorer(t *testing.T, id string) *scorer {
	t.Helper()
	for _, sc := range patternScorers() {
		if sc.id == id {
			return sc
		}
	}
	t.Fatalf("no scorer registered for %q", id)
	return nil
}

func TestScorerGateUnmetShortCircuits(t *testing.T) {
	sc := findScorer(t, "status_epilepticus")

	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild}
	survey.Disability.Seizure.DurationMin = f64(12)
	survey.Disability.ConsciousnessLevel = "pain"

	d := sc.score(survey)

	assert.Zero(t, d.Probability)
	assert.Empty(t, d.Evidence)
	require.Len(t, d.Missing, 1)
	assert.Equal(t, "disability.seizure.status", d.Missing[0])
}

func TestScorerGateMetAccumulates(t *testing.T) {
	sc := findScorer(t, "status_epilepticus")

	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild}
	survey.Disability.Seizure.Status = "active"
	survey.Disability.Seizure.DurationMin = f64(12)
	survey.Disability.ConsciousnessLevel = "pain"

	d := sc.score(survey)

	assert.InDelta(t, 0.90, d.Probability, 1e-9)
	assert.Len(t, d.Evidence, 3)
	assert.Empty(t, d.Missing)
}

func TestScorerUnobservedFeaturesGoToMissing(t *testing.T) {
	sc := findScorer(t, "dka")

	d := sc.score(&domain.PrimarySurveyData{PatientType: domain.PatientChild})

	assert.Zero(t, d.Probability)
	assert.Len(t, d.Missing, len(sc.rules))
	assert.Contains(t, d.Missing, "disability.blood_glucose")
	assert.Contains(t, d.Missing, "breathing.pattern")
}

func TestScorerObservedMismatchIsNotMissing(t *testing.T) {
	sc := findScorer(t, "dka")

	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild}
	survey.Disability.BloodGlucose = f64(5.2)

	d := sc.score(survey)

	assert.Zero(t, d.Probability)
	assert.NotContains(t, d.Missing, "disability.blood_glucose")
}

func TestScorerProbabilityClamp(t *testing.T) {
	sc := findScorer(t, "hypoglycemia")

	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild}
	survey.Disability.BloodGlucose = f64(1.4)
	survey.Disability.ConsciousnessLevel = "unresponsive"
	survey.Disability.Seizure.Status = "active"

	d := sc.score(survey)

	assert.LessOrEqual(t, d.Probability, maxProbability)
	assert.InDelta(t, maxProbability, d.Probability, 1e-9)
}

func TestScorerAppliesTo(t *testing.T) {
	tests := []struct {
		name        string
		scorerID    string
		patientType domain.PatientType
		applies     bool
	}{
		{"neonatal sepsis gated to neonates", "neonatal_sepsis", domain.PatientChild, false},
		{"neonatal sepsis runs for neonates", "neonatal_sepsis", domain.PatientNeonate, true},
		{"eclampsia gated to pregnant patients", "eclampsia", domain.PatientChild, false},
		{"eclampsia runs for pregnant patients", "eclampsia", domain.PatientPregnantPostpartum, true},
		{"bronchiolitis excluded for adults", "bronchiolitis", domain.PatientAdult, false},
		{"dka applies to all classifications", "dka", domain.PatientAdult, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := findScorer(t, tt.scorerID)
			assert.Equal(t, tt.applies, sc.appliesTo(tt.patientType))
		})
	}
}

func TestHypotensionForAgeFloor(t *testing.T) {
	tests := []struct {
		name    string
		age     *float64
		bp      float64
		matched bool
	}{
		{"four-year-old below 78 floor", f64(4), 72, true},
		{"four-year-old above 78 floor", f64(4), 85, false},
		{"adolescent uses 90 floor", f64(15), 85, true},
		{"no recorded age uses 90 floor", nil, 85, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			survey := &domain.PrimarySurveyData{AgeYears: tt.age}
			survey.Circulation.SystolicBP = f64(tt.bp)
			f := hypotensionForAge(survey, "Hypotension (%.0f mmHg systolic)")
			assert.True(t, f.observed)
			assert.Equal(t, tt.matched, f.matched)
		})
	}
}

func TestTachycardiaForAgeBands(t *testing.T) {
	survey := &domain.PrimarySurveyData{AgeYears: f64(0.5)}
	survey.Circulation.HeartRate = f64(150)
	assert.False(t, tachycardiaForAge(survey, "%.0f").matched)

	survey.AgeYears = f64(14)
	assert.True(t, tachycardiaForAge(survey, "%.0f").matched)
}

func TestPoorPerfusionUnobserved(t *testing.T) {
	f := poorPerfusion(&domain.PrimarySurveyData{}, "poor perfusion")
	assert.False(t, f.observed)
}

func TestFeverOrHypothermiaMatchesBothExtremes(t *testing.T) {
	survey := &domain.PrimarySurveyData{}

	survey.Exposure.TemperatureC = f64(39.2)
	assert.True(t, feverOrHypothermia(survey, "%.1f").matched)

	survey.Exposure.TemperatureC = f64(35.2)
	assert.True(t, feverOrHypothermia(survey, "%.1f").matched)

	survey.Exposure.TemperatureC = f64(37.0)
	assert.False(t, feverOrHypothermia(survey, "%.1f").matched)
}
