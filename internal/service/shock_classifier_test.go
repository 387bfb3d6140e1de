package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/domain"
)

func candidateByID(candidates []domain.ShockCandidate, id string) *domain.ShockCandidate {
	for i := range candidates {
		if candidates[i].Category == id {
			return &candidates[i]
		}
	}
	return nil
}

func TestClassifySepticPattern(t *testing.T) {
	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(4)}
	survey.Exposure.TemperatureC = f64(39.8)
	survey.Circulation.SystolicBP = f64(70)
	survey.Circulation.Perfusion.SkinTemperature = "cold"

	candidates := NewShockSubClassifier(testLogger()).Classify(survey)

	septic := candidateByID(candidates, "septic_shock")
	require.NotNil(t, septic)
	assert.InDelta(t, 0.70, septic.Probability, 1e-9)
	assert.Len(t, septic.Evidence, 3)
	assert.Contains(t, septic.Missing, "exposure.rash")
}

func TestClassifyNeurogenicPattern(t *testing.T) {
	// Warm hypotension with paradoxical bradycardia after trauma.
	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(9)}
	survey.Exposure.History.RecentTrauma = bptr(true)
	survey.Circulation.SystolicBP = f64(75)
	survey.Circulation.HeartRate = f64(50)
	survey.Circulation.Perfusion.SkinTemperature = "warm"

	candidates := NewShockSubClassifier(testLogger()).Classify(survey)

	neurogenic := candidateByID(candidates, "neurogenic_shock")
	require.NotNil(t, neurogenic)
	hypovolemic := candidateByID(candidates, "hypovolemic_shock")
	require.NotNil(t, hypovolemic)
	assert.Greater(t, neurogenic.Probability, hypovolemic.Probability)
}

func TestClassifyAlwaysReturnsValidCandidates(t *testing.T) {
	candidates := NewShockSubClassifier(testLogger()).Classify(&domain.PrimarySurveyData{
		PatientType: domain.PatientChild,
	})

	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Zero(t, c.Probability)
		assert.NotEmpty(t, c.Missing)
	}
}

func TestAdaptShockCandidateMapsToCriticalDifferential(t *testing.T) {
	d := adaptShockCandidate(domain.ShockCandidate{
		Category:    "septic_shock",
		Name:        "Septic shock",
		Probability: 0.70,
		Evidence:    []string{"Fever"},
		Missing:     []string{"exposure.rash"},
	})

	assert.Equal(t, "septic_shock", d.ID)
	assert.Equal(t, domain.SeverityCritical, d.Category)
	assert.InDelta(t, 0.70, d.Probability, 1e-12)
	assert.Equal(t, []string{"Fever"}, d.Evidence)
}
