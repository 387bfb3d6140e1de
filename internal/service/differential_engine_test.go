package service

import (
	"io"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestEngine() *DifferentialEngine {
	logger := testLogger()
	return NewDifferentialEngine(logger, NewShockSubClassifier(logger), NewAgeModifierTable())
}

// dkaSurvey is the classic presentation: marked hyperglycemia, Kussmaul
// breathing, and dehydration-pattern perfusion in a school-age child.
func dkaSurvey() *domain.PrimarySurveyData {
	survey := &domain.PrimarySurveyData{
		PatientType:      domain.PatientChild,
		PhysiologicState: domain.StateShock,
		AgeYears:         f64(6),
		WeightKg:         f64(20),
	}
	survey.Disability.BloodGlucose = f64(25)
	survey.Breathing.Pattern = "deep_kussmaul"
	survey.Circulation.Perfusion.SkinTemperature = "cold"
	survey.Circulation.Perfusion.CapillaryRefillSec = f64(4)
	return survey
}

func TestGenerateRanksDKAFromClassicPresentation(t *testing.T) {
	results := newTestEngine().Generate(dkaSurvey())

	require.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, "dka", top.ID)
	assert.InDelta(t, 0.85, top.Probability, 1e-9)
	assert.Len(t, top.Evidence, 3)
	assert.Contains(t, top.Missing, "exposure.history.known_diabetes")
	assert.NotEmpty(t, top.NextQuestions)
}

func TestGenerateDropsSubThresholdDifferentials(t *testing.T) {
	results := newTestEngine().Generate(dkaSurvey())

	for _, d := range results {
		assert.Greater(t, d.Probability, generationThreshold,
			"differential %s at %.2f should have been dropped", d.ID, d.Probability)
	}
}

func TestGenerateSortsByProbabilityDescending(t *testing.T) {
	survey := dkaSurvey()
	survey.Exposure.TemperatureC = f64(39.5)
	survey.Circulation.SystolicBP = f64(70)

	results := newTestEngine().Generate(survey)

	require.GreaterOrEqual(t, len(results), 2)
	assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	}))
}

func TestGenerateMergesShockCandidates(t *testing.T) {
	survey := dkaSurvey()
	survey.Exposure.TemperatureC = f64(39.5)
	survey.Circulation.SystolicBP = f64(70)

	results := newTestEngine().Generate(survey)

	ids := make(map[string]domain.Differential, len(results))
	for _, d := range results {
		ids[d.ID] = d
	}

	septic, ok := ids["septic_shock"]
	require.True(t, ok, "septic shock candidate should be merged into the differential list")
	assert.InDelta(t, 0.70, septic.Probability, 1e-9)
	assert.Equal(t, domain.SeverityCritical, septic.Category)
}

func TestGenerateRespectsPatientTypeGating(t *testing.T) {
	// Febrile, poorly feeding presentation that would score for neonatal
	// sepsis — but the patient is classified as a child.
	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(4)}
	survey.Exposure.TemperatureC = f64(39.0)
	survey.Exposure.History.PoorFeeding = bptr(true)
	survey.Disability.ConsciousnessLevel = "voice"

	for _, d := range newTestEngine().Generate(survey) {
		assert.NotEqual(t, "neonatal_sepsis", d.ID)
	}
}

func TestGenerateEmptyForUnremarkableSurvey(t *testing.T) {
	survey := &domain.PrimarySurveyData{
		PatientType:      domain.PatientChild,
		PhysiologicState: domain.StateStable,
		AgeYears:         f64(7),
	}

	assert.Empty(t, newTestEngine().Generate(survey))
}

func TestGenerateAppliesAgeProbabilityModifiers(t *testing.T) {
	// Bronchiolitis-pattern infant: the infant prevalence factor scales the
	// accumulated probability upward.
	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(0.5)}
	survey.Breathing.BreathSounds = "wheeze"
	survey.Breathing.Retractions = bptr(true)
	survey.Exposure.History.PoorFeeding = bptr(true)

	withMods := newTestEngine().Generate(survey)
	noMods := NewDifferentialEngine(testLogger(), NewShockSubClassifier(testLogger()), nil).Generate(survey)

	find := func(list []domain.Differential, id string) *domain.Differential {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
		return nil
	}

	adjusted := find(withMods, "bronchiolitis")
	baseline := find(noMods, "bronchiolitis")
	require.NotNil(t, adjusted)
	require.NotNil(t, baseline)
	assert.Greater(t, adjusted.Probability, baseline.Probability)
	assert.LessOrEqual(t, adjusted.Probability, maxProbability)
}

func TestGenerateDropsDifferentialsDownWeightedBelowThreshold(t *testing.T) {
	// Wheeze with retractions in an adolescent accumulates 0.45 for
	// bronchiolitis, but the adolescent prevalence factor halves it to
	// 0.225, under the generation threshold, so it must not be returned.
	survey := &domain.PrimarySurveyData{PatientType: domain.PatientChild, AgeYears: f64(14)}
	survey.Breathing.BreathSounds = "wheeze"
	survey.Breathing.Retractions = bptr(true)

	results := newTestEngine().Generate(survey)

	for _, d := range results {
		assert.NotEqual(t, "bronchiolitis", d.ID,
			"down-weighted differential at %.3f must be dropped", d.Probability)
		assert.Greater(t, d.Probability, generationThreshold)
	}
}
