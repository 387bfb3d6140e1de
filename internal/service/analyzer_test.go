package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/domain"
)

func newTestAnalyzer() *AssessmentAnalyzer {
	logger := testLogger()
	age := NewAgeModifierTable()
	engine := NewDifferentialEngine(logger, NewShockSubClassifier(logger), age)
	return NewAssessmentAnalyzer(
		logger,
		engine,
		NewInterventionRecommender(logger, age),
		NewOverlapDetector(logger),
		NewIntegratedProtocolGenerator(logger),
		NewInterventionPrioritizer(logger),
	)
}

func TestAnalyzeClassicDKA(t *testing.T) {
	result, err := newTestAnalyzer().Analyze(dkaSurvey())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.AssessmentID)

	top := result.TopDifferential()
	require.NotNil(t, top)
	assert.Equal(t, "dka", top.ID)
	assert.InDelta(t, 0.85, top.Probability, 1e-9)

	// Insulin stays behind the confirmatory gate: ketones and gas first.
	var insulin *domain.Intervention
	for i := range result.ConfirmatoryInterventions {
		if result.ConfirmatoryInterventions[i].ID == "insulin_infusion" {
			insulin = &result.ConfirmatoryInterventions[i]
		}
	}
	require.NotNil(t, insulin, "insulin must be confirmatory, never immediate, for DKA")
	assert.NotEmpty(t, insulin.RequiredTests)
	for _, iv := range result.ImmediateInterventions {
		assert.NotEqual(t, "insulin_infusion", iv.ID)
	}
	assert.False(t, result.Unbundled)
}

func TestAnalyzeHypoglycemiaDextroseDosing(t *testing.T) {
	survey := &domain.PrimarySurveyData{
		PatientType: domain.PatientChild,
		AgeYears:    f64(2),
		WeightKg:    f64(12),
	}
	survey.Disability.BloodGlucose = f64(2.0)
	survey.Disability.ConsciousnessLevel = "unresponsive"

	result, err := newTestAnalyzer().Analyze(survey)

	require.NoError(t, err)
	top := result.TopDifferential()
	require.NotNil(t, top)
	assert.Equal(t, "hypoglycemia", top.ID)
	assert.GreaterOrEqual(t, top.Probability, 0.90)
	assert.LessOrEqual(t, top.Probability, 0.99)

	var dextrose *domain.Intervention
	for i := range result.ImmediateInterventions {
		if result.ImmediateInterventions[i].ID == "dextrose_bolus" {
			dextrose = &result.ImmediateInterventions[i]
		}
	}
	require.NotNil(t, dextrose)
	require.NotNil(t, dextrose.Dosing)
	assert.Equal(t, "60 mL", dextrose.Dosing.Calculated)
	assert.Equal(t, "5 mL/kg of 10% dextrose", dextrose.Dosing.Formula)
}

func TestAnalyzeSepsisDKAOverlapProtocol(t *testing.T) {
	survey := &domain.PrimarySurveyData{
		PatientType: domain.PatientChild,
		AgeYears:    f64(4),
		WeightKg:    f64(16),
	}
	survey.Exposure.TemperatureC = f64(39.5)
	survey.Circulation.SystolicBP = f64(70)
	survey.Circulation.Perfusion.SkinTemperature = "cold"
	survey.Circulation.Perfusion.CapillaryRefillSec = f64(5)
	survey.Disability.BloodGlucose = f64(20)
	survey.Breathing.Pattern = "deep_kussmaul"

	result, err := newTestAnalyzer().Analyze(survey)

	require.NoError(t, err)

	overlapIDs := make(map[string]bool)
	for _, d := range result.OverlappingConditions {
		overlapIDs[d.ID] = true
	}
	assert.True(t, overlapIDs["dka"])
	assert.True(t, overlapIDs["septic_shock"])

	require.NotEmpty(t, result.DangerousOverlaps)
	found := false
	for _, o := range result.DangerousOverlaps {
		if o.ProtocolID == "sepsis_dka" {
			found = true
		}
	}
	assert.True(t, found, "sepsis + ketoacidosis must trigger its catalogue entry")

	require.NotEmpty(t, result.PrioritySequence)
	sequenced := false
	for _, step := range result.PrioritySequence {
		if step == "Insulin infusion only after fluid resuscitation, never before" {
			sequenced = true
		}
	}
	assert.True(t, sequenced, "merged protocol must sequence fluids before insulin")
	assert.NotEmpty(t, result.SystemInteractionWarnings)
	assert.NotEmpty(t, result.ConflictResolutions)
	assert.Contains(t, result.SystemsInvolved, domain.SystemMetabolic)
	assert.Contains(t, result.SystemsInvolved, domain.SystemInfectious)
}

func TestAnalyzeAmbiguousSurveyFailsOutright(t *testing.T) {
	survey := &domain.PrimarySurveyData{
		PatientType:      domain.PatientChild,
		PhysiologicState: domain.StateStable,
		AgeYears:         f64(7),
	}

	result, err := newTestAnalyzer().Analyze(survey)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoDifferential)
}

func TestAnalyzeImmediateInterventionsAreOrdered(t *testing.T) {
	// Anaphylaxis bundle: epinephrine (airway band) must precede the fluid
	// bolus (circulation band) regardless of authored bundle order.
	survey := &domain.PrimarySurveyData{
		PatientType: domain.PatientChild,
		AgeYears:    f64(5),
		WeightKg:    f64(18),
	}
	survey.Exposure.History.AllergenExposure = bptr(true)
	survey.Exposure.Rash = "urticarial"
	survey.Breathing.BreathSounds = "wheeze"
	survey.Circulation.SystolicBP = f64(70)

	result, err := newTestAnalyzer().Analyze(survey)

	require.NoError(t, err)
	epiIdx, fluidIdx := -1, -1
	for i, iv := range result.ImmediateInterventions {
		switch iv.ID {
		case "epinephrine_im":
			epiIdx = i
		case "fluid_bolus":
			fluidIdx = i
		}
	}
	require.NotEqual(t, -1, epiIdx)
	require.NotEqual(t, -1, fluidIdx)
	assert.Less(t, epiIdx, fluidIdx)
}

func TestAnalyzeMemoKeepsFreshIdentity(t *testing.T) {
	analyzer := newTestAnalyzer()
	survey := dkaSurvey()

	first, err := analyzer.Analyze(survey)
	require.NoError(t, err)
	second, err := analyzer.Analyze(survey)
	require.NoError(t, err)

	assert.NotEqual(t, first.AssessmentID, second.AssessmentID)
	assert.Equal(t, first.TopDifferential().ID, second.TopDifferential().ID)
	assert.InDelta(t, first.TopDifferential().Probability, second.TopDifferential().Probability, 1e-12)
}
