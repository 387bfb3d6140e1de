package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/domain"
)

func iv(id string) domain.Intervention {
	return domain.Intervention{ID: id, Name: id, Tier: domain.TierImmediate}
}

func ids(interventions []domain.Intervention) []string {
	out := make([]string, len(interventions))
	for i, v := range interventions {
		out[i] = v.ID
	}
	return out
}

func TestPrioritizeAirwayBeforeCirculationBeforeDrugs(t *testing.T) {
	p := NewInterventionPrioritizer(testLogger())

	ordered := p.Prioritize([]domain.Intervention{
		iv("empiric_antibiotics"),
		iv("dextrose_bolus"),
		iv("fluid_bolus"),
		iv("secure_airway"),
	})

	assert.Equal(t, []string{"secure_airway", "fluid_bolus", "dextrose_bolus", "empiric_antibiotics"}, ids(ordered))
}

func TestPrioritizeUnrankedGoLast(t *testing.T) {
	p := NewInterventionPrioritizer(testLogger())

	ordered := p.Prioritize([]domain.Intervention{
		iv("age_specific_adjustments"),
		iv("oxygen_high_flow"),
	})

	assert.Equal(t, []string{"oxygen_high_flow", "age_specific_adjustments"}, ids(ordered))
}

func TestPrioritizeIsStableWithinRank(t *testing.T) {
	p := NewInterventionPrioritizer(testLogger())

	// fluid_bolus and blood_transfusion share the circulation band; their
	// relative order must survive sorting.
	ordered := p.Prioritize([]domain.Intervention{
		iv("blood_transfusion"),
		iv("fluid_bolus"),
		iv("epinephrine_im"),
	})

	assert.Equal(t, []string{"epinephrine_im", "blood_transfusion", "fluid_bolus"}, ids(ordered))
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	p := NewInterventionPrioritizer(testLogger())

	input := []domain.Intervention{iv("dextrose_bolus"), iv("secure_airway")}
	ordered := p.Prioritize(input)

	require.Len(t, ordered, 2)
	assert.Equal(t, "dextrose_bolus", input[0].ID)
	assert.Equal(t, "secure_airway", ordered[0].ID)
}

func TestPrioritizeEmptyInput(t *testing.T) {
	p := NewInterventionPrioritizer(testLogger())
	assert.Empty(t, p.Prioritize(nil))
}
