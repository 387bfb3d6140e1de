package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// unrankedInterventionRank places interventions missing from the rank table
// after every ranked one while preserving their relative order
const unrankedInterventionRank = 100

// InterventionPrioritizer orders immediate interventions by physiological
// priority: airway and breathing threats first, then circulation, then the
// rest. Ordering is stable so equal-rank interventions keep their bundle
// order.
type InterventionPrioritizer struct {
	logger *logrus.Logger
	ranks  map[string]int
}

// NewInterventionPrioritizer creates the prioritizer with the static rank table
func NewInterventionPrioritizer(logger *logrus.Logger) *InterventionPrioritizer {
	return &InterventionPrioritizer{
		logger: logger,
		ranks:  interventionRanks(),
	}
}

// Prioritize returns a new slice sorted by rank ascending; the input is not
// modified
func (p *InterventionPrioritizer) Prioritize(interventions []domain.Intervention) []domain.Intervention {
	ordered := make([]domain.Intervention, len(interventions))
	copy(ordered, interventions)

	sort.SliceStable(ordered, func(i, j int) bool {
		return p.rankOf(ordered[i].ID) < p.rankOf(ordered[j].ID)
	})

	p.logger.WithField("interventions", len(ordered)).Debug("Immediate interventions prioritized")
	return ordered
}

func (p *InterventionPrioritizer) rankOf(id string) int {
	if r, ok := p.ranks[id]; ok {
		return r
	}
	return unrankedInterventionRank
}

// interventionRanks is the static physiological priority table. Lower runs
// first. Bands: 1 airway/breathing rescue, 2 circulation rescue,
// 3 respiratory support, 4 neurological, 5 metabolic, 6 antimicrobial.
func interventionRanks() map[string]int {
	return map[string]int{
		"secure_airway":        1,
		"needle_decompression": 1,
		"epinephrine_im":       1,
		"oxygen_high_flow":     1,

		"bleeding_control":            2,
		"uterine_massage_uterotonics": 2,
		"fluid_bolus":                 2,
		"blood_transfusion":           2,
		"tranexamic_acid":             2,

		"nebulized_epinephrine": 3,
		"nebulized_salbutamol":  3,
		"burn_first_aid":        3,
		"keep_child_calm":       3,

		"benzodiazepine_seizure": 4,
		"magnesium_sulfate":      4,

		"dextrose_bolus":    5,
		"calcium_gluconate": 5,

		"empiric_antibiotics":     6,
		"antimalarial_artesunate": 6,
	}
}
