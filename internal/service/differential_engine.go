package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// DifferentialEngine runs every applicable pattern scorer plus the shock
// sub-classifier and returns the ranked differential list. Pure and
// deterministic: no I/O, no cross-call state.
type DifferentialEngine struct {
	logger          *logrus.Logger
	scorers         []*scorer
	shockClassifier domain.ShockClassifier
	ageModifiers    domain.AgeModifierLookup
}

// NewDifferentialEngine creates the engine with the full scorer catalogue
func NewDifferentialEngine(logger *logrus.Logger, shock domain.ShockClassifier, age domain.AgeModifierLookup) *DifferentialEngine {
	return &DifferentialEngine{
		logger:          logger,
		scorers:         patternScorers(),
		shockClassifier: shock,
		ageModifiers:    age,
	}
}

// patternScorers assembles the pattern-scorer catalogue in a fixed order so
// probability ties keep a deterministic invocation order.
func patternScorers() []*scorer {
	var all []*scorer
	all = append(all, respiratoryScorers()...)
	all = append(all, circulatoryScorers()...)
	all = append(all, neuroScorers()...)
	all = append(all, metabolicScorers()...)
	all = append(all, infectiousScorers()...)
	all = append(all, obstetricScorers()...)
	all = append(all, exposureScorers()...)
	return all
}

// Generate evaluates every scorer applicable to the patient classification,
// keeps results above the generation threshold, merges adapted shock
// candidates, applies the age-modifier post-pass (re-filtering against the
// threshold), and stable-sorts the list by probability descending.
func (e *DifferentialEngine) Generate(survey *domain.PrimarySurveyData) []domain.Differential {
	results := make([]domain.Differential, 0, len(e.scorers))

	for _, sc := range e.scorers {
		if !sc.appliesTo(survey.PatientType) {
			continue
		}
		d := sc.score(survey)
		if d.Probability > generationThreshold {
			results = append(results, d)
		}
	}

	if e.shockClassifier != nil {
		for _, c := range e.shockClassifier.Classify(survey) {
			d := adaptShockCandidate(c)
			if d.Probability > generationThreshold {
				results = append(results, d)
			}
		}
	}

	if e.ageModifiers != nil {
		group := surveyAgeGroup(e.ageModifiers, survey)
		kept := results[:0]
		for i := range results {
			results[i].Probability = e.ageModifiers.AdjustProbability(results[i].ID, group, results[i].Probability)
			// A down-weighting prevalence factor can push a differential back
			// under the generation threshold; it must not survive the post-pass.
			if results[i].Probability > generationThreshold {
				kept = append(kept, results[i])
			}
		}
		results = kept
	}

	// Stable: ties keep scorer-invocation order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})

	e.logger.WithFields(logrus.Fields{
		"patient_type":  survey.PatientType.String(),
		"differentials": len(results),
	}).Debug("Differential generation completed")

	return results
}
