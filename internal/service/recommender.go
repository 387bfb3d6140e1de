package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// bundleBuilder produces the authored treatment bundle for one diagnosis,
// with weight-scaled doses substituted from the snapshot
type bundleBuilder func(survey *domain.PrimarySurveyData) domain.RecommendationBundle

// InterventionRecommender maps a selected diagnosis to its tiered treatment
// bundle. Dispatch is a registered map of diagnosis id to builder so bundles
// can be added and reviewed independently.
type InterventionRecommender struct {
	logger       *logrus.Logger
	builders     map[string]bundleBuilder
	ageModifiers domain.AgeModifierLookup
}

// NewInterventionRecommender creates the recommender with all authored bundles registered
func NewInterventionRecommender(logger *logrus.Logger, age domain.AgeModifierLookup) *InterventionRecommender {
	r := &InterventionRecommender{
		logger:       logger,
		builders:     make(map[string]bundleBuilder),
		ageModifiers: age,
	}
	r.registerBundles()
	return r
}

// register adds a bundle builder for a diagnosis id
func (r *InterventionRecommender) register(diagnosisID string, builder bundleBuilder) {
	r.builders[diagnosisID] = builder
}

// Recommend builds the tiered bundle for the selected diagnosis. A diagnosis
// without an authored bundle returns empty tiers with the explicit Unbundled
// marker rather than an error.
func (r *InterventionRecommender) Recommend(top *domain.Differential, survey *domain.PrimarySurveyData) domain.RecommendationBundle {
	builder, ok := r.builders[top.ID]
	if !ok {
		r.logger.WithField("diagnosis_id", top.ID).Warn("No authored treatment bundle for diagnosis")
		return domain.RecommendationBundle{
			DiagnosisID:   top.ID,
			Immediate:     []domain.Intervention{},
			Urgent:        []domain.Intervention{},
			Confirmatory:  []domain.Intervention{},
			RequiredTests: []domain.RequiredTest{},
			Unbundled:     true,
		}
	}

	bundle := builder(survey)
	bundle.DiagnosisID = top.ID

	if r.ageModifiers != nil {
		group := surveyAgeGroup(r.ageModifiers, survey)
		if mods := r.ageModifiers.Guidance(top.ID, group); len(mods) > 0 {
			bundle.Immediate = append(bundle.Immediate, domain.Intervention{
				ID:             "age_specific_adjustments",
				Name:           "Age-specific adjustments",
				Tier:           domain.TierImmediate,
				Indication:     fmt.Sprintf("Treatment amendments for %s patients", group.String()),
				RiskIfWrong:    "Minimal — guidance only",
				BenefitIfRight: "Dosing and escalation matched to the age group",
				Monitoring:     mods,
			})
		}
	}

	r.logger.WithFields(logrus.Fields{
		"diagnosis_id": top.ID,
		"immediate":    len(bundle.Immediate),
		"urgent":       len(bundle.Urgent),
		"confirmatory": len(bundle.Confirmatory),
	}).Debug("Treatment bundle assembled")

	return bundle
}

// weightDose renders a mg/kg-style formula with the value computed from the
// recorded weight. Without a recorded weight the formula stands alone.
func weightDose(survey *domain.PrimarySurveyData, perKg float64, unit, formula, route string) *domain.Dosing {
	d := &domain.Dosing{Formula: formula, Route: route}
	if survey.WeightKg != nil {
		d.Calculated = fmt.Sprintf("%.0f %s", *survey.WeightKg*perKg, unit)
	}
	return d
}

// weightDose1 is weightDose with one decimal place for small doses
func weightDose1(survey *domain.PrimarySurveyData, perKg float64, unit, formula, route string) *domain.Dosing {
	d := &domain.Dosing{Formula: formula, Route: route}
	if survey.WeightKg != nil {
		d.Calculated = fmt.Sprintf("%.1f %s", *survey.WeightKg*perKg, unit)
	}
	return d
}
