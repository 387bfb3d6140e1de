package service

import (
	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// ShockSubClassifier distinguishes shock subtypes using the same
// weight-accumulation discipline as the pattern scorers. It satisfies the
// domain.ShockClassifier contract so alternative implementations stay
// pluggable.
type ShockSubClassifier struct {
	logger  *logrus.Logger
	scorers []*scorer
}

// NewShockSubClassifier creates the default shock sub-classifier
func NewShockSubClassifier(logger *logrus.Logger) *ShockSubClassifier {
	return &ShockSubClassifier{
		logger:  logger,
		scorers: shockScorers(),
	}
}

// Classify evaluates every shock-subtype scorer against the snapshot.
// Pure and total: every input yields a valid (possibly zero) candidate list.
func (c *ShockSubClassifier) Classify(survey *domain.PrimarySurveyData) []domain.ShockCandidate {
	candidates := make([]domain.ShockCandidate, 0, len(c.scorers))
	for _, sc := range c.scorers {
		if !sc.appliesTo(survey.PatientType) {
			continue
		}
		d := sc.score(survey)
		candidates = append(candidates, domain.ShockCandidate{
			Category:    d.ID,
			Name:        d.Name,
			Probability: d.Probability,
			Evidence:    d.Evidence,
			Missing:     d.Missing,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
	}).Debug("Shock sub-classification completed")

	return candidates
}

// adaptShockCandidate converts a shock candidate into the common Differential
// shape so the generator treats shock subtypes uniformly with all other
// diagnoses.
func adaptShockCandidate(c domain.ShockCandidate) domain.Differential {
	p := c.Probability
	if p > maxProbability {
		p = maxProbability
	}
	return domain.Differential{
		ID:          c.Category,
		Name:        c.Name,
		Probability: p,
		Evidence:    c.Evidence,
		Missing:     c.Missing,
		Category:    domain.SeverityCritical,
	}
}

// shockScorers is the shock-subtype rule catalogue.
func shockScorers() []*scorer {
	return []*scorer{
		{
			id:       "hypovolemic_shock",
			name:     "Hypovolemic shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "circulation.perfusion", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Cold extremities with delayed capillary refill")
				}},
				{key: "circulation.systolic_bp", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
				{key: "circulation.heart_rate", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return tachycardiaForAge(s, "Compensatory tachycardia (%.0f bpm)")
				}},
				{key: "circulation.active_bleeding", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.ActiveBleeding, "Active hemorrhage")
				}},
				{key: "circulation.dehydration_signs", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.DehydrationSigns, "Clinical dehydration")
				}},
				{key: "exposure.history.vomiting_or_diarrhea", weight: 0.10, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.VomitingOrDiarrhea, "Ongoing fluid losses")
				}},
			},
		},
		{
			id:       "septic_shock",
			name:     "Septic shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "exposure.temperature_c", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return feverOrHypothermia(s, "Fever or hypothermia (%.1f°C)")
				}},
				{key: "circulation.systolic_bp", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
				{key: "circulation.perfusion", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor peripheral perfusion")
				}},
				{key: "circulation.heart_rate", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return tachycardiaForAge(s, "Tachycardia (%.0f bpm)")
				}},
				{key: "exposure.rash", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Exposure.Rash, "Petechial or purpuric rash", "petechial", "purpuric")
				}},
			},
		},
		{
			id:       "cardiogenic_shock",
			name:     "Cardiogenic shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "circulation.jugular_venous_distension", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.JugularVenousDistension, "Raised jugular venous pressure")
				}},
				{key: "circulation.hepatomegaly", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.Hepatomegaly, "Congestive hepatomegaly")
				}},
				{key: "breathing.breath_sounds", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Pulmonary edema crackles", "crackles")
				}},
				{key: "exposure.history.known_heart_disease", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.KnownHeartDisease, "Known cardiac disease")
				}},
				{key: "circulation.perfusion", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return poorPerfusion(s, "Poor perfusion despite adequate volume")
				}},
				{key: "circulation.systolic_bp", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
			},
		},
		{
			id:       "obstructive_shock",
			name:     "Obstructive shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "breathing.tracheal_shift", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Breathing.TrachealShift, "Tracheal deviation")
				}},
				{key: "circulation.jugular_venous_distension", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Circulation.JugularVenousDistension, "Distended neck veins with hypotension")
				}},
				{key: "breathing.breath_sounds", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Unilateral absent breath sounds", "asymmetric")
				}},
				{key: "circulation.systolic_bp", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
			},
		},
		{
			id:       "anaphylactic_shock",
			name:     "Anaphylactic shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "exposure.history.allergen_exposure", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.AllergenExposure, "Recent allergen exposure")
				}},
				{key: "exposure.rash", weight: 0.20, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Exposure.Rash, "Urticarial rash", "urticarial")
				}},
				{key: "circulation.systolic_bp", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Distributive hypotension (%.0f mmHg systolic)")
				}},
				{key: "breathing.breath_sounds", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Breathing.BreathSounds, "Bronchospasm", "wheeze")
				}},
			},
		},
		{
			id:       "neurogenic_shock",
			name:     "Neurogenic shock",
			category: domain.SeverityCritical,
			rules: []featureRule{
				{key: "exposure.history.recent_trauma", weight: 0.30, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Exposure.History.RecentTrauma, "Recent spinal or high-energy trauma")
				}},
				{key: "circulation.systolic_bp", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return hypotensionForAge(s, "Hypotension (%.0f mmHg systolic)")
				}},
				{key: "circulation.heart_rate", weight: 0.25, eval: func(s *domain.PrimarySurveyData) finding {
					return numBelow(s.Circulation.HeartRate, 60, "Paradoxical bradycardia (%.0f bpm)")
				}},
				{key: "circulation.perfusion_warm", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return enumIs(s.Circulation.Perfusion.SkinTemperature, "Warm, flushed peripheries despite hypotension", "warm")
				}},
				{key: "disability.focal_deficit", weight: 0.15, eval: func(s *domain.PrimarySurveyData) finding {
					return boolFlag(s.Disability.FocalDeficit, "Focal neurological deficit")
				}},
			},
		},
	}
}
