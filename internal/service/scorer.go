package service

import (
	"fmt"

	"github.com/peds-emergency-server/internal/domain"
)

// maxProbability is the ceiling for every accumulated score; a differential
// is never asserted as certainty.
const maxProbability = 0.99

// generationThreshold is the minimum probability for a differential to be
// included in the generated list.
const generationThreshold = 0.3

// finding is the outcome of evaluating one clinical feature against a survey
// snapshot. An unobserved finding contributes a missing key instead of
// probability; it never subtracts.
type finding struct {
	observed bool
	matched  bool
	evidence string
}

// featureRule pairs a feature predicate with its domain-calibrated weight.
// The evidence template is rendered only when the feature matches, keeping
// clinical-rule correctness separate from message formatting.
type featureRule struct {
	key    string
	weight float64
	eval   func(s *domain.PrimarySurveyData) finding
}

// scorer evaluates one candidate diagnosis against the survey snapshot.
// A scorer with a gate short-circuits to probability 0 with only the gate
// key in missing when the mandatory feature is absent or unmet.
type scorer struct {
	id            string
	name          string
	category      domain.SeverityCategory
	patientTypes  []domain.PatientType // nil means all classifications
	gate          *featureRule
	rules         []featureRule
	nextQuestions []string
}

// appliesTo reports whether this scorer runs for the given patient classification
func (sc *scorer) appliesTo(pt domain.PatientType) bool {
	if len(sc.patientTypes) == 0 {
		return true
	}
	for _, t := range sc.patientTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// score evaluates the scorer's feature table against the snapshot.
// Every input combination yields a valid (possibly zero) differential.
func (sc *scorer) score(s *domain.PrimarySurveyData) domain.Differential {
	d := domain.Differential{
		ID:            sc.id,
		Name:          sc.name,
		Category:      sc.category,
		Evidence:      []string{},
		Missing:       []string{},
		NextQuestions: sc.nextQuestions,
	}

	if sc.gate != nil {
		f := sc.gate.eval(s)
		if !f.observed || !f.matched {
			// Mandatory feature unmet: no partial evidence is accumulated.
			d.Missing = append(d.Missing, sc.gate.key)
			return d
		}
		d.Probability += sc.gate.weight
		d.Evidence = append(d.Evidence, f.evidence)
	}

	for _, r := range sc.rules {
		f := r.eval(s)
		if !f.observed {
			d.Missing = append(d.Missing, r.key)
			continue
		}
		if f.matched {
			d.Probability += r.weight
			d.Evidence = append(d.Evidence, f.evidence)
		}
	}

	if d.Probability > maxProbability {
		d.Probability = maxProbability
	}
	return d
}

// Predicate helpers. Each returns an unobserved finding for nil/empty input
// so optional-field access defaults to "not observed" and never panics.

func boolFlag(v *bool, evidence string) finding {
	if v == nil {
		return finding{}
	}
	return finding{observed: true, matched: *v, evidence: evidence}
}

// numAbove matches when the vital exceeds limit; the template receives the value
func numAbove(v *float64, limit float64, template string) finding {
	if v == nil {
		return finding{}
	}
	return finding{observed: true, matched: *v > limit, evidence: fmt.Sprintf(template, *v)}
}

// numBelow matches when the vital is under limit
func numBelow(v *float64, limit float64, template string) finding {
	if v == nil {
		return finding{}
	}
	return finding{observed: true, matched: *v < limit, evidence: fmt.Sprintf(template, *v)}
}

// enumIs matches when an enumerated finding equals any of the wanted values
func enumIs(v string, evidence string, want ...string) finding {
	if v == "" {
		return finding{}
	}
	for _, w := range want {
		if v == w {
			return finding{observed: true, matched: true, evidence: evidence}
		}
	}
	return finding{observed: true, matched: false}
}

// reducedConsciousness matches any AVPU level below alert
func reducedConsciousness(s *domain.PrimarySurveyData, evidence string) finding {
	return enumIs(s.Disability.ConsciousnessLevel, evidence, "voice", "pain", "unresponsive")
}

// tachycardiaForAge applies a coarse age-adjusted heart rate ceiling
func tachycardiaForAge(s *domain.PrimarySurveyData, evidence string) finding {
	hr := s.Circulation.HeartRate
	if hr == nil {
		return finding{}
	}
	limit := 120.0
	if s.AgeYears != nil {
		switch {
		case *s.AgeYears < 1:
			limit = 160
		case *s.AgeYears < 5:
			limit = 140
		case *s.AgeYears < 12:
			limit = 120
		default:
			limit = 100
		}
	}
	return finding{observed: true, matched: *hr > limit, evidence: fmt.Sprintf(evidence, *hr)}
}

// hypotensionForAge applies the coarse 70 + 2*age systolic floor used in
// pediatric resuscitation, capped at 90 for adolescents and adults
func hypotensionForAge(s *domain.PrimarySurveyData, evidence string) finding {
	bp := s.Circulation.SystolicBP
	if bp == nil {
		return finding{}
	}
	floor := 90.0
	if s.AgeYears != nil && *s.AgeYears < 10 {
		floor = 70 + 2*(*s.AgeYears)
	}
	return finding{observed: true, matched: *bp < floor, evidence: fmt.Sprintf(evidence, *bp)}
}

// poorPerfusion matches cold peripheries, prolonged capillary refill or weak pulses
func poorPerfusion(s *domain.PrimarySurveyData, evidence string) finding {
	p := s.Circulation.Perfusion
	if p.SkinTemperature == "" && p.CapillaryRefillSec == nil && p.Pulses == "" {
		return finding{}
	}
	matched := p.SkinTemperature == "cold" ||
		(p.CapillaryRefillSec != nil && *p.CapillaryRefillSec > 3) ||
		p.Pulses == "weak" || p.Pulses == "absent_peripheral"
	return finding{observed: true, matched: matched, evidence: evidence}
}

// feverOrHypothermia matches the septic temperature pattern
func feverOrHypothermia(s *domain.PrimarySurveyData, template string) finding {
	t := s.Exposure.TemperatureC
	if t == nil {
		return finding{}
	}
	return finding{observed: true, matched: *t > 38.5 || *t < 36.0, evidence: fmt.Sprintf(template, *t)}
}
