package service

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// overlapThreshold is the minimum probability at which a differential counts
// as concurrently plausible for multi-system assessment
const overlapThreshold = 0.6

// OverlapDetector finds concurrently-plausible diagnoses and checks them
// against the curated dangerous-combination catalogue. Catalogue matching is
// exact-set only: a triple containing a listed pair does not trigger the
// pair's entry unless the pair's conditions are all present, and supersets
// never match a smaller catalogue entry partially.
type OverlapDetector struct {
	logger    *logrus.Logger
	catalogue []domain.DangerousOverlap
	systems   map[string][]domain.SystemCategory
}

// NewOverlapDetector creates the detector with the curated catalogues
func NewOverlapDetector(logger *logrus.Logger) *OverlapDetector {
	return &OverlapDetector{
		logger:    logger,
		catalogue: dangerousOverlapCatalogue(),
		systems:   diagnosisSystems(),
	}
}

// Detect returns the overlap assessment for a ranked differential list
func (d *OverlapDetector) Detect(differentials []domain.Differential) domain.OverlapAssessment {
	overlapping := make([]domain.Differential, 0, len(differentials))
	for _, diff := range differentials {
		if diff.Probability >= overlapThreshold {
			overlapping = append(overlapping, diff)
		}
	}

	assessment := domain.OverlapAssessment{
		Overlapping:       overlapping,
		DangerousOverlaps: []domain.DangerousOverlap{},
		SystemsInvolved:   d.systemsFor(overlapping),
	}

	if len(overlapping) < 2 {
		return assessment
	}

	present := make(map[string]bool, len(overlapping))
	for _, diff := range overlapping {
		present[diff.ID] = true
	}

	for _, entry := range d.catalogue {
		matched := true
		for _, id := range entry.Conditions {
			if !present[id] {
				matched = false
				break
			}
		}
		if matched {
			assessment.DangerousOverlaps = append(assessment.DangerousOverlaps, entry)
		}
	}

	d.logger.WithFields(logrus.Fields{
		"overlapping": len(overlapping),
		"dangerous":   len(assessment.DangerousOverlaps),
	}).Debug("Overlap detection completed")

	return assessment
}

// systemsFor returns the deduplicated, sorted union of body systems for the
// overlapping diagnoses
func (d *OverlapDetector) systemsFor(overlapping []domain.Differential) []domain.SystemCategory {
	seen := make(map[domain.SystemCategory]bool)
	for _, diff := range overlapping {
		for _, sys := range d.systems[diff.ID] {
			seen[sys] = true
		}
	}
	systems := make([]domain.SystemCategory, 0, len(seen))
	for sys := range seen {
		systems = append(systems, sys)
	}
	sort.Slice(systems, func(i, j int) bool { return systems[i] < systems[j] })
	return systems
}

// dangerousOverlapCatalogue is the curated list of diagnosis combinations
// needing a merged protocol. Entries trigger on exact membership of every
// listed condition in the overlapping set.
func dangerousOverlapCatalogue() []domain.DangerousOverlap {
	return []domain.DangerousOverlap{
		{
			Conditions: []string{"septic_shock", "dka"},
			Priority:   domain.SeverityCritical,
			InteractionWarnings: []string{
				"Aggressive sepsis-style fluid resuscitation raises cerebral edema risk in ketoacidosis",
				"Early insulin without volume restoration can precipitate cardiovascular collapse",
			},
			ProtocolID: "sepsis_dka",
		},
		{
			Conditions: []string{"anaphylaxis", "severe_asthma"},
			Priority:   domain.SeverityCritical,
			InteractionWarnings: []string{
				"Bronchodilators alone will not reverse anaphylactic bronchospasm; epinephrine comes first",
			},
			ProtocolID: "anaphylaxis_asthma",
		},
		{
			Conditions: []string{"heart_failure", "pneumonia"},
			Priority:   domain.SeverityEmergent,
			InteractionWarnings: []string{
				"Standard pneumonia fluid volumes can decompensate a failing ventricle",
			},
			ProtocolID: "heart_failure_pneumonia",
		},
		{
			Conditions: []string{"meningitis", "septic_shock"},
			Priority:   domain.SeverityCritical,
			InteractionWarnings: []string{
				"Fluid resuscitation must be balanced against raised intracranial pressure",
				"Lumbar puncture is deferred until hemodynamically stable",
			},
			ProtocolID: "meningitis_sepsis",
		},
		{
			Conditions: []string{"eclampsia", "postpartum_hemorrhage"},
			Priority:   domain.SeverityCritical,
			InteractionWarnings: []string{
				"Magnesium sulfate relaxes uterine tone and can worsen atonic bleeding",
			},
			ProtocolID: "eclampsia_pph",
		},
		{
			Conditions: []string{"hypovolemic_shock", "severe_anemia"},
			Priority:   domain.SeverityCritical,
			InteractionWarnings: []string{
				"Crystalloid alone dilutes an already critical hemoglobin; transfuse early",
			},
			ProtocolID: "hypovolemia_anemia",
		},
	}
}

// diagnosisSystems maps each diagnosis id to the body systems it involves
func diagnosisSystems() map[string][]domain.SystemCategory {
	return map[string][]domain.SystemCategory{
		"upper_airway_obstruction":     {domain.SystemRespiratory},
		"severe_asthma":                {domain.SystemRespiratory},
		"croup":                        {domain.SystemRespiratory, domain.SystemInfectious},
		"foreign_body_aspiration":      {domain.SystemRespiratory},
		"pneumonia":                    {domain.SystemRespiratory, domain.SystemInfectious},
		"bronchiolitis":                {domain.SystemRespiratory, domain.SystemInfectious},
		"tension_pneumothorax":         {domain.SystemRespiratory, domain.SystemCardiovascular},
		"heart_failure":                {domain.SystemCardiovascular},
		"supraventricular_tachycardia": {domain.SystemCardiovascular},
		"severe_anemia":                {domain.SystemHematologic, domain.SystemCardiovascular},
		"severe_dehydration":           {domain.SystemCardiovascular, domain.SystemRenal},
		"sickle_cell_crisis":           {domain.SystemHematologic},
		"status_epilepticus":           {domain.SystemNeurological},
		"meningitis":                   {domain.SystemNeurological, domain.SystemInfectious},
		"raised_icp":                   {domain.SystemNeurological},
		"traumatic_brain_injury":       {domain.SystemNeurological},
		"dka":                          {domain.SystemMetabolic},
		"hypoglycemia":                 {domain.SystemMetabolic, domain.SystemNeurological},
		"hyperkalemia":                 {domain.SystemMetabolic, domain.SystemRenal, domain.SystemCardiovascular},
		"poisoning":                    {domain.SystemMetabolic, domain.SystemNeurological},
		"severe_malaria":               {domain.SystemInfectious, domain.SystemHematologic, domain.SystemNeurological},
		"neonatal_sepsis":              {domain.SystemInfectious},
		"eclampsia":                    {domain.SystemObstetric, domain.SystemNeurological},
		"severe_preeclampsia":          {domain.SystemObstetric, domain.SystemCardiovascular},
		"postpartum_hemorrhage":        {domain.SystemObstetric, domain.SystemHematologic},
		"anaphylaxis":                  {domain.SystemRespiratory, domain.SystemCardiovascular},
		"severe_burns":                 {domain.SystemRespiratory, domain.SystemCardiovascular},
		"hypovolemic_shock":            {domain.SystemCardiovascular},
		"septic_shock":                 {domain.SystemCardiovascular, domain.SystemInfectious},
		"cardiogenic_shock":            {domain.SystemCardiovascular},
		"obstructive_shock":            {domain.SystemCardiovascular, domain.SystemRespiratory},
		"anaphylactic_shock":           {domain.SystemCardiovascular, domain.SystemRespiratory},
		"neurogenic_shock":             {domain.SystemCardiovascular, domain.SystemNeurological},
	}
}
