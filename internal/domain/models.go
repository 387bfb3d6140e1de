package domain

import (
	"time"
)

// Core Data Models

// Differential represents one candidate diagnosis produced by a scorer.
// Probability is a heuristic accumulated weight, never a calibrated
// likelihood, and is always clamped to [0, 0.99].
type Differential struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Probability   float64          `json:"probability"`
	Evidence      []string         `json:"evidence"`
	Missing       []string         `json:"missing"`
	NextQuestions []string         `json:"next_questions,omitempty"`
	Category      SeverityCategory `json:"category"`
}

// Dosing carries a weight-based dosing formula plus the value computed
// from the patient's recorded weight at recommendation time
type Dosing struct {
	Formula    string `json:"formula"`
	Calculated string `json:"calculated,omitempty"`
	Route      string `json:"route"`
}

// Intervention is one recommended action inside a treatment bundle
type Intervention struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Tier              InterventionTier `json:"tier"`
	Indication        string           `json:"indication"`
	Contraindications []string         `json:"contraindications,omitempty"`
	RequiredTests     []RequiredTest   `json:"required_tests,omitempty"`
	RiskIfWrong       string           `json:"risk_if_wrong"`
	BenefitIfRight    string           `json:"benefit_if_right"`
	TimeWindow        string           `json:"time_window,omitempty"`
	Dosing            *Dosing          `json:"dosing,omitempty"`
	Monitoring        []string         `json:"monitoring,omitempty"`
}

// RequiredTest is a confirmatory test gating a confirmatory-tier intervention
type RequiredTest struct {
	Name      string       `json:"name"`
	Threshold string       `json:"threshold,omitempty"`
	Priority  TestPriority `json:"priority"`
}

// RecommendationBundle is the tiered treatment output for one diagnosis.
// Unbundled is set when the diagnosis id has no authored bundle; the tiers
// stay empty so consumers keep the legacy response shape.
type RecommendationBundle struct {
	DiagnosisID   string         `json:"diagnosis_id"`
	Immediate     []Intervention `json:"immediate"`
	Urgent        []Intervention `json:"urgent"`
	Confirmatory  []Intervention `json:"confirmatory"`
	RequiredTests []RequiredTest `json:"required_tests"`
	Unbundled     bool           `json:"unbundled"`
}

// ShockCandidate is the shock sub-classifier's output shape before it is
// adapted into a Differential
type ShockCandidate struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Evidence    []string `json:"evidence"`
	Missing     []string `json:"missing"`
}

// DangerousOverlap is a curated catalogue entry describing a combination of
// concurrently-plausible diagnoses that requires a merged treatment sequence.
// The entry triggers only when every id in Conditions is concurrently
// overlapping; partial matches never trigger.
type DangerousOverlap struct {
	Conditions          []string         `json:"conditions"`
	Priority            SeverityCategory `json:"priority"`
	InteractionWarnings []string         `json:"interaction_warnings"`
	ProtocolID          string           `json:"protocol_id"`
}

// OverlapAssessment is the multi-system overlap detector output
type OverlapAssessment struct {
	Overlapping       []Differential     `json:"overlapping"`
	DangerousOverlaps []DangerousOverlap `json:"dangerous_overlaps"`
	SystemsInvolved   []SystemCategory   `json:"systems_involved"`
}

// IntegratedProtocol is the merged treatment sequence emitted for matched
// dangerous overlaps
type IntegratedProtocol struct {
	ImmediateInterventions    []Intervention `json:"immediate_interventions"`
	SystemInteractionWarnings []string       `json:"system_interaction_warnings"`
	PrioritySequence          []string       `json:"priority_sequence"`
	ConflictResolutions       []string       `json:"conflict_resolutions"`
}

// AnalysisResult is the complete response for one assessment
type AnalysisResult struct {
	AssessmentID              string             `json:"assessment_id"`
	SurveyData                *PrimarySurveyData `json:"survey_data"`
	Differentials             []Differential     `json:"differentials"`
	ImmediateInterventions    []Intervention     `json:"immediate_interventions"`
	UrgentInterventions       []Intervention     `json:"urgent_interventions"`
	ConfirmatoryInterventions []Intervention     `json:"confirmatory_interventions"`
	RequiredTests             []RequiredTest     `json:"required_tests"`
	Unbundled                 bool               `json:"unbundled"`
	OverlappingConditions     []Differential     `json:"overlapping_conditions"`
	DangerousOverlaps         []DangerousOverlap `json:"dangerous_overlaps"`
	SystemsInvolved           []SystemCategory   `json:"systems_involved"`
	SystemInteractionWarnings []string           `json:"system_interaction_warnings"`
	PrioritySequence          []string           `json:"priority_sequence"`
	ConflictResolutions       []string           `json:"conflict_resolutions"`
	ProcessingTime            time.Duration      `json:"processing_time"`
	Timestamp                 time.Time          `json:"timestamp"`
}

// TopDifferential returns the highest-ranked diagnosis, or nil for an empty list
func (r *AnalysisResult) TopDifferential() *Differential {
	if len(r.Differentials) == 0 {
		return nil
	}
	return &r.Differentials[0]
}

// AssessmentRecord is a stored assessment for later retrieval by the UI
type AssessmentRecord struct {
	ID             string          `json:"id"`
	PatientType    PatientType     `json:"patient_type"`
	TopDiagnosisID string          `json:"top_diagnosis_id"`
	TopProbability float64         `json:"top_probability"`
	Result         *AnalysisResult `json:"result"`
	CreatedAt      time.Time       `json:"created_at"`
}
