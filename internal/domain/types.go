package domain

// Core Enums and Types

// PatientType represents the patient classification recorded at triage
type PatientType string

const (
	PatientNeonate            PatientType = "neonate"
	PatientChild              PatientType = "child"
	PatientPregnantPostpartum PatientType = "pregnant_postpartum"
	PatientAdult              PatientType = "adult"
)

// String returns the string representation
func (p PatientType) String() string {
	return string(p)
}

// Valid reports whether the patient type is one of the recognized classifications
func (p PatientType) Valid() bool {
	switch p {
	case PatientNeonate, PatientChild, PatientPregnantPostpartum, PatientAdult:
		return true
	}
	return false
}

// PhysiologicState is the coarse physiologic state tag assigned during the primary survey
type PhysiologicState string

const (
	StateStable                 PhysiologicState = "stable"
	StateRespiratoryDistress    PhysiologicState = "respiratory_distress"
	StateRespiratoryFailure     PhysiologicState = "respiratory_failure"
	StateShock                  PhysiologicState = "shock"
	StateCNSDysfunction         PhysiologicState = "cns_dysfunction"
	StateCardiopulmonaryFailure PhysiologicState = "cardiopulmonary_failure"
)

// String returns the string representation
func (s PhysiologicState) String() string {
	return string(s)
}

// Valid reports whether the state tag is recognized
func (s PhysiologicState) Valid() bool {
	switch s {
	case StateStable, StateRespiratoryDistress, StateRespiratoryFailure,
		StateShock, StateCNSDysfunction, StateCardiopulmonaryFailure:
		return true
	}
	return false
}

// SeverityCategory classifies a diagnosis by how quickly it can kill
type SeverityCategory string

const (
	SeverityCritical SeverityCategory = "critical"
	SeverityEmergent SeverityCategory = "emergent"
	SeverityUrgent   SeverityCategory = "urgent"
)

// String returns the string representation
func (c SeverityCategory) String() string {
	return string(c)
}

// InterventionTier is the risk-benefit tier of a recommended action
type InterventionTier string

const (
	TierImmediate    InterventionTier = "immediate"
	TierUrgent       InterventionTier = "urgent"
	TierConfirmatory InterventionTier = "confirmatory"
)

// String returns the string representation
func (t InterventionTier) String() string {
	return string(t)
}

// TestPriority indicates how fast a confirmatory test must be obtained
type TestPriority string

const (
	PriorityStat   TestPriority = "stat"
	PriorityUrgent TestPriority = "urgent"
)

// String returns the string representation
func (p TestPriority) String() string {
	return string(p)
}

// AgeGroup buckets patients for age-specific treatment amendments
type AgeGroup string

const (
	AgeGroupNeonate            AgeGroup = "neonate"
	AgeGroupInfant             AgeGroup = "infant"
	AgeGroupChild              AgeGroup = "child"
	AgeGroupAdolescent         AgeGroup = "adolescent"
	AgeGroupAdult              AgeGroup = "adult"
	AgeGroupPregnantPostpartum AgeGroup = "pregnant_postpartum"
)

// String returns the string representation
func (g AgeGroup) String() string {
	return string(g)
}

// SystemCategory is the body-system tag used for multi-system reporting
type SystemCategory string

const (
	SystemRespiratory    SystemCategory = "respiratory"
	SystemCardiovascular SystemCategory = "cardiovascular"
	SystemNeurological   SystemCategory = "neurological"
	SystemMetabolic      SystemCategory = "metabolic"
	SystemInfectious     SystemCategory = "infectious"
	SystemHematologic    SystemCategory = "hematologic"
	SystemObstetric      SystemCategory = "obstetric"
	SystemRenal          SystemCategory = "renal"
)

// String returns the string representation
func (s SystemCategory) String() string {
	return string(s)
}
