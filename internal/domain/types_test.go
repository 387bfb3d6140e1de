package domain

import (
	"testing"
)

func TestPatientTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    PatientType
		expected string
	}{
		{"Neonate", PatientNeonate, "neonate"},
		{"Child", PatientChild, "child"},
		{"Pregnant/Postpartum", PatientPregnantPostpartum, "pregnant_postpartum"},
		{"Adult", PatientAdult, "adult"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.value.String())
			}
			if !tt.value.Valid() {
				t.Errorf("Expected %s to be valid", tt.value)
			}
		})
	}

	if PatientType("toddler").Valid() {
		t.Error("Expected unrecognized patient type to be invalid")
	}
}

func TestPhysiologicStateConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    PhysiologicState
		expected string
	}{
		{"Stable", StateStable, "stable"},
		{"Respiratory Distress", StateRespiratoryDistress, "respiratory_distress"},
		{"Respiratory Failure", StateRespiratoryFailure, "respiratory_failure"},
		{"Shock", StateShock, "shock"},
		{"CNS Dysfunction", StateCNSDysfunction, "cns_dysfunction"},
		{"Cardiopulmonary Failure", StateCardiopulmonaryFailure, "cardiopulmonary_failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.value.String())
			}
			if !tt.value.Valid() {
				t.Errorf("Expected %s to be valid", tt.value)
			}
		})
	}

	if PhysiologicState("collapsed").Valid() {
		t.Error("Expected unrecognized physiologic state to be invalid")
	}
}

func TestInterventionTierConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    InterventionTier
		expected string
	}{
		{"Immediate", TierImmediate, "immediate"},
		{"Urgent", TierUrgent, "urgent"},
		{"Confirmatory", TierConfirmatory, "confirmatory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.value.String())
			}
		})
	}
}

func TestTestPriorityConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    TestPriority
		expected string
	}{
		{"Stat", PriorityStat, "stat"},
		{"Urgent", PriorityUrgent, "urgent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.value.String())
			}
		})
	}
}

func TestTopDifferential(t *testing.T) {
	empty := &AnalysisResult{}
	if empty.TopDifferential() != nil {
		t.Error("Expected nil top differential for an empty result")
	}

	ranked := &AnalysisResult{
		Differentials: []Differential{
			{ID: "dka", Probability: 0.85},
			{ID: "septic_shock", Probability: 0.70},
		},
	}
	top := ranked.TopDifferential()
	if top == nil {
		t.Fatal("Expected a top differential")
	}
	if top.ID != "dka" {
		t.Errorf("Expected dka, got %s", top.ID)
	}
}
