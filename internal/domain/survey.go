package domain

// PrimarySurveyData is the immutable input snapshot for one assessment.
// It is created once per assessment submission and never mutated; optional
// numeric vitals are pointers and unobserved qualitative findings are empty
// strings, so every scorer can treat a nil/empty field as "not observed".
type PrimarySurveyData struct {
	PatientType      PatientType      `json:"patient_type"`
	PhysiologicState PhysiologicState `json:"physiologic_state"`
	AgeYears         *float64         `json:"age_years,omitempty"`
	WeightKg         *float64         `json:"weight_kg,omitempty"`

	Airway      AirwayFindings      `json:"airway"`
	Breathing   BreathingFindings   `json:"breathing"`
	Circulation CirculationFindings `json:"circulation"`
	Disability  DisabilityFindings  `json:"disability"`
	Exposure    ExposureFindings    `json:"exposure"`
}

// AirwayFindings holds the A section of the primary survey
type AirwayFindings struct {
	Patency      string `json:"patency,omitempty"` // patent, partial_obstruction, complete_obstruction
	Stridor      string `json:"stridor,omitempty"` // none, inspiratory, biphasic
	Drooling     *bool  `json:"drooling,omitempty"`
	NeckSwelling *bool  `json:"neck_swelling,omitempty"`
}

// BreathingFindings holds the B section of the primary survey
type BreathingFindings struct {
	RespiratoryRate *float64 `json:"respiratory_rate,omitempty"`
	SpO2            *float64 `json:"spo2,omitempty"`
	Pattern         string   `json:"pattern,omitempty"`           // normal, deep_kussmaul, irregular, gasping, apneic
	WorkOfBreathing string   `json:"work_of_breathing,omitempty"` // normal, mild, moderate, severe
	BreathSounds    string   `json:"breath_sounds,omitempty"`     // clear, wheeze, crackles, silent_chest, grunting, asymmetric
	Retractions     *bool    `json:"retractions,omitempty"`
	TrachealShift   *bool    `json:"tracheal_shift,omitempty"`
}

// PerfusionFindings nests the perfusion assessment inside circulation
type PerfusionFindings struct {
	SkinTemperature    string   `json:"skin_temperature,omitempty"` // warm, cold
	CapillaryRefillSec *float64 `json:"capillary_refill_sec,omitempty"`
	Pulses             string   `json:"pulses,omitempty"` // normal, weak, bounding, absent_peripheral
	Color              string   `json:"color,omitempty"`  // pink, pale, mottled, cyanotic, flushed
}

// CirculationFindings holds the C section of the primary survey
type CirculationFindings struct {
	HeartRate               *float64          `json:"heart_rate,omitempty"`
	SystolicBP              *float64          `json:"systolic_bp,omitempty"`
	Perfusion               PerfusionFindings `json:"perfusion"`
	ActiveBleeding          *bool             `json:"active_bleeding,omitempty"`
	BleedingSource          string            `json:"bleeding_source,omitempty"` // uterine, gastrointestinal, trauma
	DehydrationSigns        *bool             `json:"dehydration_signs,omitempty"`
	JugularVenousDistension *bool             `json:"jugular_venous_distension,omitempty"`
	Hepatomegaly            *bool             `json:"hepatomegaly,omitempty"`
	PeripheralEdema         *bool             `json:"peripheral_edema,omitempty"`
}

// SeizureFindings nests seizure observations inside disability
type SeizureFindings struct {
	Status      string   `json:"status,omitempty"` // none, active, just_stopped
	DurationMin *float64 `json:"duration_min,omitempty"`
}

// DisabilityFindings holds the D section of the primary survey
type DisabilityFindings struct {
	ConsciousnessLevel string          `json:"consciousness_level,omitempty"` // alert, voice, pain, unresponsive
	BloodGlucose       *float64        `json:"blood_glucose,omitempty"`       // mmol/L
	Pupils             string          `json:"pupils,omitempty"`              // normal, pinpoint, dilated, unequal, sluggish
	Seizure            SeizureFindings `json:"seizure"`
	Posturing          *bool           `json:"posturing,omitempty"`
	FocalDeficit       *bool           `json:"focal_deficit,omitempty"`
	NeckStiffness      *bool           `json:"neck_stiffness,omitempty"`
	BulgingFontanelle  *bool           `json:"bulging_fontanelle,omitempty"`
}

// HistoryFlags are optional nested history items gathered during exposure
type HistoryFlags struct {
	Postpartum         *bool    `json:"postpartum,omitempty"`
	GestationWeeks     *float64 `json:"gestation_weeks,omitempty"`
	AllergenExposure   *bool    `json:"allergen_exposure,omitempty"`
	KnownDiabetes      *bool    `json:"known_diabetes,omitempty"`
	KnownAsthma        *bool    `json:"known_asthma,omitempty"`
	KnownHeartDisease  *bool    `json:"known_heart_disease,omitempty"`
	KnownRenalDisease  *bool    `json:"known_renal_disease,omitempty"`
	SickleCellDisease  *bool    `json:"sickle_cell_disease,omitempty"`
	FeverHours         *float64 `json:"fever_hours,omitempty"`
	PoorFeeding        *bool    `json:"poor_feeding,omitempty"`
	VomitingOrDiarrhea *bool    `json:"vomiting_or_diarrhea,omitempty"`
	ChokingEpisode     *bool    `json:"choking_episode,omitempty"`
	IngestionSuspected *bool    `json:"ingestion_suspected,omitempty"`
	MalariaExposure    *bool    `json:"malaria_exposure,omitempty"`
	RecentTrauma       *bool    `json:"recent_trauma,omitempty"`
}

// ExposureFindings holds the E section of the primary survey
type ExposureFindings struct {
	TemperatureC       *float64     `json:"temperature_c,omitempty"`
	Rash               string       `json:"rash,omitempty"` // none, petechial, purpuric, urticarial, maculopapular
	VisibleBurns       *bool        `json:"visible_burns,omitempty"`
	BurnSurfaceAreaPct *float64     `json:"burn_surface_area_pct,omitempty"`
	TraumaSigns        *bool        `json:"trauma_signs,omitempty"`
	Pallor             *bool        `json:"pallor,omitempty"`
	Jaundice           *bool        `json:"jaundice,omitempty"`
	History            HistoryFlags `json:"history"`
}

// IsPregnantOrPostpartum reports whether obstetric scorers apply to this snapshot
func (s *PrimarySurveyData) IsPregnantOrPostpartum() bool {
	return s.PatientType == PatientPregnantPostpartum
}
