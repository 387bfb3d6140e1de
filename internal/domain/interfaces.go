package domain

import (
	"context"
	"time"
)

// DifferentialGenerator produces the ranked differential list for a survey snapshot
type DifferentialGenerator interface {
	Generate(survey *PrimarySurveyData) []Differential
}

// ShockClassifier is the shock sub-classifier collaborator contract. It
// follows the same weight-accumulation shape discipline as the pattern
// scorers; an adapter converts candidates into Differentials.
type ShockClassifier interface {
	Classify(survey *PrimarySurveyData) []ShockCandidate
}

// AgeModifierLookup supplies age-group-specific amendments to a treatment
// bundle and optional probability adjustments applied across a differential list
type AgeModifierLookup interface {
	ClassifyAge(ageYears float64, pregnantOrPostpartum bool) AgeGroup
	Guidance(diagnosisID string, group AgeGroup) []string
	AdjustProbability(diagnosisID string, group AgeGroup, probability float64) float64
}

// Analyzer is the single boundary operation exposed to the assessment UI
type Analyzer interface {
	Analyze(survey *PrimarySurveyData) (*AnalysisResult, error)
}

// AssessmentStore persists completed assessments for later retrieval
type AssessmentStore interface {
	Save(ctx context.Context, record *AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*AssessmentRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*AssessmentRecord, error)
	Health(ctx context.Context) error
}

// AssessmentCache is the hot cache over completed assessments
type AssessmentCache interface {
	Get(ctx context.Context, id string) (*AnalysisResult, bool, error)
	Set(ctx context.Context, id string, result *AnalysisResult, ttl time.Duration) error
	Health(ctx context.Context) error
}

// ConfigManager provides access to application configuration
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	GetDatabaseConfig() *DatabaseConfig
	GetCacheConfig() *CacheConfig
	Validate() error
}
