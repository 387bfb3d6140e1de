package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/domain"
)

// analysisMemoSize bounds the identical-snapshot memo. The pipeline is pure,
// so a repeated snapshot always reproduces the same clinical content.
const analysisMemoSize = 512

// AssessmentAnalyzer orchestrates the full pipeline: differential generation,
// treatment recommendation for the top diagnosis, overlap detection, and
// integrated protocol synthesis when multiple conditions are concurrently
// plausible.
type AssessmentAnalyzer struct {
	logger      *logrus.Logger
	engine      domain.DifferentialGenerator
	recommender *InterventionRecommender
	overlaps    *OverlapDetector
	protocols   *IntegratedProtocolGenerator
	prioritizer *InterventionPrioritizer
	memo        *lru.Cache
}

// NewAssessmentAnalyzer wires the pipeline stages together
func NewAssessmentAnalyzer(
	logger *logrus.Logger,
	engine domain.DifferentialGenerator,
	recommender *InterventionRecommender,
	overlaps *OverlapDetector,
	protocols *IntegratedProtocolGenerator,
	prioritizer *InterventionPrioritizer,
) *AssessmentAnalyzer {
	memo, _ := lru.New(analysisMemoSize)
	return &AssessmentAnalyzer{
		logger:      logger,
		engine:      engine,
		recommender: recommender,
		overlaps:    overlaps,
		protocols:   protocols,
		prioritizer: prioritizer,
		memo:        memo,
	}
}

// Analyze runs the complete assessment pipeline on a survey snapshot.
// Returns domain.ErrNoDifferential when nothing exceeds the generation
// threshold. Each call gets a fresh assessment id and timestamp even when
// the clinical content is served from the memo.
func (a *AssessmentAnalyzer) Analyze(survey *domain.PrimarySurveyData) (*domain.AnalysisResult, error) {
	start := time.Now()

	if key, ok := a.memoKey(survey); ok {
		if cached, hit := a.memo.Get(key); hit {
			memoed := *cached.(*domain.AnalysisResult)
			memoed.AssessmentID = uuid.New().String()
			memoed.ProcessingTime = time.Since(start)
			memoed.Timestamp = time.Now().UTC()
			a.logger.WithField("assessment_id", memoed.AssessmentID).Debug("Assessment served from snapshot memo")
			return &memoed, nil
		}
	}

	result, err := a.analyze(survey)
	if err != nil {
		return nil, err
	}

	result.AssessmentID = uuid.New().String()
	result.ProcessingTime = time.Since(start)
	result.Timestamp = time.Now().UTC()

	if key, ok := a.memoKey(survey); ok {
		a.memo.Add(key, result)
	}

	a.logger.WithFields(logrus.Fields{
		"assessment_id":   result.AssessmentID,
		"differentials":   len(result.Differentials),
		"top_diagnosis":   result.Differentials[0].ID,
		"processing_time": result.ProcessingTime.String(),
	}).Info("Assessment completed")

	return result, nil
}

func (a *AssessmentAnalyzer) analyze(survey *domain.PrimarySurveyData) (*domain.AnalysisResult, error) {
	differentials := a.engine.Generate(survey)
	if len(differentials) == 0 {
		a.logger.WithField("patient_type", survey.PatientType.String()).Warn("No differential exceeded the generation threshold")
		return nil, domain.ErrNoDifferential
	}

	top := &differentials[0]
	bundle := a.recommender.Recommend(top, survey)

	assessment := a.overlaps.Detect(differentials)

	result := &domain.AnalysisResult{
		SurveyData:                survey,
		Differentials:             differentials,
		ImmediateInterventions:    bundle.Immediate,
		UrgentInterventions:       bundle.Urgent,
		ConfirmatoryInterventions: bundle.Confirmatory,
		RequiredTests:             bundle.RequiredTests,
		Unbundled:                 bundle.Unbundled,
		OverlappingConditions:     assessment.Overlapping,
		DangerousOverlaps:         assessment.DangerousOverlaps,
		SystemsInvolved:           assessment.SystemsInvolved,
		SystemInteractionWarnings: []string{},
		PrioritySequence:          []string{},
		ConflictResolutions:       []string{},
	}

	if len(assessment.Overlapping) >= 2 {
		protocol := a.protocols.Synthesize(assessment, survey)
		result.SystemInteractionWarnings = protocol.SystemInteractionWarnings
		result.PrioritySequence = protocol.PrioritySequence
		result.ConflictResolutions = protocol.ConflictResolutions
		result.ImmediateInterventions = append(protocol.ImmediateInterventions, result.ImmediateInterventions...)
	}

	result.ImmediateInterventions = a.prioritizer.Prioritize(result.ImmediateInterventions)

	return result, nil
}

// memoKey hashes the canonical JSON form of the snapshot. A snapshot that
// fails to serialize simply bypasses the memo.
func (a *AssessmentAnalyzer) memoKey(survey *domain.PrimarySurveyData) (string, bool) {
	raw, err := json.Marshal(survey)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), true
}
