package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peds-emergency-server/internal/domain"
	"github.com/peds-emergency-server/internal/feedback"
)

// handleHealth reports liveness plus the state of the optional backends
func (s *Server) handleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	components := gin.H{"engine": "healthy"}
	status := http.StatusOK

	if s.store != nil {
		if err := s.store.Health(ctx); err != nil {
			components["database"] = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			components["database"] = "healthy"
		}
	}
	if s.cache != nil {
		if err := s.cache.Health(ctx); err != nil {
			components["cache"] = "unhealthy"
		} else {
			components["cache"] = "healthy"
		}
	}

	c.JSON(status, gin.H{
		"status":     map[bool]string{true: "healthy", false: "degraded"}[status == http.StatusOK],
		"components": components,
		"timestamp":  time.Now().UTC(),
		"version":    "1.0.0",
	})
}

// handleAnalyze runs the full assessment pipeline on a primary survey snapshot
func (s *Server) handleAnalyze(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	var survey domain.PrimarySurveyData
	if err := c.ShouldBindJSON(&survey); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAssessError(
			domain.ErrInvalidInput, "Invalid request body", err.Error(), requestID))
		return
	}

	if verrs := validateSurvey(&survey); len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.NewAssessError(
				domain.ErrValidation, "Survey validation failed", "", requestID),
			"validation_errors": verrs,
		})
		return
	}

	result, err := s.analyzer.Analyze(&survey)
	if err != nil {
		if errors.Is(err, domain.ErrNoDifferential) {
			c.JSON(http.StatusUnprocessableEntity, domain.NewAssessError(
				domain.ErrNoDiagnosis,
				"No differential diagnosis exceeded the generation threshold",
				"The recorded findings are too ambiguous to rank; gather more of the primary survey",
				requestID))
			return
		}
		s.logger.WithError(err).WithField("request_id", requestID).Error("Assessment failed")
		c.JSON(http.StatusInternalServerError, domain.NewAssessError(
			domain.ErrInternalServer, "Assessment failed", "", requestID))
		return
	}

	s.persist(c, result)
	s.monitor.Broadcast(result)

	c.JSON(http.StatusOK, result)
}

// persist writes the completed assessment to the optional store and cache.
// Persistence failures are logged, never surfaced: the clinical response
// has priority over the audit trail.
func (s *Server) persist(c *gin.Context, result *domain.AnalysisResult) {
	ctx := c.Request.Context()

	if s.store != nil {
		record := &domain.AssessmentRecord{
			ID:          result.AssessmentID,
			PatientType: result.SurveyData.PatientType,
			Result:      result,
			CreatedAt:   result.Timestamp,
		}
		if top := result.TopDifferential(); top != nil {
			record.TopDiagnosisID = top.ID
			record.TopProbability = top.Probability
		}
		if err := s.store.Save(ctx, record); err != nil {
			s.logger.WithError(err).WithField("assessment_id", result.AssessmentID).Error("Failed to persist assessment")
		}
	}

	if s.cache != nil {
		ttl := s.configManager.GetCacheConfig().DefaultTTL
		if err := s.cache.Set(ctx, result.AssessmentID, result, ttl); err != nil {
			s.logger.WithError(err).WithField("assessment_id", result.AssessmentID).Warn("Failed to cache assessment")
		}
	}
}

// handleGetAssessment retrieves a stored assessment, cache first
func (s *Server) handleGetAssessment(c *gin.Context) {
	requestID := c.GetString("correlation_id")
	id := c.Param("id")
	ctx := c.Request.Context()

	if s.cache != nil {
		if result, found, err := s.cache.Get(ctx, id); err == nil && found {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	if s.store == nil {
		c.JSON(http.StatusNotFound, domain.NewAssessError(
			domain.ErrNotFound, "Assessment not found", "Assessment history is not enabled", requestID))
		return
	}

	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("assessment_id", id).Error("Assessment lookup failed")
		c.JSON(http.StatusInternalServerError, domain.NewAssessError(
			domain.ErrDatabaseError, "Assessment lookup failed", "", requestID))
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, domain.NewAssessError(
			domain.ErrNotFound, "Assessment not found", "", requestID))
		return
	}

	c.JSON(http.StatusOK, record.Result)
}

// handleListAssessments returns the newest stored assessments as summaries
func (s *Server) handleListAssessments(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	if s.store == nil {
		c.JSON(http.StatusNotFound, domain.NewAssessError(
			domain.ErrNotFound, "Assessment history is not enabled", "", requestID))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	records, err := s.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.logger.WithError(err).Error("Assessment history query failed")
		c.JSON(http.StatusInternalServerError, domain.NewAssessError(
			domain.ErrDatabaseError, "Assessment history query failed", "", requestID))
		return
	}

	summaries := make([]gin.H, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, gin.H{
			"id":               record.ID,
			"patient_type":     record.PatientType,
			"top_diagnosis_id": record.TopDiagnosisID,
			"top_probability":  record.TopProbability,
			"created_at":       record.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": summaries,
		"limit":       limit,
	})
}

// handleSubmitFeedback records a clinician's agreement or correction for an
// assessment. Stored verbatim for audit and review; it never feeds back into
// scoring.
func (s *Server) handleSubmitFeedback(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	if s.feedbackStore == nil {
		c.JSON(http.StatusNotFound, domain.NewAssessError(
			domain.ErrNotFound, "Feedback store not enabled", "", requestID))
		return
	}

	var fb feedback.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAssessError(
			domain.ErrInvalidInput, "Invalid feedback body", err.Error(), requestID))
		return
	}

	if fb.AssessmentID == "" || fb.SuggestedDiagnosisID == "" {
		c.JSON(http.StatusBadRequest, domain.NewAssessError(
			domain.ErrValidation, "assessment_id and suggested_diagnosis_id are required", "", requestID))
		return
	}

	if err := s.feedbackStore.Save(c.Request.Context(), &fb); err != nil {
		s.logger.WithError(err).Error("Failed to save clinician feedback")
		c.JSON(http.StatusInternalServerError, domain.NewAssessError(
			domain.ErrDatabaseError, "Failed to save feedback", "", requestID))
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// handleListFeedback returns stored clinician feedback with pagination
func (s *Server) handleListFeedback(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	if s.feedbackStore == nil {
		c.JSON(http.StatusNotFound, domain.NewAssessError(
			domain.ErrNotFound, "Feedback store not enabled", "", requestID))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.feedbackStore.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list clinician feedback")
		c.JSON(http.StatusInternalServerError, domain.NewAssessError(
			domain.ErrDatabaseError, "Failed to list feedback", "", requestID))
		return
	}

	count, err := s.feedbackStore.Count(c.Request.Context())
	if err != nil {
		count = int64(len(entries))
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback": entries,
		"count":    count,
		"limit":    limit,
		"offset":   offset,
	})
}

// validateSurvey enforces the schema layer: classification enums must be
// recognized and numeric vitals must be physiologically plausible. The core
// never sees a survey that fails here.
func validateSurvey(s *domain.PrimarySurveyData) []*domain.ValidationError {
	var errs []*domain.ValidationError

	if !s.PatientType.Valid() {
		errs = append(errs, domain.NewValidationError("patient_type", "unrecognized patient classification", s.PatientType))
	}
	if s.PhysiologicState != "" && !s.PhysiologicState.Valid() {
		errs = append(errs, domain.NewValidationError("physiologic_state", "unrecognized physiologic state", s.PhysiologicState))
	}

	checkRange := func(field string, v *float64, min, max float64) {
		if v != nil && (*v < min || *v > max) {
			errs = append(errs, domain.NewValidationError(field, "value outside plausible range", *v))
		}
	}

	checkRange("age_years", s.AgeYears, 0, 120)
	checkRange("weight_kg", s.WeightKg, 0.3, 300)
	checkRange("breathing.respiratory_rate", s.Breathing.RespiratoryRate, 0, 150)
	checkRange("breathing.spo2", s.Breathing.SpO2, 0, 100)
	checkRange("circulation.heart_rate", s.Circulation.HeartRate, 0, 400)
	checkRange("circulation.systolic_bp", s.Circulation.SystolicBP, 0, 300)
	checkRange("circulation.perfusion.capillary_refill_sec", s.Circulation.Perfusion.CapillaryRefillSec, 0, 60)
	checkRange("disability.blood_glucose", s.Disability.BloodGlucose, 0, 100)
	checkRange("disability.seizure.duration_min", s.Disability.Seizure.DurationMin, 0, 1440)
	checkRange("exposure.temperature_c", s.Exposure.TemperatureC, 25, 45)
	checkRange("exposure.burn_surface_area_pct", s.Exposure.BurnSurfaceAreaPct, 0, 100)
	checkRange("exposure.history.gestation_weeks", s.Exposure.History.GestationWeeks, 0, 45)

	return errs
}
