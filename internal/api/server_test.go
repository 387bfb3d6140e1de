package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peds-emergency-server/internal/config"
	"github.com/peds-emergency-server/internal/domain"
	"github.com/peds-emergency-server/internal/feedback"
	"github.com/peds-emergency-server/internal/service"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestServer(t *testing.T, opts ...ServerOption) *Server {
	t.Helper()

	manager, err := config.NewManager()
	require.NoError(t, err)

	logger := testLogger()
	ageModifiers := service.NewAgeModifierTable()
	shock := service.NewShockSubClassifier(logger)
	engine := service.NewDifferentialEngine(logger, shock, ageModifiers)
	analyzer := service.NewAssessmentAnalyzer(
		logger,
		engine,
		service.NewInterventionRecommender(logger, ageModifiers),
		service.NewOverlapDetector(logger),
		service.NewIntegratedProtocolGenerator(logger),
		service.NewInterventionPrioritizer(logger),
	)

	return NewServer(manager, logger, analyzer, opts...)
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func dkaRequest() map[string]interface{} {
	return map[string]interface{}{
		"patient_type":      "child",
		"physiologic_state": "shock",
		"age_years":         6,
		"weight_kg":         20,
		"breathing": map[string]interface{}{
			"pattern": "deep_kussmaul",
		},
		"circulation": map[string]interface{}{
			"perfusion": map[string]interface{}{
				"skin_temperature":     "cold",
				"capillary_refill_sec": 4,
			},
		},
		"disability": map[string]interface{}{
			"blood_glucose": 25,
		},
	}
}

func TestAnalyzeReturnsRankedAssessment(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/analyze", dkaRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.NotEmpty(t, result.AssessmentID)
	require.NotEmpty(t, result.Differentials)
	assert.Equal(t, "dka", result.Differentials[0].ID)
	assert.InDelta(t, 0.85, result.Differentials[0].Probability, 1e-9)
	assert.NotEmpty(t, result.ImmediateInterventions)
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var assessErr domain.AssessError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessErr))
	assert.Equal(t, domain.ErrInvalidInput, assessErr.Code)
}

func TestAnalyzeRejectsImplausibleVitals(t *testing.T) {
	server := newTestServer(t)

	body := dkaRequest()
	body["breathing"] = map[string]interface{}{"spo2": 250}

	rec := doJSON(t, server, http.MethodPost, "/api/v1/analyze", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response struct {
		Error            *domain.AssessError       `json:"error"`
		ValidationErrors []*domain.ValidationError `json:"validation_errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Equal(t, domain.ErrValidation, response.Error.Code)
	require.Len(t, response.ValidationErrors, 1)
	assert.Equal(t, "breathing.spo2", response.ValidationErrors[0].Field)
}

func TestAnalyzeAmbiguousSurveyReturns422(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"patient_type":      "child",
		"physiologic_state": "stable",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var assessErr domain.AssessError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessErr))
	assert.Equal(t, domain.ErrNoDiagnosis, assessErr.Code)
}

func TestGetAssessmentWithoutStoreReturns404(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/v1/assessment/unknown-id", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var assessErr domain.AssessError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessErr))
	assert.Equal(t, domain.ErrNotFound, assessErr.Code)
}

func TestListAssessmentsWithoutStoreReturns404(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/v1/assessments", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackWithoutStoreReturns404(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/v1/feedback", map[string]interface{}{
		"assessment_id":          "a-1",
		"suggested_diagnosis_id": "dka",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/v1/feedback", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackRoundTrip(t *testing.T) {
	store, err := feedback.NewSQLiteStore(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	server := newTestServer(t, WithFeedbackStore(store))

	rec := doJSON(t, server, http.MethodPost, "/api/v1/feedback", map[string]interface{}{
		"assessment_id":          "a-1",
		"suggested_diagnosis_id": "dka",
		"clinician_diagnosis_id": "dka",
		"agreed":                 true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/v1/feedback", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Feedback []*feedback.Feedback `json:"feedback"`
		Count    int64                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Count)
	require.Len(t, response.Feedback, 1)
	assert.Equal(t, "a-1", response.Feedback[0].AssessmentID)
}

func TestFeedbackRequiresAssessmentID(t *testing.T) {
	store, err := feedback.NewSQLiteStore(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	server := newTestServer(t, WithFeedbackStore(store))

	rec := doJSON(t, server, http.MethodPost, "/api/v1/feedback", map[string]interface{}{
		"suggested_diagnosis_id": "dka",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Components["engine"])
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeadersApplied(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
