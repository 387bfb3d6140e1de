package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/peds-emergency-server/internal/database"
	"github.com/peds-emergency-server/internal/domain"
)

// AssessmentRepository persists completed assessments in PostgreSQL. The
// full analysis result is stored as a JSONB document alongside the indexed
// summary columns used for history queries.
type AssessmentRepository struct {
	db  *database.DB
	log *logrus.Logger
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *database.DB, logger *logrus.Logger) *AssessmentRepository {
	return &AssessmentRepository{
		db:  db,
		log: logger,
	}
}

// Save stores a completed assessment
func (r *AssessmentRepository) Save(ctx context.Context, record *domain.AssessmentRecord) error {
	payload, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("marshaling assessment result: %w", err)
	}

	query := `
		INSERT INTO assessments (id, patient_type, top_diagnosis_id, top_probability, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err = r.db.Pool.Exec(ctx, query,
		record.ID,
		record.PatientType.String(),
		record.TopDiagnosisID,
		record.TopProbability,
		payload,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"assessment_id": record.ID,
		"top_diagnosis": record.TopDiagnosisID,
	}).Debug("Assessment persisted")

	return nil
}

// GetByID retrieves a stored assessment, or nil if it does not exist
func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	query := `
		SELECT id, patient_type, top_diagnosis_id, top_probability, result, created_at
		FROM assessments
		WHERE id = $1
	`

	record := &domain.AssessmentRecord{}
	var patientType string
	var payload []byte

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&patientType,
		&record.TopDiagnosisID,
		&record.TopProbability,
		&payload,
		&record.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying assessment: %w", err)
	}

	record.PatientType = domain.PatientType(patientType)

	result := &domain.AnalysisResult{}
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, fmt.Errorf("unmarshaling assessment result: %w", err)
	}
	record.Result = result

	return record, nil
}

// ListRecent returns the newest assessments for the history view
func (r *AssessmentRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AssessmentRecord, error) {
	query := `
		SELECT id, patient_type, top_diagnosis_id, top_probability, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent assessments: %w", err)
	}
	defer rows.Close()

	var records []*domain.AssessmentRecord
	for rows.Next() {
		record := &domain.AssessmentRecord{}
		var patientType string
		if err := rows.Scan(
			&record.ID,
			&patientType,
			&record.TopDiagnosisID,
			&record.TopProbability,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning assessment row: %w", err)
		}
		record.PatientType = domain.PatientType(patientType)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Health checks the underlying connection
func (r *AssessmentRepository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}
