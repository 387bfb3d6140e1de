// Package feedback stores clinician feedback on completed assessments: did
// the treating clinician agree with the suggested working diagnosis, and if
// not, what did they treat instead. Entries are kept verbatim for audit and
// catalogue review; they are never fed back into scoring.
package feedback

import (
	"context"
	"io"
	"time"
)

// Feedback is one clinician's verdict on one assessment.
type Feedback struct {
	ID                   int64     `json:"id,omitempty"`
	AssessmentID         string    `json:"assessment_id"`
	SuggestedDiagnosisID string    `json:"suggested_diagnosis_id"` // engine's top differential
	ClinicianDiagnosisID string    `json:"clinician_diagnosis_id"` // what was actually treated
	Agreed               bool      `json:"agreed"`
	OutcomeSummary       string    `json:"outcome_summary,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Store defines the interface for feedback storage operations.
type Store interface {
	// Save stores or updates feedback for an assessment. Feedback for an
	// assessment that already has an entry is updated in place.
	Save(ctx context.Context, feedback *Feedback) error

	// Get retrieves the feedback for an assessment, or nil if none exists.
	Get(ctx context.Context, assessmentID string) (*Feedback, error)

	// List returns feedback entries with pagination, newest first.
	List(ctx context.Context, limit, offset int) ([]*Feedback, error)

	// Count returns the total number of feedback entries.
	Count(ctx context.Context) (int64, error)

	// Delete removes a feedback entry by ID.
	Delete(ctx context.Context, id int64) error

	// ExportJSON exports all feedback to a JSON writer.
	ExportJSON(ctx context.Context, writer io.Writer) error

	// ImportJSON imports feedback from a JSON reader.
	// Returns the number of imported and skipped entries.
	ImportJSON(ctx context.Context, reader io.Reader) (imported int, skipped int, err error)

	// Close closes the store and releases resources.
	Close() error
}

// FeedbackExport represents the JSON export format.
type FeedbackExport struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Count      int         `json:"count"`
	Feedback   []*Feedback `json:"feedback"`
}
