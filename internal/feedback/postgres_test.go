package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)

	mock.ExpectPing()
	store, err := NewPostgresStore(db)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return store, mock
}

func TestPostgresSaveUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO feedback`).
		WithArgs("assessment-1", "dka", "dka", true, "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

	fb := &Feedback{
		AssessmentID:         "assessment-1",
		SuggestedDiagnosisID: "dka",
		ClinicianDiagnosisID: "dka",
		Agreed:               true,
	}
	require.NoError(t, store.Save(context.Background(), fb))
	assert.Equal(t, int64(7), fb.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetFound(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "assessment_id", "suggested_diagnosis_id", "clinician_diagnosis_id",
		"agreed", "outcome_summary", "notes", "created_at", "updated_at",
	}).AddRow(int64(3), "assessment-9", "septic_shock", "meningitis", false, "", "LP confirmed", now, now)

	mock.ExpectQuery(`SELECT .+ FROM feedback`).
		WithArgs("assessment-9").
		WillReturnRows(rows)

	fb, err := store.Get(context.Background(), "assessment-9")
	require.NoError(t, err)
	require.NotNil(t, fb)
	assert.Equal(t, "meningitis", fb.ClinicianDiagnosisID)
	assert.False(t, fb.Agreed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetMissingReturnsNil(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .+ FROM feedback`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "assessment_id", "suggested_diagnosis_id", "clinician_diagnosis_id",
			"agreed", "outcome_summary", "notes", "created_at", "updated_at",
		}))

	fb, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, fb)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCount(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresStoreRequiresConnection(t *testing.T) {
	store, err := NewPostgresStore(nil)
	assert.Nil(t, store)
	assert.Error(t, err)
}
