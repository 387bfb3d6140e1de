package feedback

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleFeedback(assessmentID string) *Feedback {
	return &Feedback{
		AssessmentID:         assessmentID,
		SuggestedDiagnosisID: "dka",
		ClinicianDiagnosisID: "dka",
		Agreed:               true,
		Notes:                "Ketones confirmed at bedside",
	}
}

func TestSQLiteSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fb := sampleFeedback("assessment-1")
	require.NoError(t, store.Save(ctx, fb))
	assert.NotZero(t, fb.ID)
	assert.False(t, fb.CreatedAt.IsZero())

	got, err := store.Get(ctx, "assessment-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "dka", got.SuggestedDiagnosisID)
	assert.True(t, got.Agreed)
	assert.Equal(t, "Ketones confirmed at bedside", got.Notes)
}

func TestSQLiteGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteSaveUpdatesExistingAssessment(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fb := sampleFeedback("assessment-2")
	require.NoError(t, store.Save(ctx, fb))
	firstID := fb.ID

	correction := &Feedback{
		AssessmentID:         "assessment-2",
		SuggestedDiagnosisID: "dka",
		ClinicianDiagnosisID: "septic_shock",
		Agreed:               false,
		Notes:                "Cultures grew gram-negative rods",
	}
	require.NoError(t, store.Save(ctx, correction))
	assert.Equal(t, firstID, correction.ID)

	got, err := store.Get(ctx, "assessment-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Agreed)
	assert.Equal(t, "septic_shock", got.ClinicianDiagnosisID)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteListPagination(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a-1", "a-2", "a-3"} {
		require.NoError(t, store.Save(ctx, sampleFeedback(id)))
	}

	page, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := store.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestSQLiteDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fb := sampleFeedback("assessment-3")
	require.NoError(t, store.Save(ctx, fb))
	require.NoError(t, store.Delete(ctx, fb.ID))

	got, err := store.Get(ctx, "assessment-3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteExportImportRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, source.Save(ctx, sampleFeedback("a-1")))
	require.NoError(t, source.Save(ctx, sampleFeedback("a-2")))

	var buf bytes.Buffer
	require.NoError(t, source.ExportJSON(ctx, &buf))

	target := newTestStore(t)
	require.NoError(t, target.Save(ctx, sampleFeedback("a-1"))) // pre-existing entry is skipped

	imported, skipped, err := target.ImportJSON(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)

	count, err := target.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
