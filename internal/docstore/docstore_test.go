package docstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestOpenCreatesEmptyCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := Open(path)
	require.NoError(t, err)

	store.View(func(d *Data) {
		assert.Empty(t, d.Submissions)
		assert.Empty(t, d.Statuses)
		assert.Empty(t, d.Rankings)
	})

	// The file exists on disk after Open.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := Open(path)
	require.NoError(t, err)

	err = store.Update(func(d *Data) error {
		d.Submissions = append(d.Submissions, models.Submission{
			ID:    "sub-1",
			Name:  "A",
			Email: "a@x.com",
			Phone: "1",
			Date:  time.Now().UTC(),
		})
		d.Statuses["sub-1"] = models.StatusRecord{
			SubmissionID: "sub-1",
			Status:       models.StatusReceived,
			LastUpdated:  time.Now().UTC(),
		}
		d.Rankings = append(d.Rankings, models.RankingEntry{
			ID: "sub-1", Name: "A", Score: 15, Date: time.Now().UTC(),
		})
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)

	reopened.View(func(d *Data) {
		require.Len(t, d.Submissions, 1)
		assert.Equal(t, "sub-1", d.Submissions[0].ID)
		assert.Equal(t, models.StatusReceived, d.Statuses["sub-1"].Status)
		require.Len(t, d.Rankings, 1)
		assert.Equal(t, 15, d.Rankings[0].Score)
	})
}

func TestUpdateErrorDoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := Open(path)
	require.NoError(t, err)

	wantErr := assert.AnError
	err = store.Update(func(d *Data) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestOpenCoercesLegacyStatusesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	legacy := `{
		"submissions": [{"id": "sub-1", "name": "A", "email": "a@x.com", "phone": "1"}],
		"statuses": [],
		"rankings": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	store, err := Open(path)
	require.NoError(t, err)

	store.View(func(d *Data) {
		require.Len(t, d.Submissions, 1)
		assert.NotNil(t, d.Statuses)
		assert.Empty(t, d.Statuses)
	})

	// The coerced map is usable for writes.
	err = store.Update(func(d *Data) error {
		d.Statuses["sub-1"] = models.StatusRecord{Status: models.StatusReceived}
		return nil
	})
	assert.NoError(t, err)
}
