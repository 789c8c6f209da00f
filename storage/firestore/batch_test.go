package firestoredb

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/batch"
)

// emulatorClient connects to the Firestore emulator, skipping the test when none is configured.
func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "paatthya-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestBatchRepository_emulator(t *testing.T) {
	ctx := context.Background()
	repo := NewBatchRepository(emulatorClient(t))

	b, err := repo.CreateBatch(ctx, batch.Batch{Title: "Physics", CreatedAt: "2024-01-01T00:00:00Z"}.Normalize())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.DeleteBatch(ctx, b.ID) })

	c := batch.NewCatalog(repo, b)
	_, err = c.AddMaterial(ctx, batch.Notes, batch.MaterialInput{Title: "N1", URL: "u1"})
	require.NoError(t, err)
	_, err = c.AddMaterial(ctx, batch.Assignments, batch.MaterialInput{Title: "A1", URL: "a1"})
	require.NoError(t, err)

	got, err := repo.ReadBatch(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "N1", got.Notes[0].Note().NotesName)
	require.Len(t, got.Assignment, 1)
	assert.Empty(t, got.Lectures)

	require.NoError(t, repo.DeleteBatch(ctx, b.ID))
	assert.True(t, core.IsNotFound(repo.WriteBatchField(ctx, b.ID, batch.FieldNotes, nil)))
	_, err = repo.ReadBatch(ctx, b.ID)
	assert.True(t, core.IsNotFound(err))
}
