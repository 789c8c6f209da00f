package batch_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paatthya/console/core/batch"
)

func TestRecord_JSON(t *testing.T) {
	in := `[{"notesName":"N1","extra":{"k":1}},null,"stray",3]`

	var seq []batch.Record
	require.NoError(t, json.Unmarshal([]byte(in), &seq))
	require.Len(t, seq, 4)
	assert.Equal(t, "N1", seq[0].Note().NotesName)

	raw, ok := seq[1].Raw()
	assert.True(t, ok)
	assert.Nil(t, raw)
	_, ok = seq[0].Raw()
	assert.False(t, ok)

	out, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	views := batch.LoadFor(batch.Batch{Notes: seq}, batch.Notes, batch.ContentID)
	require.Len(t, views, 4)
	assert.Equal(t, "N1", views[0].Title)
	assert.Empty(t, views[2].Title)
	assert.NotEqual(t, views[1].ID, views[2].ID)
}
