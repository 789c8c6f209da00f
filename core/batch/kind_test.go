package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paatthya/console/core"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "lectures", want: Lectures},
		{in: "Lecture", want: Lectures},
		{in: "notes", want: Notes},
		{in: " note ", want: Notes},
		{in: "assignments", want: Assignments},
		{in: "assignment", want: Assignments},
		{in: "videos", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.True(t, core.IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_StoredField(t *testing.T) {
	assert.Equal(t, "lectures", Lectures.StoredField())
	assert.Equal(t, "notes", Notes.StoredField())
	assert.Equal(t, "assignment", Assignments.StoredField())
	assert.Panics(t, func() { _ = Kind("videos").StoredField() })
}

func TestContentID(t *testing.T) {
	rec := NoteRecord{NotesName: "N1", NotesLink: "u1", DateTimeStamp: "2024-01-02"}.Record()

	id := ContentID(Notes, 0, rec)
	assert.Regexp(t, `^note-20240102-[0-9a-f]{12}$`, id)
	assert.Equal(t, id, ContentID(Notes, 0, rec.clone()))
	assert.NotEqual(t, id, ContentID(Notes, 1, rec))

	edited := rec.clone()
	edited[fieldNotesName] = "N1b"
	assert.NotEqual(t, id, ContentID(Notes, 0, edited))

	assert.Regexp(t, `^lecture-0-`, ContentID(Lectures, 0, Record{}))
}

func TestBatch_DiscountPercent(t *testing.T) {
	tests := []struct {
		price, mrp float64
		want       int
	}{
		{price: 750, mrp: 1000, want: 25},
		{price: 999, mrp: 1499, want: 33},
		{price: 1000, mrp: 1000},
		{price: 1200, mrp: 1000},
		{price: 0, mrp: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Batch{Price: tt.price, MRP: tt.mrp}.DiscountPercent())
	}
}

func TestBatch_Normalize(t *testing.T) {
	b := Batch{ID: "b1", Title: "Physics"}.Normalize()
	assert.Equal(t, "Physics", b.Name)
	assert.NotNil(t, b.Lectures)
	assert.NotNil(t, b.Notes)
	assert.NotNil(t, b.Assignment)

	b = Batch{Title: "Physics", Name: "Physics 2024"}.Normalize()
	assert.Equal(t, "Physics 2024", b.Name)
}
