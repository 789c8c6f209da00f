package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/paatthya/console/apps/api/echo"
	"github.com/paatthya/console/core/batch"
	"github.com/paatthya/console/tests"
)

func Test_batchApi(t *testing.T) {
	app := setup(t)
	jane := testutil.CreateAdmin(t, adminRepo, "Jane", "jane@test.cd", "s3cure-pass", false)
	token := getToken(t, jane)

	physics := testutil.CreateBatch(t, batchRepo, batch.Batch{Title: "Physics", Price: 750, MRP: 1000})
	maths := testutil.CreateBatch(t, batchRepo, batch.Batch{Title: "Maths", Name: "Maths 101"})

	runHTTPTests(t, app, []httpTest{
		{
			name:     "query",
			method:   http.MethodGet,
			path:     "/v1/batches",
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []BatchResponse{
				{Batch: physics.Normalize(), DiscountPercent: 25},
				{Batch: maths.Normalize()},
			}),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/batches/" + maths.ID,
			token:    token,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, BatchResponse{Batch: maths.Normalize()}),
		},
		{
			name:     "retrieve unknown",
			method:   http.MethodGet,
			path:     "/v1/batches/nope",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "batch not found: nope"}),
		},
		{
			name:     "anonymous",
			method:   http.MethodGet,
			path:     "/v1/batches",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/v1/batches",
			body:     []byte(`{"title":"  ","price":-1,"startDate":"09/03/2024"}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"title":     "this field cannot be blank",
				"price":     "price must be 0 or greater",
				"startDate": "date must be formatted as YYYY-MM-DD",
			}),
		},
		{
			name:     "create with impossible date",
			method:   http.MethodPost,
			path:     "/v1/batches",
			body:     []byte(`{"title":"Physics","courseCompletionDate":"2024-13-45"}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"courseCompletionDate": "date must be formatted as YYYY-MM-DD",
			}),
		},
	})

	t.Run("create and delete", func(t *testing.T) {
		body := []byte(`{"title":" Chemistry ","price":999,"mrp":1499,"startDate":"2024-04-01"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/batches", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var got BatchResponse
		unmarchallObj(t, rec.Body.Bytes(), &got)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Chemistry", got.Title)
		assert.Equal(t, "Chemistry", got.Name)
		assert.Equal(t, 33, got.DiscountPercent)
		assert.NotNil(t, got.Lectures)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/batches/"+got.ID, token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/batches/"+got.ID, token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_batchApi_materials(t *testing.T) {
	app := setup(t)
	jane := testutil.CreateAdmin(t, adminRepo, "Jane", "jane@test.cd", "s3cure-pass", false)
	token := getToken(t, jane)

	b := testutil.CreateBatch(t, batchRepo, batch.Batch{
		Title: "Physics",
		Notes: []batch.Record{
			batch.NoteRecord{NotesName: "Same", NotesLink: "https://x/a.pdf", DateTimeStamp: "2024-01-01"}.Record(),
			batch.NoteRecord{NotesName: "Same", NotesLink: "https://x/a.pdf", DateTimeStamp: "2024-01-01"}.Record(),
		},
	})
	path := "/v1/batches/" + b.ID + "/materials/"

	list := func(t *testing.T, kind string) []batch.MaterialView {
		req, rec := newAuthRequest(http.MethodGet, path+kind, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var views []batch.MaterialView
		unmarchallObj(t, rec.Body.Bytes(), &views)
		return views
	}

	t.Run("ids are stable across requests", func(t *testing.T) {
		first, second := list(t, "notes"), list(t, "notes")
		require.Len(t, first, 2)
		assert.Equal(t, first, second)
		assert.NotEqual(t, first[0].ID, first[1].ID)
	})

	t.Run("add lecture", func(t *testing.T) {
		body := []byte(`{"title":"Intro","description":"Kinematics","url":"https://www.youtube.com/watch?v=abc123&t=5"}`)
		req, rec := newAuthRequest(http.MethodPost, path+"lectures", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var views []batch.MaterialView
		unmarchallObj(t, rec.Body.Bytes(), &views)
		require.Len(t, views, 1)
		assert.Equal(t, "Intro", views[0].Title)
		assert.Equal(t, "https://www.youtube.com/embed/abc123", views[0].URL)
		assert.True(t, views[0].IsYTVideo)
		assert.Equal(t, batch.FileTypeVideo, views[0].FileType)
	})

	t.Run("delete removes only the addressed duplicate", func(t *testing.T) {
		views := list(t, "notes")
		req, rec := newAuthRequest(http.MethodDelete, path+"notes/"+views[1].ID, token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got []batch.MaterialView
		unmarchallObj(t, rec.Body.Bytes(), &got)
		require.Len(t, got, 1)
		assert.Equal(t, views[0].ID, got[0].ID)

		stored, err := batchRepo.ReadBatch(req.Context(), b.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Notes, 1)
	})

	t.Run("update assignment", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, path+"assignments", token, []byte(`{"title":"HW 1","url":"https://x/hw1.pdf"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var views []batch.MaterialView
		unmarchallObj(t, rec.Body.Bytes(), &views)

		req, rec = newAuthRequest(http.MethodPut, path+"assignments/"+views[0].ID, token, []byte(`{"title":"HW 1 (v2)","url":"https://x/hw1-v2.pdf"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got []batch.MaterialView
		unmarchallObj(t, rec.Body.Bytes(), &got)
		require.Len(t, got, 1)
		assert.Equal(t, "HW 1 (v2)", got[0].Title)
		assert.Equal(t, views[0].CreatedAt, got[0].CreatedAt)
		assert.NotEqual(t, views[0].ID, got[0].ID)
	})

	runHTTPTests(t, app, []httpTest{
		{
			name:     "stale id",
			method:   http.MethodPut,
			path:     path + "notes/note-20240101-000000000000",
			body:     []byte(`{"title":"x"}`),
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "note not found: note-20240101-000000000000"}),
		},
		{
			name:     "blank title",
			method:   http.MethodPost,
			path:     path + "notes",
			body:     []byte(`{"title":"  ","url":"https://x/b.pdf"}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"title": "title cannot be empty"}),
		},
		{
			name:     "unknown kind",
			method:   http.MethodGet,
			path:     path + "videos",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"kind": "must be one of lectures, notes or assignments"}),
		},
		{
			name:     "unknown batch",
			method:   http.MethodGet,
			path:     "/v1/batches/nope/materials/notes",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "batch not found: nope"}),
		},
	})
}
