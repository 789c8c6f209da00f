package echoapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/tests"
)

func TestAppHTTPErrorHandler(t *testing.T) {
	conf := core.NewTestConfig()
	_, translator := testutil.NewValidator()

	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantBody     string
		wantShutdown bool
	}{
		{
			name:     "store error",
			err:      pkgerrors.Wrap(core.NewStoreError("writing notes", errors.New("unavailable")), "adding note"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"storage is unavailable, please retry"}`,
		},
		{
			name:     "store error wrapping not found",
			err:      core.NewStoreError("reading batch", core.NewNotFoundError("batch", "b1")),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"storage is unavailable, please retry"}`,
		},
		{
			name:     "not found",
			err:      pkgerrors.Wrap(core.NewNotFoundError("note", "n1"), "deleting note"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"note not found: n1"}`,
		},
		{
			name:     "validation without fields",
			err:      core.NewValidationError(errors.New("nope")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"nope"}`,
		},
		{
			name:     "forbidden",
			err:      pkgerrors.Wrap(admin.ErrForbidden, "creating admin"),
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"only super admins can manage admins"}`,
		},
		{
			name:     "http error",
			err:      errRefreshExpired,
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"refresh has expired"}`,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
		{
			name:         "shutdown",
			err:          pkgerrors.Wrap(core.NewShutdownError("integrity issue"), "handling"),
			wantCode:     http.StatusInternalServerError,
			wantBody:     `{"error":"Internal Server Error"}`,
			wantShutdown: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var shutdown bool
			e := echo.New()
			handler := newAppHTTPErrorHandler(testutil.NewLogger(conf), translator, func() { shutdown = true })

			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			handler(tt.err, ctx)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantShutdown, shutdown)
		})
	}
}
