package echoapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

func TestJWTAuth_middleware(t *testing.T) {
	auth := newJWTAuth(core.NewTestConfig())
	ad := admin.Admin{ID: "a1", Name: "Jane", Email: "jane@test.com", SuperAdmin: true}

	sign := func(t *testing.T, method jwt.SigningMethod, mutate func(c *Claims)) string {
		t.Helper()
		claims := auth.claims(ad)
		if mutate != nil {
			mutate(claims)
		}
		tok, err := jwt.NewWithClaims(method, claims).SignedString(auth.signingKey)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name    string
		header  string
		wantErr *echo.HTTPError
	}{
		{name: "valid", header: "Bearer " + sign(t, jwt.SigningMethodHS256, nil)},
		{name: "missing", wantErr: errMissingToken},
		{name: "not a token", header: "Bearer nope", wantErr: errInvalidToken},
		{
			name:    "other audience",
			header:  "Bearer " + sign(t, jwt.SigningMethodHS256, func(c *Claims) { c.Audience = jwt.ClaimStrings{"mobile"} }),
			wantErr: errInvalidToken,
		},
		{
			name:    "no audience",
			header:  "Bearer " + sign(t, jwt.SigningMethodHS256, func(c *Claims) { c.Audience = nil }),
			wantErr: errInvalidToken,
		},
		{
			name:    "other issuer",
			header:  "Bearer " + sign(t, jwt.SigningMethodHS256, func(c *Claims) { c.Issuer = "someone-else" }),
			wantErr: errInvalidToken,
		},
		{
			name:    "other signing method",
			header:  "Bearer " + sign(t, jwt.SigningMethodHS512, nil),
			wantErr: errInvalidToken,
		},
		{
			name: "expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, func(c *Claims) {
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			}),
			wantErr: errInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			var user core.CurrentUser
			err := auth.middleware()(func(c echo.Context) error {
				user = contextUser(c)
				return nil
			})(ctx)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, ad.CurrentUser(), user)
				return
			}
			var he *echo.HTTPError
			require.True(t, errors.As(err, &he), err)
			assert.Equal(t, tt.wantErr.Code, he.Code)
			assert.Equal(t, tt.wantErr.Message, he.Message)
		})
	}
}
