package echoapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

const (
	contextTokenKey = "adminToken"
	tokenAudience   = "console"
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	SuperAdmin   bool   `json:"superAdmin,omitempty"`
}

func (c Claims) CurrentUser() core.CurrentUser {
	return core.CurrentUser{ID: c.Subject, Name: c.Name, Email: c.Email, SuperAdmin: c.SuperAdmin}
}

type jwtAuth struct {
	signingKey        []byte
	issuer            string
	expiration        time.Duration
	refreshExpiration time.Duration
	nowFunc           func() time.Time
}

func newJWTAuth(conf *core.Config) *jwtAuth {
	return &jwtAuth{
		signingKey:        []byte(conf.SecretKey),
		issuer:            conf.AppName,
		expiration:        conf.Server.JWTExpirationDelta,
		refreshExpiration: conf.Server.JWTRefreshExpirationDelta,
		nowFunc:           time.Now,
	}
}

func (a *jwtAuth) middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:     contextTokenKey,
		ParseTokenFunc: a.parse,
		ErrorHandler: func(ctx echo.Context, err error) error {
			if ctx.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return errMissingToken.WithInternal(err)
			}
			return errInvalidToken.WithInternal(err)
		},
	})
}

// parse accepts HS256 tokens issued by this app for the console audience.
func (a *jwtAuth) parse(_ echo.Context, auth string) (interface{}, error) {
	token, err := jwt.ParseWithClaims(
		auth,
		new(Claims),
		func(*jwt.Token) (interface{}, error) { return a.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(tokenAudience),
		jwt.WithIssuer(a.issuer),
		jwt.WithTimeFunc(a.nowFunc),
	)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (a *jwtAuth) claims(ad admin.Admin, origIat ...int64) *Claims {
	now := a.nowFunc()

	oriat := now.Unix()
	if len(origIat) > 0 {
		oriat = origIat[0]
	}

	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   ad.ID,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OrigIssuedAt: oriat,
		Name:         ad.Name,
		Email:        ad.Email,
		SuperAdmin:   ad.SuperAdmin,
	}
}

// token generates a signed JWT token string representing the Claims.
func (a *jwtAuth) token(claims *Claims) (string, error) {
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// NewToken returns a signed token for ad, valid for the configured expiration delta.
func NewToken(conf *core.Config, ad admin.Admin) (string, error) {
	a := newJWTAuth(conf)
	return a.token(a.claims(ad))
}

func getContextClaims(ctx echo.Context) (*Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims, nil
		}
	}
	return nil, errUnauthorized
}

// contextUser returns the admin authenticated on ctx, core.Anonymous when there is none.
func contextUser(ctx echo.Context) core.CurrentUser {
	if claims, err := getContextClaims(ctx); err == nil {
		return claims.CurrentUser()
	}
	return core.Anonymous
}

// refresh issues a new token for a still existing admin as long as the original
// sign in is within the refresh window.
func (a *jwtAuth) refresh(ctx echo.Context, svc *admin.Service) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", err
	}

	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(a.refreshExpiration)
	if a.nowFunc().After(expTime) {
		return "", errRefreshExpired
	}

	ad, err := svc.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if core.IsNotFound(err) {
			return "", errUnauthorized
		}
		return "", errors.Wrap(err, "getting context admin")
	}
	return a.token(a.claims(ad, claims.OrigIssuedAt))
}
