package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core/admin"
)

type adminApi struct {
	svc  *admin.Service
	auth *jwtAuth
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, auth *jwtAuth, svc *admin.Service) {
	api := adminApi{svc: svc, auth: auth}

	ag := g.Group("/admins")

	// un-authed endpoints
	ag.POST("/login", api.login)
	ag.POST("/login/firebase", api.loginWithIDToken)

	// authed endpoints
	jg := ag.Group("", jwt)
	jg.POST("/token-refresh", api.refreshToken)
	jg.GET("", api.query)
	jg.POST("", api.create)
}

type (
	LoginResponse struct {
		Token string      `json:"token"`
		Admin admin.Admin `json:"admin"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}
)

func (api *adminApi) loginResponse(ctx echo.Context, ad admin.Admin) error {
	token, err := api.auth.token(api.auth.claims(ad))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Admin: ad})
}

func (api *adminApi) login(ctx echo.Context) error {
	var data admin.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	ad, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	return api.loginResponse(ctx, ad)
}

func (api *adminApi) loginWithIDToken(ctx echo.Context) error {
	var data admin.IDTokenCredentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to IDTokenCredentials")
	}
	ad, err := api.svc.AuthenticateIDToken(ctx.Request().Context(), data.IDToken)
	if err != nil {
		return errors.Wrap(err, "authenticating with id token")
	}
	return api.loginResponse(ctx, ad)
}

func (api *adminApi) refreshToken(ctx echo.Context) error {
	token, err := api.auth.refresh(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *adminApi) query(ctx echo.Context) error {
	admins, err := api.svc.QueryAll(ctx.Request().Context(), contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "querying admins")
	}
	if admins == nil {
		admins = []admin.Admin{}
	}
	return ctx.JSON(http.StatusOK, admins)
}

func (api *adminApi) create(ctx echo.Context) error {
	var data admin.NewAdmin
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAdmin")
	}
	ad, err := api.svc.Create(ctx.Request().Context(), data, contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "creating admin")
	}
	return ctx.JSON(http.StatusCreated, ad)
}
