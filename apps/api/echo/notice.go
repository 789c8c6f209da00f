package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core/notice"
)

type noticeApi struct {
	svc *notice.Service
}

func registerNoticeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *notice.Service) {
	api := noticeApi{svc: svc}

	ng := g.Group("/notices", jwt)
	ng.GET("", api.query)
	ng.POST("", api.create)

	mg := g.Group("/messages", jwt)
	mg.GET("", api.messages)
	mg.POST("", api.sendMessage)
}

func (api *noticeApi) query(ctx echo.Context) error {
	notices, err := api.svc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying notices")
	}
	if notices == nil {
		notices = []notice.Notice{}
	}
	return ctx.JSON(http.StatusOK, notices)
}

func (api *noticeApi) create(ctx echo.Context) error {
	var data notice.NewNotice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotice")
	}
	n, err := api.svc.Create(ctx.Request().Context(), data, contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "creating notice")
	}
	return ctx.JSON(http.StatusCreated, n)
}

// MessageResponse flags the messages sent by the requesting admin.
type MessageResponse struct {
	notice.Message
	Mine bool `json:"mine"`
}

func (api *noticeApi) messages(ctx echo.Context) error {
	msgs, err := api.svc.Messages(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying messages")
	}
	usr := contextUser(ctx)
	res := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		res[i] = MessageResponse{Message: m, Mine: m.IsFrom(usr)}
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *noticeApi) sendMessage(ctx echo.Context) error {
	var data notice.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	m, err := api.svc.SendMessage(ctx.Request().Context(), data, contextUser(ctx))
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	return ctx.JSON(http.StatusCreated, MessageResponse{Message: m, Mine: true})
}
