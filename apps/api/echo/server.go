package echoapi

import (
	"context"
	"net/http"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/core/batch"
	"github.com/paatthya/console/core/notice"
)

type (
	Deps struct {
		Conf       *core.Config
		Logger     core.Logger
		Translator ut.Translator
		AdminSvc   *admin.Service
		BatchSvc   *batch.Service
		NoticeSvc  *notice.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		deps     *Deps
		app      *echo.Echo
		auth     *jwtAuth
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

// NewServer returns the API server. shutdown is signaled when a handler hits a core shutdown error.
func NewServer(shutdown chan os.Signal, deps *Deps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		auth:     newJWTAuth(deps.Conf),
		shutdown: shutdown,
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{conf.FrontendBaseURL},
	}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	jwt := s.auth.middleware()

	registerAdminAPI(v1, jwt, s.auth, s.deps.AdminSvc)
	registerBatchAPI(v1, jwt, s.deps.BatchSvc)
	registerNoticeAPI(v1, jwt, s.deps.NoticeSvc)
}

func (s *server) signalShutdown() {
	if s.shutdown == nil {
		return
	}
	select {
	case s.shutdown <- os.Interrupt:
	default: // already shutting down
	}
}

func (s *server) Start() error {
	return s.app.Start(s.deps.Conf.Server.Address())
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.deps.Conf.AppName+" API!")
}
