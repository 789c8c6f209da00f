package dig_container

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/zap"

	echoapi "github.com/paatthya/console/apps/api/echo"
	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/core/batch"
	"github.com/paatthya/console/core/notice"
	emailsvc "github.com/paatthya/console/services/email"
	logsvc "github.com/paatthya/console/services/logger"
	"github.com/paatthya/console/storage/database"
	sqlxrepos "github.com/paatthya/console/storage/database/sqlx"
	firestoredb "github.com/paatthya/console/storage/firestore"
	inmemdb "github.com/paatthya/console/storage/inmem"
)

type StoreLoggerParam struct {
	dig.In
	Logger core.Logger `name:"storeLogger"`
}

// Storage groups the repositories of the configured backend.
type Storage struct {
	Batches  batch.Repository
	Admins   admin.Repository
	Notices  notice.Repository
	Verifier admin.TokenVerifier // nil unless the backend is firestore
	DB       *sql.DB             // nil unless the backend is postgres

	closeFunc func() error
}

func (s *Storage) Close() error {
	if s.closeFunc == nil {
		return nil
	}
	return s.closeFunc()
}

func newLogger(zl *zap.Logger, conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(zl.Named("api"), conf)
}

func newStoreLogger(zl *zap.Logger, conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(zl.Named("store"), conf)
}

func newStorage(conf *core.Config, loggerParam StoreLoggerParam) *Storage {
	logger := loggerParam.Logger
	ctx := context.Background()

	switch conf.Storage.Backend {
	case core.StorageFirestore:
		app, err := firestoredb.NewApp(ctx, conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up firebase: %v", err), err)
		}
		client, err := firestoredb.Open(ctx, app)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening firestore: %v", err), err)
		}
		st := &Storage{
			Batches:   firestoredb.NewBatchRepository(client),
			Admins:    firestoredb.NewAdminRepository(client),
			Notices:   firestoredb.NewNoticeRepository(client),
			closeFunc: client.Close,
		}
		if verifier, err := firestoredb.NewTokenVerifier(ctx, app); err != nil {
			logger.Warn(fmt.Sprintf("firebase sign-in disabled: %v", err), err)
		} else {
			st.Verifier = verifier
		}
		return st

	case core.StoragePostgres:
		setUp := func() (*Storage, error) {
			if err := database.CreateIfNotExist(conf); err != nil {
				return nil, err
			}
			db, err := database.Open(conf)
			if err != nil {
				return nil, err
			}
			if err = database.Migrate(ctx, db.DB); err != nil {
				return nil, err
			}
			return &Storage{
				Batches:   sqlxrepos.NewBatchRepository(db),
				Admins:    sqlxrepos.NewAdminRepository(db),
				Notices:   sqlxrepos.NewNoticeRepository(db),
				DB:        db.DB,
				closeFunc: db.Close,
			}, nil
		}
		st, err := setUp()
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		return st
	}

	logger.Warn("using the in-memory storage, data is lost on restart")
	db := inmemdb.Open()
	return &Storage{
		Batches: inmemdb.NewBatchRepository(db),
		Admins:  inmemdb.NewAdminRepository(db),
		Notices: inmemdb.NewNoticeRepository(db),
	}
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := core.NewValidator(translator)
	admin.RegisterValidators(validate, translator)
	return validate
}

func newAdminService(st *Storage, validate *validator.Validate, mailSvc core.EmailService, logger core.Logger) *admin.Service {
	return admin.NewService(st.Admins, validate, mailSvc, logger, st.Verifier)
}

func newBatchService(st *Storage, validate *validator.Validate) *batch.Service {
	return batch.NewService(st.Batches, validate)
}

func newNoticeService(st *Storage, validate *validator.Validate, mailSvc core.EmailService, adminSvc *admin.Service, logger core.Logger) *notice.Service {
	return notice.NewService(st.Notices, validate, mailSvc, adminSvc.MailingList, logger)
}

func newShutdownChannel() chan os.Signal {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	return shutdown
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	translator ut.Translator,
	adminSvc *admin.Service,
	batchSvc *batch.Service,
	noticeSvc *notice.Service,
	shutdown chan os.Signal,
) echoapi.Server {
	return echoapi.NewServer(shutdown, &echoapi.Deps{
		Conf:       conf,
		Logger:     logger,
		Translator: translator,
		AdminSvc:   adminSvc,
		BatchSvc:   batchSvc,
		NoticeSvc:  noticeSvc,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(logsvc.NewZapLogger))
	must(c.Provide(newLogger))
	must(c.Provide(newStoreLogger, dig.Name("storeLogger")))
	must(c.Provide(newStorage))
	must(c.Provide(emailsvc.NewService))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newAdminService))
	must(c.Provide(newBatchService))
	must(c.Provide(newNoticeService))
	must(c.Provide(newShutdownChannel))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
