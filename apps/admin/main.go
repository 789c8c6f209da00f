package main

import (
	"errors"
	"fmt"
	"os"

	ut "github.com/go-playground/universal-translator"

	dig_container "github.com/paatthya/console/apps/api/di/dig"
	"github.com/paatthya/console/assets"
	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

func main() {
	c := dig_container.New()

	var translator ut.Translator
	err := c.Invoke(func(
		conf *core.Config,
		logger core.Logger,
		trans ut.Translator,
		storage *dig_container.Storage,
		adminSvc *admin.Service,
	) error {
		defer func() { _ = storage.Close() }()
		translator = trans

		core.ParseEmailTemplates(assets.FS, assets.EmailTemplatesDir, false, logger)

		cli := commandLine{
			db:       storage.DB,
			adminSvc: adminSvc,
			out:      os.Stdout,
		}
		return cli.run(os.Args)
	})
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", describe(err, translator))
		}
		os.Exit(1)
	}
}

// describe lists the field errors of validation failures.
func describe(err error, translator ut.Translator) string {
	if translator != nil {
		err = core.TranslateErrors(err, translator)
	}
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Fields) == 0 {
		return err.Error()
	}
	msg := "invalid input"
	for _, fld := range vErr.Fields {
		msg += fmt.Sprintf("\n  %s: %s", fld.Field, fld.Error)
	}
	return msg
}
