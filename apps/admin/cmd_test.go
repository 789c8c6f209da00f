package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/services/email"
	"github.com/paatthya/console/storage/inmem"
	"github.com/paatthya/console/tests"
)

var adminRepo admin.Repository

func setup(t *testing.T, db *sql.DB) *commandLine {
	conf := core.NewTestConfig()
	logger := testutil.NewLogger(conf)
	testutil.LoadEmailTemplates(logger)
	emailsvc.ResetSentMessages()

	adminRepo = inmemdb.NewAdminRepository(inmemdb.Open())
	validate, _ := testutil.NewValidator()

	// start CLI
	return &commandLine{
		db:       db,
		adminSvc: admin.NewService(adminRepo, validate, emailsvc.NewConsoleServiceMock(conf), logger, nil),
		out:      new(bytes.Buffer),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantErrFn  func(error) bool
	extra      interface{}
}

func checkErr(t *testing.T, tt cliTest, err error) {
	t.Helper()
	switch {
	case tt.wantErr != nil:
		assert.True(t, errors.Is(err, tt.wantErr), "cli.run() error = %v, wantErr %v", err, tt.wantErr)
	case tt.wantErrFn != nil:
		assert.True(t, tt.wantErrFn(err), "cli.run() error = %v", err)
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Equal(t, tt.wantErrStr, err.Error())
		}
	default:
		assert.NoError(t, err)
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t, new(sql.DB))

	gooseRunFunc = func(_ context.Context, db *sql.DB, command string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "create", args: []string{"migrate", "create", "notice_pins", "sql"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	t.Run("without database", func(t *testing.T) {
		cli := setup(t, nil)
		checkErr(t, cliTest{wantErr: errNoDatabase}, cli.run([]string{"admin", "migrate", "up"}))
	})
}

func Test_commandLine_addAdmin(t *testing.T) {
	cli := setup(t, nil)
	testutil.CreateAdmin(t, adminRepo, "Jane", "jane@test.cd", "s3cure-pass", true)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErrStr: `unknown command "lol" for "admin"`},
		{name: "no flags", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "no password", args: []string{"addadmin", "--name", "Mary", "--email", "mary@test.cd"}, wantErr: errHelp},
		{
			name:    "email taken",
			args:    []string{"addadmin", "--name", "Jane D", "--email", "JANE@test.cd"},
			extra:   extra{pwd: "gr8-mentor!"},
			wantErr: admin.ErrEmailExists,
		},
		{
			name:  "super admin",
			args:  []string{"addadmin", "--name", "Mary", "--email", "mary@test.cd", "--super"},
			extra: extra{pwd: "gr8-mentor!"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	mary, err := adminRepo.GetAdminByEmail(context.Background(), "mary@test.cd")
	require.NoError(t, err)
	assert.True(t, mary.SuperAdmin)
	assert.NoError(t, mary.CheckPassword("gr8-mentor!"))

	sent := emailsvc.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Console CLI", sent[0].TemplateData.(map[string]interface{})["CreatedBy"])
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t, nil)
	legacy := testutil.CreateLegacyAdmin(t, adminRepo, "Old", "old@test.cd", "password", false)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"resetpassword", "--email", "lol@test.cd"}, wantErr: errHelp},
		{
			name:      "admin not found",
			args:      []string{"resetpassword", "--email", "lol@test.cd"},
			extra:     extra{pwd: "n3w-passw0rd"},
			wantErrFn: core.IsNotFound,
		},
		{name: "reset", args: []string{"resetpassword", "--email", "OLD@test.cd"}, extra: extra{pwd: "n3w-passw0rd"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	refreshed, err := adminRepo.GetAdminByID(context.Background(), legacy.ID)
	require.NoError(t, err)
	assert.False(t, refreshed.IsLegacy())
	assert.NoError(t, refreshed.CheckPassword("n3w-passw0rd"))
}
