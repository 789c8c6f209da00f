package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp       = errors.New("help provided")
	errNoDatabase = errors.New("migrations need the postgres storage backend")

	// cliUser is the author of the changes made from the command line.
	cliUser = core.CurrentUser{ID: "cli", Name: "Console CLI", SuperAdmin: true}
)

type commandLine struct {
	db       *sql.DB
	adminSvc *admin.Service
	out      io.Writer
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "admin",
		Short:              "Console administration commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return errHelp
		},
	}
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	migrate := &cobra.Command{
		Use:   "migrate COMMAND [ARGS...]",
		Short: "Run a goose command (up, down, status, ...) on the postgres database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errHelp
			}
			return cli.migrate(cmd.Context(), args)
		},
	}

	var name, email string
	var super bool
	addAdmin := &cobra.Command{
		Use:   "addadmin",
		Short: "Create an admin, the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" || email == "" {
				_ = cmd.Usage()
				return errHelp
			}
			pwd, err := cli.readPassword()
			if err != nil {
				return err
			}
			if pwd == "" {
				_ = cmd.Usage()
				return errHelp
			}
			return cli.addAdmin(cmd.Context(), name, email, pwd, super)
		},
	}
	addAdmin.Flags().StringVar(&name, "name", "", "The admin's name")
	addAdmin.Flags().StringVar(&email, "email", "", "The admin's email, used to sign in")
	addAdmin.Flags().BoolVar(&super, "super", false, "Allow the admin to manage other admins")

	var resetEmail string
	resetPassword := &cobra.Command{
		Use:   "resetpassword",
		Short: "Reset an admin's password, the new password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if resetEmail == "" {
				_ = cmd.Usage()
				return errHelp
			}
			pwd, err := cli.readPassword()
			if err != nil {
				return err
			}
			if pwd == "" {
				_ = cmd.Usage()
				return errHelp
			}
			return cli.resetPassword(cmd.Context(), resetEmail, pwd)
		},
	}
	resetPassword.Flags().StringVar(&resetEmail, "email", "", "The admin's email")

	root.AddCommand(migrate, addAdmin, resetPassword)
	return root
}

func (cli *commandLine) readPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.out)
	return string(pwd), err
}

func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args[1:])
	return root.ExecuteContext(context.Background())
}
