package main

import (
	"context"
	"fmt"

	"github.com/paatthya/console/core/admin"
)

func (cli *commandLine) resetPassword(ctx context.Context, email, pwd string) error {
	if err := cli.adminSvc.SetPassword(ctx, admin.SetPassword{Email: email, Password: pwd}); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "password of %s updated\n", email)
	return nil
}
