package main

import (
	"context"
	"fmt"

	"github.com/paatthya/console/core/admin"
)

func (cli *commandLine) addAdmin(ctx context.Context, name, email, pwd string, super bool) error {
	a, err := cli.adminSvc.Create(ctx, admin.NewAdmin{Name: name, Email: email, Password: pwd, SuperAdmin: super}, cliUser)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "admin %s created (id %s)\n", a.Email, a.ID)
	return nil
}
