// Package sqlxrepos implements the repositories on PostgreSQL with sqlx.
package sqlxrepos

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/paatthya/console/core"
)

var errUnknownField = errors.New("unknown material field")

// checkAffected turns an update or delete that matched no row into a NotFoundError.
func checkAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return core.NewStoreError("counting affected rows", err)
	}
	if n == 0 {
		return core.NewNotFoundError(what, id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
