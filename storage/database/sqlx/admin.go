package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

type adminRow struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	SuperAdmin   bool       `db:"super_admin"`
	CreatedAt    time.Time  `db:"created_at"`
	PasswordHash null.Bytes `db:"password_hash"`
	LegacyHash   null.Int64 `db:"legacy_hash"`
}

const adminColumns = `id, name, email, super_admin, created_at, password_hash, legacy_hash`

func (row adminRow) admin() admin.Admin {
	return admin.Admin{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		SuperAdmin:   row.SuperAdmin,
		CreatedAt:    row.CreatedAt.UTC(),
		PasswordHash: row.PasswordHash.Bytes,
		LegacyHash:   row.LegacyHash.Ptr(),
	}
}

type adminRepository struct {
	db *sqlx.DB
}

var _ admin.Repository = (*adminRepository)(nil)

func NewAdminRepository(db *sqlx.DB) admin.Repository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	a.ID = uuid.NewString()
	a.Email = strings.ToLower(a.Email)
	row := adminRow{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		SuperAdmin:   a.SuperAdmin,
		CreatedAt:    a.CreatedAt,
		PasswordHash: null.NewBytes(a.PasswordHash, len(a.PasswordHash) > 0),
		LegacyHash:   null.Int64FromPtr(a.LegacyHash),
	}
	_, err := repo.db.NamedExecContext(ctx, `INSERT INTO admins (`+adminColumns+`)
		VALUES (:id, :name, :email, :super_admin, :created_at, :password_hash, :legacy_hash)`, row)
	if isUniqueViolation(err) {
		return admin.Admin{}, admin.ErrEmailExists
	}
	if err != nil {
		return admin.Admin{}, core.NewStoreError("creating admin", err)
	}
	return a, nil
}

func (repo *adminRepository) QueryAllAdmins(ctx context.Context) ([]admin.Admin, error) {
	rows := make([]adminRow, 0)
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+adminColumns+` FROM admins ORDER BY created_at`); err != nil {
		return nil, core.NewStoreError("querying admins", err)
	}
	admins := make([]admin.Admin, len(rows))
	for i, row := range rows {
		admins[i] = row.admin()
	}
	return admins, nil
}

func (repo *adminRepository) getBy(ctx context.Context, col, val string) (admin.Admin, error) {
	var row adminRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+adminColumns+` FROM admins WHERE `+col+` = $1`, val)
	if err == sql.ErrNoRows {
		return admin.Admin{}, core.NewNotFoundError("admin", val)
	}
	if err != nil {
		return admin.Admin{}, core.NewStoreError("reading admin", err)
	}
	return row.admin(), nil
}

func (repo *adminRepository) GetAdminByID(ctx context.Context, id string) (admin.Admin, error) {
	return repo.getBy(ctx, "id", id)
}

func (repo *adminRepository) GetAdminByEmail(ctx context.Context, email string) (admin.Admin, error) {
	return repo.getBy(ctx, "email", strings.ToLower(email))
}

func (repo *adminRepository) UpdateAdminPassword(ctx context.Context, a admin.Admin) error {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = $1, legacy_hash = NULL WHERE id = $2`, a.PasswordHash, a.ID)
	if err != nil {
		return core.NewStoreError("updating admin password", err)
	}
	return checkAffected(res, "admin", a.ID)
}
