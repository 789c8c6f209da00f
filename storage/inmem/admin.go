package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

type adminRepository struct {
	db *adminTable
}

var _ admin.Repository = (*adminRepository)(nil)

func NewAdminRepository(db *DB) admin.Repository {
	return &adminRepository{db: db.admin}
}

func (repo *adminRepository) CreateAdmin(_ context.Context, a admin.Admin) (admin.Admin, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, other := range repo.db.table {
		if other.Email == a.Email {
			return admin.Admin{}, admin.ErrEmailExists
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	stored := a
	repo.db.table[a.ID] = &stored
	return a, nil
}

func (repo *adminRepository) QueryAllAdmins(_ context.Context) ([]admin.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	admins := make([]admin.Admin, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		admins = append(admins, *a)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].CreatedAt.Before(admins[j].CreatedAt) })
	return admins, nil
}

func (repo *adminRepository) GetAdminByID(_ context.Context, id string) (admin.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return admin.Admin{}, core.NewNotFoundError("admin", id)
}

func (repo *adminRepository) GetAdminByEmail(_ context.Context, email string) (admin.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, a := range repo.db.table {
		if a.Email == email {
			return *a, nil
		}
	}
	return admin.Admin{}, core.NewNotFoundError("admin", email)
}

func (repo *adminRepository) UpdateAdminPassword(_ context.Context, a admin.Admin) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	stored, ok := repo.db.table[a.ID]
	if !ok {
		return core.NewNotFoundError("admin", a.ID)
	}
	stored.PasswordHash = a.PasswordHash
	stored.LegacyHash = nil
	return nil
}
