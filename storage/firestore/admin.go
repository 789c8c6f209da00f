package firestoredb

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
)

const (
	fieldPasswordHash = "passwordHash"
	fieldLegacyHash   = "password"
)

type adminRepository struct {
	client *firestore.Client
}

var _ admin.Repository = (*adminRepository)(nil)

func NewAdminRepository(client *firestore.Client) admin.Repository {
	return &adminRepository{client: client}
}

func (repo *adminRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(adminsCollection)
}

func decodeAdmin(id string, data map[string]interface{}) admin.Admin {
	a := admin.Admin{
		ID:         id,
		Name:       str(data, "name"),
		Email:      core.CleanString(str(data, "email"), true /* lower */),
		SuperAdmin: boolean(data, "superAdmin"),
		CreatedAt:  timestamp(data, "createdAt"),
	}
	if hash := str(data, fieldPasswordHash); hash != "" {
		a.PasswordHash = []byte(hash)
	} else if legacy, ok := integer(data, fieldLegacyHash); ok {
		a.LegacyHash = &legacy
	}
	return a
}

func encodeAdmin(a admin.Admin) map[string]interface{} {
	data := map[string]interface{}{
		"name":       a.Name,
		"email":      a.Email,
		"superAdmin": a.SuperAdmin,
		"createdAt":  a.CreatedAt,
	}
	if len(a.PasswordHash) > 0 {
		data[fieldPasswordHash] = string(a.PasswordHash)
	} else if a.LegacyHash != nil {
		data[fieldLegacyHash] = *a.LegacyHash
	}
	return data
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	ref := repo.col().NewDoc()
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(repo.col().Where("email", "==", a.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return admin.ErrEmailExists
		}
		return tx.Create(ref, encodeAdmin(a))
	})
	if errors.Is(err, admin.ErrEmailExists) {
		return admin.Admin{}, err
	}
	if err != nil {
		return admin.Admin{}, storeError("creating admin", "admin", "", err)
	}
	a.ID = ref.ID
	return a, nil
}

func (repo *adminRepository) QueryAllAdmins(ctx context.Context) ([]admin.Admin, error) {
	iter := repo.col().Documents(ctx)
	defer iter.Stop()

	admins := make([]admin.Admin, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError("querying admins", "admins", "", err)
		}
		admins = append(admins, decodeAdmin(snap.Ref.ID, snap.Data()))
	}
	return admins, nil
}

func (repo *adminRepository) GetAdminByID(ctx context.Context, id string) (admin.Admin, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		return admin.Admin{}, storeError("reading admin", "admin", id, err)
	}
	return decodeAdmin(snap.Ref.ID, snap.Data()), nil
}

func (repo *adminRepository) GetAdminByEmail(ctx context.Context, email string) (admin.Admin, error) {
	snaps, err := repo.col().Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return admin.Admin{}, storeError("reading admin", "admin", email, err)
	}
	if len(snaps) == 0 {
		return admin.Admin{}, core.NewNotFoundError("admin", email)
	}
	return decodeAdmin(snaps[0].Ref.ID, snaps[0].Data()), nil
}

func (repo *adminRepository) UpdateAdminPassword(ctx context.Context, a admin.Admin) error {
	_, err := repo.col().Doc(a.ID).Update(ctx, []firestore.Update{
		{Path: fieldPasswordHash, Value: string(a.PasswordHash)},
		{Path: fieldLegacyHash, Value: firestore.Delete},
	})
	return storeError("updating admin password", "admin", a.ID, err)
}
