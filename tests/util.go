package testutil

import (
	"context"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/paatthya/console/assets"
	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	"github.com/paatthya/console/core/batch"
	logsvc "github.com/paatthya/console/services/logger"
)

// NewValidator returns a validator with the global and admin validators registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	admin.RegisterValidators(validate, translator)
	return validate, translator
}

// NewLogger returns a logger that reports nowhere.
func NewLogger(conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(zap.NewNop(), conf)
}

// LoadEmailTemplates parses the embedded email templates in strict mode.
func LoadEmailTemplates(logger core.Logger) {
	core.ParseEmailTemplates(assets.FS, assets.EmailTemplatesDir, true, logger)
}

func CreateAdmin(t *testing.T, repo admin.Repository, name, email, pwd string, superAdmin bool, createdAt ...time.Time) admin.Admin {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	a := admin.Admin{Name: name, Email: email, SuperAdmin: superAdmin, CreatedAt: tstamp}
	if pwd != "" {
		if err := a.SetPassword(pwd); err != nil {
			t.Fatalf("CreateAdmin() failed: %v", err)
		}
	}
	a, err := repo.CreateAdmin(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateAdmin() failed: %v", err)
	}
	return a
}

// CreateLegacyAdmin stores an admin the way the old console did, with the 32-bit password hash only.
func CreateLegacyAdmin(t *testing.T, repo admin.Repository, name, email, pwd string, superAdmin bool) admin.Admin {
	t.Helper()
	hash := admin.LegacyHash(pwd)
	a, err := repo.CreateAdmin(context.Background(), admin.Admin{
		Name:       name,
		Email:      email,
		SuperAdmin: superAdmin,
		CreatedAt:  time.Now().UTC(),
		LegacyHash: &hash,
	})
	if err != nil {
		t.Fatalf("CreateLegacyAdmin() failed: %v", err)
	}
	return a
}

func CreateBatch(t *testing.T, repo batch.Repository, b batch.Batch) batch.Batch {
	t.Helper()
	if b.CreatedAt == "" {
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := repo.CreateBatch(context.Background(), b.Normalize())
	if err != nil {
		t.Fatalf("CreateBatch() failed: %v", err)
	}
	return b
}
