package admin

import (
	"time"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/paatthya/console/core"
)

// Admin is a console operator. Only super admins may manage other admins.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SuperAdmin   bool      `json:"superAdmin"`
	CreatedAt    time.Time `json:"createdAt"` // UTC
	PasswordHash []byte    `json:"-"`

	// LegacyHash is the 32-bit string hash stored in the "password" field of
	// admins created by the old console. It is dropped once the admin signs in.
	LegacyHash *int64 `json:"-"`
}

func (a *Admin) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.LegacyHash = nil
	return nil
}

func (a *Admin) CheckPassword(pwd string) error {
	if len(a.PasswordHash) > 0 {
		return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
	}
	if a.LegacyHash != nil && pwd != "" && *a.LegacyHash == LegacyHash(pwd) {
		return nil
	}
	return ErrInvalidCredentials
}

// IsLegacy reports whether the admin still authenticates with the legacy hash.
func (a *Admin) IsLegacy() bool {
	return len(a.PasswordHash) == 0 && a.LegacyHash != nil
}

// CurrentUser returns the identity threaded through the services on behalf of a.
func (a Admin) CurrentUser() core.CurrentUser {
	return core.CurrentUser{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		SuperAdmin: a.SuperAdmin,
	}
}

// LegacyHash computes the "(h << 5) - h + c" string hash over UTF-16 code units,
// truncated to a signed 32-bit integer.
func LegacyHash(pwd string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(pwd)) {
		h = (h << 5) - h + int32(c)
	}
	return int64(h)
}

// NewAdmin contains information needed to create a new Admin.
type NewAdmin struct {
	Name       string `json:"name" validate:"notblank"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	SuperAdmin bool   `json:"superAdmin"`
}

func (na *NewAdmin) Validate(validate *validator.Validate) error {
	na.Name = core.CleanString(na.Name)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return validate.Struct(na)
}

// SetPassword is used to replace the password of an existing admin.
type SetPassword struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"-"` // for the similarity check
}

func (sp *SetPassword) Validate(validate *validator.Validate) error {
	sp.Email = core.CleanString(sp.Email, true /* lower */)
	return validate.Struct(sp)
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type IDTokenCredentials struct {
	IDToken string `json:"idToken" validate:"required"`
}
