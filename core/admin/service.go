package admin

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"

	"github.com/paatthya/console/core"
)

var (
	// errors
	ErrEmailExists          = errors.New("an admin with this email already exists")
	ErrForbidden            = errors.New("only super admins can manage admins")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrIDTokenNotConfigured = errors.New("identity token sign-in is not configured")
)

type (
	Repository interface {
		// CreateAdmin fails with ErrEmailExists when the email is taken.
		CreateAdmin(ctx context.Context, a Admin) (Admin, error)
		QueryAllAdmins(ctx context.Context) ([]Admin, error)
		GetAdminByID(ctx context.Context, id string) (Admin, error)
		GetAdminByEmail(ctx context.Context, email string) (Admin, error)
		// UpdateAdminPassword persists PasswordHash and clears any legacy hash.
		UpdateAdminPassword(ctx context.Context, a Admin) error
	}

	// TokenVerifier verifies identity provider ID tokens and returns the verified email.
	TokenVerifier interface {
		VerifyIDToken(ctx context.Context, idToken string) (email string, err error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		mailSvc  core.EmailService
		logger   core.Logger
		verifier TokenVerifier
		nowFunc  func() time.Time
	}
)

// NewService returns the admin Service. verifier may be nil, in which case
// AuthenticateIDToken always fails with ErrIDTokenNotConfigured.
func NewService(repo Repository, validate *validator.Validate, mailSvc core.EmailService, logger core.Logger, verifier TokenVerifier) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		mailSvc:  mailSvc,
		logger:   logger,
		verifier: verifier,
		nowFunc:  time.Now,
	}
}

func (svc *Service) Create(ctx context.Context, na NewAdmin, by core.CurrentUser) (Admin, error) {
	if !by.SuperAdmin {
		return Admin{}, ErrForbidden
	}
	if err := na.Validate(svc.validate); err != nil {
		return Admin{}, err
	}

	a := Admin{
		Name:       na.Name,
		Email:      na.Email,
		SuperAdmin: na.SuperAdmin,
		CreatedAt:  svc.nowFunc().UTC(),
	}
	if err := a.SetPassword(na.Password); err != nil {
		return Admin{}, pkgerrors.Wrap(err, "hashing password")
	}

	a, err := svc.repo.CreateAdmin(ctx, a)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return Admin{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return Admin{}, pkgerrors.Wrap(err, "creating admin")
	}

	svc.sendWelcomeMail(a, by)
	return a, nil
}

func (svc *Service) QueryAll(ctx context.Context, by core.CurrentUser) ([]Admin, error) {
	if !by.SuperAdmin {
		return nil, ErrForbidden
	}
	admins, err := svc.repo.QueryAllAdmins(ctx)
	return admins, pkgerrors.Wrap(err, "querying admins")
}

// MailingList returns the addresses of all admins. It serves as the notice recipients.
func (svc *Service) MailingList(ctx context.Context) ([]mail.Address, error) {
	admins, err := svc.repo.QueryAllAdmins(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying admins")
	}
	to := make([]mail.Address, 0, len(admins))
	for _, a := range admins {
		to = append(to, mail.Address{Name: a.Name, Address: a.Email})
	}
	return to, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Admin, error) {
	return svc.repo.GetAdminByID(ctx, id)
}

// Authenticate checks the password of the admin registered with email.
// Admins still on the legacy hash are moved to bcrypt on success.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (Admin, error) {
	a, err := svc.repo.GetAdminByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		if core.IsNotFound(err) {
			return Admin{}, ErrInvalidCredentials
		}
		return Admin{}, pkgerrors.Wrap(err, "getting admin")
	}
	if err := a.CheckPassword(pwd); err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	if a.IsLegacy() {
		if err := a.SetPassword(pwd); err == nil {
			if err := svc.repo.UpdateAdminPassword(ctx, a); err != nil {
				svc.logger.Error(fmt.Sprintf("upgrading legacy password of %s: %v", a.Email, err), err, a.CurrentUser())
			}
		}
	}
	return a, nil
}

// AuthenticateIDToken signs in the admin whose email the identity provider verified.
func (svc *Service) AuthenticateIDToken(ctx context.Context, idToken string) (Admin, error) {
	if svc.verifier == nil {
		return Admin{}, ErrIDTokenNotConfigured
	}
	email, err := svc.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		svc.logger.Info("rejected id token", err)
		return Admin{}, ErrInvalidCredentials
	}
	a, err := svc.repo.GetAdminByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		if core.IsNotFound(err) {
			return Admin{}, ErrInvalidCredentials
		}
		return Admin{}, pkgerrors.Wrap(err, "getting admin")
	}
	return a, nil
}

// SetPassword replaces the password of the admin registered with sp.Email.
func (svc *Service) SetPassword(ctx context.Context, sp SetPassword) error {
	sp.Email = core.CleanString(sp.Email, true /* lower */)
	a, err := svc.repo.GetAdminByEmail(ctx, sp.Email)
	if err != nil {
		return pkgerrors.Wrap(err, "getting admin")
	}
	sp.Name = a.Name
	if err := sp.Validate(svc.validate); err != nil {
		return err
	}
	if err := a.SetPassword(sp.Password); err != nil {
		return pkgerrors.Wrap(err, "hashing password")
	}
	return pkgerrors.Wrap(svc.repo.UpdateAdminPassword(ctx, a), "updating password")
}

func (svc *Service) sendWelcomeMail(a Admin, by core.CurrentUser) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: a.Name, Address: a.Email}},
		Subject:      "Your admin account",
		TemplateName: "admin_welcome",
		TemplateData: map[string]interface{}{
			"Name":       a.Name,
			"Email":      a.Email,
			"SuperAdmin": a.SuperAdmin,
			"CreatedBy":  by.DisplayName(),
		},
	})
}
