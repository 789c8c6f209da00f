package admin_test

import (
	"context"
	"errors"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/admin"
	emailsvc "github.com/paatthya/console/services/email"
	"github.com/paatthya/console/storage/inmem"
	"github.com/paatthya/console/tests"
)

var (
	superUser = core.CurrentUser{ID: "su", Name: "Root", Email: "root@test.com", SuperAdmin: true}
	plainUser = core.CurrentUser{ID: "pu", Name: "Plain", Email: "plain@test.com"}
)

type fakeVerifier map[string]string // token: email

func (v fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (string, error) {
	if email, ok := v[idToken]; ok {
		return email, nil
	}
	return "", errors.New("invalid token")
}

// setup returns the translator paired with the service validator; custom messages
// only translate through it.
func setup(t *testing.T, verifier admin.TokenVerifier) (*admin.Service, admin.Repository, ut.Translator) {
	t.Helper()
	conf := core.NewTestConfig()
	validate, translator := testutil.NewValidator()
	repo := inmemdb.NewAdminRepository(inmemdb.Open())
	logger := testutil.NewLogger(conf)
	testutil.LoadEmailTemplates(logger)
	emailsvc.ResetSentMessages()
	svc := admin.NewService(repo, validate, emailsvc.NewConsoleServiceMock(conf), logger, verifier)
	return svc, repo, translator
}

func fieldsOf(t *testing.T, translator ut.Translator, err error) map[string]string {
	t.Helper()
	vErr, ok := core.TranslateErrors(err, translator).(*core.ValidationError)
	require.True(t, ok, "not a validation error: %v", err)
	flds := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		flds[f.Field] = f.Error
	}
	return flds
}

func TestLegacyHash(t *testing.T) {
	tests := map[string]int64{
		"":           0,
		"a":          97,
		"ab":         3105,
		"password":   1216985755,
		"Secret#123": 540473855,
		"héllo😀":     291564465,
	}
	for pwd, want := range tests {
		assert.Equal(t, want, admin.LegacyHash(pwd), pwd)
	}
}

func TestAdmin_CheckPassword(t *testing.T) {
	var a admin.Admin
	require.NoError(t, a.SetPassword("Secret#123"))
	assert.NoError(t, a.CheckPassword("Secret#123"))
	assert.Error(t, a.CheckPassword("secret#123"))

	hash := admin.LegacyHash("Secret#123")
	legacy := admin.Admin{LegacyHash: &hash}
	assert.True(t, legacy.IsLegacy())
	assert.NoError(t, legacy.CheckPassword("Secret#123"))
	assert.Equal(t, admin.ErrInvalidCredentials, legacy.CheckPassword("Secret#124"))

	zero := int64(0)
	empty := admin.Admin{LegacyHash: &zero}
	assert.Error(t, empty.CheckPassword(""))

	assert.Error(t, (&admin.Admin{}).CheckPassword("anything"))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		svc, repo, _ := setup(t, nil)
		a, err := svc.Create(ctx, admin.NewAdmin{Name: " Jane Doe ", Email: "Jane@Test.com ", Password: "Secret#123", SuperAdmin: true}, superUser)
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "Jane Doe", a.Name)
		assert.Equal(t, "jane@test.com", a.Email)
		assert.True(t, a.SuperAdmin)
		assert.NoError(t, a.CheckPassword("Secret#123"))

		stored, err := repo.GetAdminByEmail(ctx, "jane@test.com")
		require.NoError(t, err)
		assert.Equal(t, a.ID, stored.ID)

		sent := emailsvc.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "jane@test.com", sent[0].To[0].Address)
		assert.Equal(t, "admin_welcome", sent[0].TemplateName)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc, _, _ := setup(t, nil)
		_, err := svc.Create(ctx, admin.NewAdmin{Name: "Jane", Email: "jane@test.com", Password: "Secret#123"}, plainUser)
		assert.Equal(t, admin.ErrForbidden, err)
		assert.Empty(t, emailsvc.Sent())
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo, translator := setup(t, nil)
		testutil.CreateAdmin(t, repo, "Jane", "jane@test.com", "Secret#123", false)
		_, err := svc.Create(ctx, admin.NewAdmin{Name: "Other", Email: "JANE@test.com", Password: "Secret#123"}, superUser)
		require.True(t, core.IsValidation(err))
		assert.Contains(t, fieldsOf(t, translator, err), "email")
	})

	tests := []struct {
		name  string
		na    admin.NewAdmin
		field string
		text  string
	}{
		{name: "blank name", na: admin.NewAdmin{Name: "  ", Email: "a@test.com", Password: "Secret#123"}, field: "name", text: "this field cannot be blank"},
		{name: "bad email", na: admin.NewAdmin{Name: "A", Email: "nope", Password: "Secret#123"}, field: "email"},
		{name: "no password", na: admin.NewAdmin{Name: "A", Email: "a@test.com"}, field: "password", text: "this field is required"},
		{name: "short password", na: admin.NewAdmin{Name: "A", Email: "a@test.com", Password: "S#1a"}, field: "password", text: "password must contain at least 8 characters"},
		{name: "whitespace", na: admin.NewAdmin{Name: "A", Email: "a@test.com", Password: "Secret #123"}, field: "password", text: "password must not contain whitespace"},
		{name: "numeric", na: admin.NewAdmin{Name: "A", Email: "a@test.com", Password: "12345678"}, field: "password", text: "password cannot be entirely numeric"},
		{name: "similar to name", na: admin.NewAdmin{Name: "Jane Doe", Email: "x@test.com", Password: "janedoe1"}, field: "password", text: "password cannot be similar to the admin name or email"},
		{name: "similar to email", na: admin.NewAdmin{Name: "X", Email: "janedoe@test.com", Password: "Janedoe1"}, field: "password", text: "password cannot be similar to the admin name or email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, translator := setup(t, nil)
			_, err := svc.Create(ctx, tt.na, superUser)
			require.Error(t, err)
			flds := fieldsOf(t, translator, err)
			require.Contains(t, flds, tt.field)
			if tt.text != "" {
				assert.Equal(t, tt.text, flds[tt.field])
			}
		})
	}
}

func TestService_QueryAll(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setup(t, nil)
	testutil.CreateAdmin(t, repo, "A", "a@test.com", "Secret#123", true)
	testutil.CreateLegacyAdmin(t, repo, "B", "b@test.com", "Secret#123", false)

	_, err := svc.QueryAll(ctx, plainUser)
	assert.Equal(t, admin.ErrForbidden, err)

	admins, err := svc.QueryAll(ctx, superUser)
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	to, err := svc.MailingList(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@test.com", "b@test.com"}, []string{to[0].Address, to[1].Address})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := setup(t, nil)
	testutil.CreateAdmin(t, repo, "A", "a@test.com", "Secret#123", true)
	legacy := testutil.CreateLegacyAdmin(t, repo, "B", "b@test.com", "Old#Pass99", false)

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr error
	}{
		{name: "valid", email: " A@test.com", pwd: "Secret#123"},
		{name: "wrong password", email: "a@test.com", pwd: "Secret#124", wantErr: admin.ErrInvalidCredentials},
		{name: "unknown email", email: "x@test.com", pwd: "Secret#123", wantErr: admin.ErrInvalidCredentials},
		{name: "legacy wrong password", email: "b@test.com", pwd: "Old#Pass98", wantErr: admin.ErrInvalidCredentials},
		{name: "legacy", email: "b@test.com", pwd: "Old#Pass99"},
		{name: "legacy upgraded", email: "b@test.com", pwd: "Old#Pass99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.email, tt.pwd)
			assert.Equal(t, tt.wantErr, err)
		})
	}

	upgraded, err := repo.GetAdminByID(ctx, legacy.ID)
	require.NoError(t, err)
	assert.False(t, upgraded.IsLegacy())
	assert.NoError(t, upgraded.CheckPassword("Old#Pass99"))
}

func TestService_AuthenticateIDToken(t *testing.T) {
	ctx := context.Background()

	svc, _, _ := setup(t, nil)
	_, err := svc.AuthenticateIDToken(ctx, "tok")
	assert.Equal(t, admin.ErrIDTokenNotConfigured, err)

	svc, repo, _ := setup(t, fakeVerifier{"good": "A@test.com", "stranger": "x@test.com"})
	a := testutil.CreateAdmin(t, repo, "A", "a@test.com", "Secret#123", false)

	got, err := svc.AuthenticateIDToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = svc.AuthenticateIDToken(ctx, "stranger")
	assert.Equal(t, admin.ErrInvalidCredentials, err)

	_, err = svc.AuthenticateIDToken(ctx, "forged")
	assert.Equal(t, admin.ErrInvalidCredentials, err)
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo, translator := setup(t, nil)
	a := testutil.CreateAdmin(t, repo, "Jane Doe", "jane@test.com", "Secret#123", false)

	err := svc.SetPassword(ctx, admin.SetPassword{Email: "jane@test.com", Password: "janedoe12"})
	assert.Contains(t, fieldsOf(t, translator, err), "password")

	err = svc.SetPassword(ctx, admin.SetPassword{Email: "nobody@test.com", Password: "N3w#Secret"})
	assert.True(t, core.IsNotFound(err))

	require.NoError(t, svc.SetPassword(ctx, admin.SetPassword{Email: "Jane@test.com", Password: "N3w#Secret"}))
	updated, err := repo.GetAdminByID(ctx, a.ID)
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword("N3w#Secret"))
}
