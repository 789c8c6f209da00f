package firestoredb

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core/admin"
)

// TokenVerifier checks Firebase Authentication ID tokens.
type TokenVerifier struct {
	client *auth.Client
}

var _ admin.TokenVerifier = (*TokenVerifier)(nil)

func NewTokenVerifier(ctx context.Context, app *firebase.App) (*TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase auth")
	}
	return &TokenVerifier{client: client}, nil
}

func (v *TokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", errors.Errorf("id token of %s carries no email", token.UID)
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok && !verified {
		return "", errors.Errorf("email of %s is not verified", token.UID)
	}
	return email, nil
}
