// Package firestoredb stores the console data in Cloud Firestore, in the
// collections shared with the mobile apps.
package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paatthya/console/core"
)

const (
	batchesCollection  = "batches"
	adminsCollection   = "admin"
	noticesCollection  = "notices"
	messagesCollection = "messages"
)

// NewApp initializes the firebase app from the credentials file or JSON of conf.
// Without either, application default credentials are used.
func NewApp(ctx context.Context, conf *core.Config) (*firebase.App, error) {
	var opts []option.ClientOption
	if conf.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	} else if conf.Firebase.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(conf.Firebase.CredentialsJSON)))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Firebase.ProjectID}, opts...)
	return app, errors.Wrap(err, "initializing firebase app")
}

// Open returns the Firestore client of app. The caller must Close it.
func Open(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	return client, errors.Wrap(err, "opening firestore")
}

// storeError classifies a Firestore error: NotFound codes become core.NotFoundError,
// anything else a core.StoreError.
func storeError(op, what, id string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return core.NewNotFoundError(what, id)
	}
	return core.NewStoreError(op, err)
}
