package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned when user input is rejected. Nothing is written when it occurs.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// NotFoundError is returned when a referenced document or material no longer resolves.
type NotFoundError struct {
	What string
	ID   string
}

func NewNotFoundError(what, id string) error {
	return &NotFoundError{What: what, ID: id}
}

func (err NotFoundError) Error() string {
	if err.ID == "" {
		return err.What + " not found"
	}
	return err.What + " not found: " + err.ID
}

// StoreError wraps a failed read or write against the backing store.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (err StoreError) Error() string {
	return "store: " + err.Op + ": " + err.Err.Error()
}

func (err StoreError) Unwrap() error { return err.Err }

// Cause unwraps the store error for github.com/pkg/errors.
func (err StoreError) Cause() error { return err.Err }

func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// IsStore reports whether err is a StoreError. errors.Cause cannot be used
// here since StoreError itself implements causer.
func IsStore(err error) bool {
	var serr *StoreError
	return errors.As(err, &serr)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
