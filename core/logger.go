package core

// Logger is any service that can log application events.
// args may contain errors, maps of extra data and at most one CurrentUser.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// CurrentUser identifies the admin performing an operation.
// It is passed explicitly to the services that need it.
type CurrentUser struct {
	ID         string
	Name       string
	Email      string
	SuperAdmin bool
}

// Anonymous is used when an operation is performed without an authenticated admin.
var Anonymous = CurrentUser{ID: "anonymous", Name: "Anonymous User", Email: "Anonymous User"}

func (u CurrentUser) IsAnonymous() bool {
	return u.ID == "" || u.ID == Anonymous.ID
}

// DisplayName is the name shown to other admins, the email when set.
func (u CurrentUser) DisplayName() string {
	if u.IsAnonymous() {
		return Anonymous.Email
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Name
}

// UID returns the user ID or the anonymous placeholder.
func (u CurrentUser) UID() string {
	if u.IsAnonymous() {
		return Anonymous.ID
	}
	return u.ID
}
