package service

import (
	"context"

	"github.com/MKhiriev/go-birthday-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService defines sign-up, login and logout.
type AccountService interface {
	// Register validates form and stores a new account. Validation failures
	// are returned as *validators.ValidationError; a taken email as
	// store.ErrAccountAlreadyExists.
	Register(ctx context.Context, form models.RegistrationForm) error

	// Authenticate checks the credentials, records email as the persisted
	// current user and returns the session to pass to [ContactService].
	// Wrong credentials yield store.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.Session, error)

	// Logout ends session. The persisted current user is kept so the next
	// login can be prefilled.
	Logout(ctx context.Context, session models.Session) error

	// LastUser returns the email of the last authenticated user, or "" when
	// nobody has logged in yet.
	LastUser(ctx context.Context) (string, error)
}

// ContactService manages the contacts of the session's user.
// Every method returns ErrNoActiveSession for an invalid session.
type ContactService interface {
	// List returns the contacts in insertion order, annotated with their
	// birthday offset and category for today.
	List(ctx context.Context, session models.Session) ([]models.ContactEntry, error)

	// Get returns the contact at index.
	Get(ctx context.Context, session models.Session, index int) (models.ContactEntry, error)

	// Add validates contact and appends it to the list.
	Add(ctx context.Context, session models.Session, contact models.Contact) error

	// Remove deletes the contact at index and returns the annotated
	// remainder.
	Remove(ctx context.Context, session models.Session, index int) ([]models.ContactEntry, error)
}

// AppInfoService reports information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
