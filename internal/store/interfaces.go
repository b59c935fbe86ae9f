package store

import (
	"context"

	"github.com/MKhiriev/go-birthday-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistence capability every backend provides.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false, with a nil
	// error, when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// ContactRepository owns the per-owner contact lists.
type ContactRepository interface {
	// ListContacts returns the owner's contacts in insertion order. An owner
	// without contacts gets an empty, non-nil slice.
	ListContacts(ctx context.Context, owner string) ([]models.Contact, error)
	// AddContact appends contact to the owner's list.
	AddContact(ctx context.Context, owner string, contact models.Contact) error
	// RemoveContact deletes the contact at index from the owner's list and
	// returns the remaining contacts.
	RemoveContact(ctx context.Context, owner string, index int) ([]models.Contact, error)
}

// AccountRepository owns the registered accounts.
type AccountRepository interface {
	Register(ctx context.Context, account models.Account) error
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
}

// SessionRepository owns the persisted "current user" pointer.
type SessionRepository interface {
	SetCurrentUser(ctx context.Context, email string) error
	GetCurrentUser(ctx context.Context) (email string, found bool, err error)
	ClearCurrentUser(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
