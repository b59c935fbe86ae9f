package tui

import (
	"time"

	"github.com/MKhiriev/go-birthday-keeper/models"
)

// NavigateTo switches [RootModel] to Page. A non-nil Payload is delivered
// to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult carries the outcome of an authentication attempt.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult carries the outcome of a sign-up attempt.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a successful sign-up.
type RegisterSuccessNotice struct {
	Username string
}

type contactsLoadedMsg struct {
	entries []models.ContactEntry
	err     error
}

type contactAddedMsg struct {
	err error
}

type contactRemovedMsg struct {
	entries []models.ContactEntry
	err     error
}

// dayChangedMsg is delivered at local midnight.
type dayChangedMsg time.Time
