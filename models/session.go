package models

import "time"

// Session identifies the authenticated user for the lifetime of one login.
//
// It is handed out by the account service on successful authentication and
// passed explicitly to every contact operation, which uses Email to build
// the owner-scoped storage key.
type Session struct {
	Username  string
	Email     string
	StartedAt time.Time
}

// Valid reports whether the session belongs to an authenticated user.
func (s Session) Valid() bool {
	return s.Email != ""
}
