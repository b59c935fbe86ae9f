package models

import "github.com/MKhiriev/go-birthday-keeper/internal/birthday"

// ContactEntry is a contact annotated for presentation with its birthday
// proximity. Entries are computed on every load and never persisted.
type ContactEntry struct {
	// Position is the index of the contact in the owner's list. It is the
	// handle used for viewing and deleting the contact.
	Position int

	Contact Contact

	// OffsetDays is the signed day difference between today and the
	// birthday re-anchored to the current year.
	OffsetDays int

	Category birthday.Category
}

// Label is the short proximity text shown next to the contact.
func (e ContactEntry) Label() string {
	return e.Category.Label(e.OffsetDays)
}
