// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a single entry of a user's birthday register.
//
// Contacts carry no identifier of their own: a contact is addressed by its
// position in the owner's ordered list, and the list is stored as a whole
// under the owner-scoped key.
type Contact struct {
	// Name is the given name. Letters only.
	Name string `json:"name" validate:"personalname"`

	// Surname is the family name. Letters only.
	Surname string `json:"surname" validate:"personalname"`

	// Email is the contact's e-mail address.
	Email string `json:"email" validate:"looseemail"`

	// Phone is the contact's phone number in 0000-0000 format.
	Phone string `json:"phone" validate:"phone"`

	// Birthday is the birth date formatted as DD/MM/YYYY.
	Birthday string `json:"birthday" validate:"required,birthday"`
}

// FullName returns "Name Surname".
func (c Contact) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
