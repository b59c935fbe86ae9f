// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalogue of the register.
//
// Every Msg* constant is a sentence shown on screen when an operation is
// blocked or fails. Keeping them in one place keeps validators, services and
// the terminal UI consistent in wording.
package app

// Contact form.
const (
	// MsgInvalidName is shown when the name contains anything but letters.
	MsgInvalidName = "Name must contain letters only."

	// MsgInvalidSurname is shown when the surname contains anything but letters.
	MsgInvalidSurname = "Surname must contain letters only."

	// MsgInvalidEmail is shown when an email fails the structural check.
	MsgInvalidEmail = "Please enter a valid email."

	// MsgInvalidPhone is shown when the phone is not in 0000-0000 format.
	MsgInvalidPhone = "Phone number must be in the format 0000-0000."

	// MsgMissingBirthday is shown when no birth date was given.
	MsgMissingBirthday = "Please select a birth date."

	// MsgMalformedBirthday is shown when the birth date is not a real
	// DD/MM/YYYY date.
	MsgMalformedBirthday = "Birth date must be a valid date in the format DD/MM/YYYY."
)

// Sign-up and login.
const (
	MsgMissingFields      = "Please fill in all fields."
	MsgPasswordsDontMatch = "Passwords do not match."
	MsgAccountExists      = "An account with this email already exists."
	MsgRegistered         = "User registered successfully."

	// MsgInvalidCredentials deliberately does not say which of the two
	// fields was wrong.
	MsgInvalidCredentials = "Wrong email or password."
)

// Contact list.
const (
	MsgNoContacts       = "No records yet!"
	MsgContactAdded     = "Contact added."
	MsgContactDeleted   = "Contact deleted."
	MsgContactNotFound  = "The selected contact no longer exists."
	MsgConfirmDelete    = "Are you sure you want to delete this contact?"
	MsgCopied           = "Copied to clipboard."
	MsgNothingToCopy    = "Nothing to copy."
	MsgSessionExpired   = "You are not logged in."
	MsgCorruptStore     = "Stored data is damaged and could not be read."
	MsgStorageTimeout   = "Storage did not respond in time. Please try again."
	MsgStorageUnavail   = "Storage is unavailable. Please try again."
	MsgUnexpectedFailed = "Something went wrong."
)
