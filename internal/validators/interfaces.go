// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the register: contact fields
// (name, surname, email, phone, birthday) and the sign-up form.
//
// Core concepts:
//   - Predicates (IsValidPersonalName, IsValidEmail, IsValidPhone,
//     HasBirthday) are pure functions over raw strings.
//   - Validator checks a whole value in a fixed field order and stops at the
//     first failing rule, returning a *ValidationError that carries the
//     user-facing message for that rule.
//
// Validation is local and synchronous; nothing here touches storage.
package validators

import "context"

// Validator defines a generic validation interface for input values.
// Optional field names restrict validation to the named subset.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
