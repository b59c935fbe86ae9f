package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted as field scopes by Validate.
const (
	FieldName     = "Name"
	FieldSurname  = "Surname"
	FieldEmail    = "Email"
	FieldPhone    = "Phone"
	FieldBirthday = "Birthday"

	FieldUsername        = "Username"
	FieldPassword        = "Password"
	FieldConfirmPassword = "ConfirmPassword"
)

// Custom tags registered on the underlying validator and referenced from
// the `validate` struct tags in package models.
const (
	tagPersonalName = "personalname"
	tagLooseEmail   = "looseemail"
	tagPhone        = "phone"
	tagBirthday     = "birthday"
	tagRequired     = "required"
	tagEqField      = "eqfield"
)

// InputValidator implements [Validator] for [models.Contact] and
// [models.RegistrationForm], value or pointer.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator builds an InputValidator with the register's custom
// rules installed.
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, tagPersonalName, IsValidPersonalName)
	mustRegister(v, tagLooseEmail, IsValidEmail)
	mustRegister(v, tagPhone, IsValidPhone)
	mustRegister(v, tagBirthday, IsValidBirthday)

	return &InputValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, rule func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate checks obj and returns the first failure as *ValidationError.
//
// Contacts are checked name → surname → email → phone → birthday. For the
// sign-up form an empty field always wins over other failures, then the
// email format, then the password confirmation.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)
	case models.RegistrationForm:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationForm:
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateContact(ctx context.Context, contact models.Contact, fields ...string) error {
	fieldErrs, err := v.run(ctx, &contact, fields...)
	if err != nil || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	switch first.Field() {
	case FieldName:
		return &ValidationError{Field: FieldName, Message: app.MsgInvalidName, Err: ErrInvalidName}
	case FieldSurname:
		return &ValidationError{Field: FieldSurname, Message: app.MsgInvalidSurname, Err: ErrInvalidSurname}
	case FieldEmail:
		return &ValidationError{Field: FieldEmail, Message: app.MsgInvalidEmail, Err: ErrInvalidEmail}
	case FieldPhone:
		return &ValidationError{Field: FieldPhone, Message: app.MsgInvalidPhone, Err: ErrInvalidPhone}
	case FieldBirthday:
		if first.Tag() == tagRequired {
			return &ValidationError{Field: FieldBirthday, Message: app.MsgMissingBirthday, Err: ErrMissingBirthday}
		}
		return &ValidationError{Field: FieldBirthday, Message: app.MsgMalformedBirthday, Err: ErrMalformedBirthday}
	}

	return fmt.Errorf("unexpected validation failure on %s: %s", first.Field(), first.Tag())
}

func (v *InputValidator) validateRegistration(ctx context.Context, form models.RegistrationForm, fields ...string) error {
	fieldErrs, err := v.run(ctx, &form, fields...)
	if err != nil || len(fieldErrs) == 0 {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == tagRequired {
			return &ValidationError{Field: fe.Field(), Message: app.MsgMissingFields, Err: ErrMissingFields}
		}
	}

	first := fieldErrs[0]
	switch first.Tag() {
	case tagLooseEmail:
		return &ValidationError{Field: FieldEmail, Message: app.MsgInvalidEmail, Err: ErrInvalidEmail}
	case tagEqField:
		return &ValidationError{Field: FieldConfirmPassword, Message: app.MsgPasswordsDontMatch, Err: ErrPasswordsDontMatch}
	}

	return fmt.Errorf("unexpected validation failure on %s: %s", first.Field(), first.Tag())
}

// run executes the struct rules and returns the field failures in struct
// field order.
func (v *InputValidator) run(ctx context.Context, obj any, fields ...string) (validator.ValidationErrors, error) {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, nil
	}

	return nil, fmt.Errorf("validation failed: %w", err)
}
