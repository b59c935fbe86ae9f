package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidSurname     = errors.New("invalid surname")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone")
	ErrMissingBirthday    = errors.New("birthday is required")
	ErrMalformedBirthday  = errors.New("malformed birthday")
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordsDontMatch = errors.New("passwords do not match")
)

// ValidationError reports the first rule an input failed. Err is one of the
// sentinel errors above, so callers can match with errors.Is; Message is
// the text shown to the user.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
