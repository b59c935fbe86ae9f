package validators

import (
	"regexp"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
)

var (
	personalNameRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex        = regexp.MustCompile(`^\d{4}-\d{4}$`)
)

// IsValidPersonalName reports whether s is one or more ASCII letters.
func IsValidPersonalName(s string) bool {
	return personalNameRegex.MatchString(s)
}

// IsValidEmail is a structural check: something@something.something with no
// whitespace and a single @.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s is exactly four digits, a hyphen and four
// digits.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// HasBirthday reports whether a birthday was provided.
func HasBirthday(s string) bool {
	return s != ""
}

// IsValidBirthday reports whether s parses as a DD/MM/YYYY date.
func IsValidBirthday(s string) bool {
	_, err := birthday.ParseDate(s)
	return err == nil
}
