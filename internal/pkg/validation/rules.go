package validation

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Validation rule parameters
var (
	// Password length bounds, inclusive
	PasswordMinLength = 8
	PasswordMaxLength = 16

	// Name validation min/max length
	NameMinLength = 7
	NameMaxLength = 60

	// Registration number: letters, digits and dashes
	RegNoPattern = `^[A-Za-z0-9\-]{3,32}$`

	// Phone number: optional leading +, then digits
	PhonePattern = `^\+?[0-9]{10,15}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	RegNo *regexp.Regexp
	Phone *regexp.Regexp
}{
	RegNo: regexp.MustCompile(RegNoPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsStrongPassword reports whether pw is within the length bounds and contains
// an upper-case letter, a lower-case letter, a digit and a symbol.
func IsStrongPassword(pw string) bool {
	n := utf8.RuneCountInString(pw)
	if n < PasswordMinLength || n > PasswordMaxLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// IsValidName checks the display name length
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= NameMinLength && n <= NameMaxLength
}

// IsValidRegNo checks the registration number format
func IsValidRegNo(regNo string) bool {
	return CompiledPatterns.RegNo.MatchString(regNo)
}

// IsValidPhone checks the phone number format
func IsValidPhone(phone string) bool {
	return CompiledPatterns.Phone.MatchString(phone)
}
