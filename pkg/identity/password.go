package identity

import (
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLen = 8
	// PasswordSpecialChars lists the characters that satisfy the special character rule.
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

// ValidatePassword checks password strength, stopping at the first unmet requirement.
func ValidatePassword(password string) Result {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return invalid(ReasonPasswordLength, "password must have at least 8 characters")
	}
	if !strings.ContainsFunc(password, inRange('A', 'Z')) {
		return invalid(ReasonPasswordUpper, "password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, inRange('a', 'z')) {
		return invalid(ReasonPasswordLower, "password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, inRange('0', '9')) {
		return invalid(ReasonPasswordNumber, "password must contain at least one number")
	}
	if !strings.ContainsAny(password, PasswordSpecialChars) {
		return invalid(ReasonPasswordSpecial, "password must contain at least one special character")
	}
	return valid()
}

func inRange(lo, hi rune) func(rune) bool {
	return func(r rune) bool {
		return r >= lo && r <= hi
	}
}
