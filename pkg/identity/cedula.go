// Package identity validates the identity data collected when registering users:
// Ecuadorian national ID numbers (cédulas), institutional email addresses, and passwords.
//
// Validation failures are ordinary results rather than errors, since invalid user input is the common case.
package identity

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NationalIDLen = 10
	MinProvince   = 1
	MaxProvince   = 24
	// MaxPersonType is the exclusive upper bound of the third digit for natural persons.
	// Values from 6 up identify juridical and public entities.
	MaxPersonType = 6
)

// Reason identifies which rule rejected an input.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonLength
	ReasonDigits
	ReasonProvince
	ReasonPersonType
	ReasonCheckDigit
	ReasonEmailFormat
	ReasonEmailDomain
	ReasonPasswordLength
	ReasonPasswordUpper
	ReasonPasswordLower
	ReasonPasswordNumber
	ReasonPasswordSpecial
)

// Result is the outcome of a validation. Message is empty when IsValid is true.
type Result struct {
	IsValid bool
	Message string
	Reason  Reason
}

func valid() Result {
	return Result{IsValid: true}
}

func invalid(reason Reason, msg string) Result {
	return Result{Reason: reason, Message: msg}
}

// Err returns nil for a valid Result, and an error carrying Message otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return errors.New(r.Message)
}

// ValidateNationalID checks a cédula number.
// Whitespace and hyphens are ignored, and the first failing rule determines the Result.
func ValidateNationalID(raw string) Result {
	id := CleanNationalID(raw)

	if utf8.RuneCountInString(id) != NationalIDLen {
		return invalid(ReasonLength, "must have 10 digits")
	}
	digits := make([]int, NationalIDLen)
	for i := 0; i < NationalIDLen; i++ {
		if id[i] < '0' || id[i] > '9' {
			return invalid(ReasonDigits, "must contain only digits")
		}
		digits[i] = int(id[i] - '0')
	}
	province := digits[0]*10 + digits[1]
	if province < MinProvince || province > MaxProvince {
		return invalid(ReasonProvince, "province code must be 01–24")
	}
	if digits[2] >= MaxPersonType {
		return invalid(ReasonPersonType, "third digit must be < 6")
	}
	if checkDigit(digits[:NationalIDLen-1]) != digits[NationalIDLen-1] {
		return invalid(ReasonCheckDigit, "check digit mismatch")
	}
	return valid()
}

// checkDigit computes the modulo 10 check digit, doubling digits at even positions.
func checkDigit(payload []int) int {
	sum := 0
	for i, digit := range payload {
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	residue := sum % 10
	if residue == 0 {
		return 0
	}
	return 10 - residue
}

// CleanNationalID strips whitespace and hyphens from raw.
func CleanNationalID(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// FormatNationalID renders a 10 character cédula as "XXX-XXXXXXX".
// Inputs of any other length are returned unchanged.
func FormatNationalID(raw string) string {
	id := []rune(CleanNationalID(raw))
	if len(id) != NationalIDLen {
		return raw
	}
	return string(id[:3]) + "-" + string(id[3:])
}
