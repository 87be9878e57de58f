package credentials

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shad03152015/HotRide/internal/auth"
)

// IdentifierKind classifies a login identifier.
type IdentifierKind int

const (
	IdentifierEmail IdentifierKind = iota
	IdentifierPhone
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneFormatting strips characters commonly typed in phone numbers
// before checking the digits.
var phoneFormatting = strings.NewReplacer("+", "", "-", "", " ", "", "(", "", ")", "")

// ClassifyIdentifier decides whether a login identifier is an email or a
// phone number. Anything containing "@" is treated as email; otherwise the
// identifier must reduce to at least 10 digits to count as a phone number.
func ClassifyIdentifier(identifier string) (IdentifierKind, error) {
	if strings.Contains(identifier, "@") {
		return IdentifierEmail, nil
	}

	cleaned := phoneFormatting.Replace(identifier)
	if len(cleaned) >= 10 && isDigits(cleaned) {
		return IdentifierPhone, nil
	}

	return 0, fmt.Errorf("%w", auth.ErrInvalidIdentifier)
}

// ValidateEmail checks email shape for registration.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: please enter a valid email address", auth.ErrValidation)
	}
	return nil
}

// ValidatePhone checks phone shape for code delivery.
func ValidatePhone(phone string) error {
	cleaned := phoneFormatting.Replace(phone)
	if !isDigits(cleaned) {
		return fmt.Errorf("%w: please enter a valid phone number", auth.ErrValidation)
	}
	if len(cleaned) < 10 {
		return fmt.Errorf("%w: phone number must be at least 10 digits", auth.ErrValidation)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
