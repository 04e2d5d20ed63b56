package core

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxPasswordLength = 72 // bcrypt truncates beyond 72 bytes

// NormalizeEmail lowercases and trims an email address. Storage and
// lookup always operate on the normalized form so that lookups cannot
// miss on case differences.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks syntactic validity and returns the normalized
// address.
func ValidateEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidatePasswordStrength enforces the registration password policy:
// at least 8 characters with an uppercase letter, a lowercase letter, a
// digit, and a symbol.
func ValidatePasswordStrength(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if !utf8.ValidString(password) {
		return ErrMalformedPassword
	}
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	if !hasSymbol {
		return ErrPasswordNoSymbol
	}
	return nil
}

// ValidateRegistration applies the full boundary validation for the
// register flow and returns the normalized email.
func ValidateRegistration(email, password string) (string, error) {
	normalized, err := ValidateEmail(email)
	if err != nil {
		return "", err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}
	return normalized, nil
}

// ValidateLogin applies the lighter login validation: a syntactically
// valid email and a non-empty password. The password policy is not
// re-checked at login so that accounts registered under an older policy
// can still sign in.
func ValidateLogin(email, password string) (string, error) {
	normalized, err := ValidateEmail(email)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrPasswordRequired
	}
	return normalized, nil
}
