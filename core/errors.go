package core

import "errors"

// Authentication errors
var (
	ErrEmailTaken         = errors.New("email already registered")     // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")               // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid credentials")          // 401 Unauthorized
	ErrSessionNotFound    = errors.New("session not found or revoked") // 401 Unauthorized
)

// Validation errors, surfaced to clients as 400 Bad Request.
var (
	ErrEmailRequired     = errors.New("email is required")
	ErrInvalidEmail      = errors.New("valid email required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper   = errors.New("password must include an uppercase letter")
	ErrPasswordNoLower   = errors.New("password must include a lowercase letter")
	ErrPasswordNoDigit   = errors.New("password must include a digit")
	ErrPasswordNoSymbol  = errors.New("password must include a symbol")
	ErrPasswordTooLong   = errors.New("password is too long")
	ErrMalformedPassword = errors.New("password must be valid UTF-8")
)

// Config errors (server-side configuration)
var (
	ErrSecretRequired  = errors.New("signing secret is required")
	ErrStorageRequired = errors.New("storage adapter is required")
)
