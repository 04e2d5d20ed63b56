package core

import "context"

// AuthStorage is the storage port for user and session records.
//
// Implementations must enforce email uniqueness and the session→user
// reference at the database level; the callers in this package treat a
// pre-existence check as an optimization only. Every implementation is
// required to use parameter binding for untrusted input.
type AuthStorage interface {
	// CreateUser inserts a new user record. A duplicate email yields
	// ErrEmailTaken, guaranteed by a uniqueness constraint rather than a
	// racy pre-check.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)

	// UserByEmail returns the user for a normalized email, or
	// ErrUserNotFound on miss.
	UserByEmail(ctx context.Context, email string) (*User, error)

	// CreateSession associates a session id with a user. A dangling user
	// reference yields ErrUserNotFound.
	CreateSession(ctx context.Context, session *Session) error

	// SessionByID returns the session record, or ErrSessionNotFound.
	SessionByID(ctx context.Context, id string) (*Session, error)

	// DeleteSession removes a session record. Deleting an id that does
	// not exist is not an error.
	DeleteSession(ctx context.Context, id string) error
}
