package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/lborres/gatehouse/pkg/crypto"
)

// Auth orchestrates the register/login/logout flows. It is stateless
// between requests; all shared state lives in AuthStorage and the
// signing secret fixed at construction.
type Auth struct {
	storage  AuthStorage
	hasher   crypto.PasswordHandler
	sessions *SessionManager
	secret   []byte
}

type Config struct {
	Secret  string
	Storage AuthStorage

	// Optional config
	PasswordHasher crypto.PasswordHandler
}

func New(config Config) (*Auth, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	hasher := config.PasswordHasher
	if hasher == nil {
		hasher = crypto.NewBcrypt()
	}

	return &Auth{
		storage:  config.Storage,
		hasher:   hasher,
		sessions: NewSessionManager(config.Storage),
		secret:   []byte(config.Secret),
	}, nil
}

// Sessions exposes the session manager, mainly for tests and cleanup
// tooling.
func (a *Auth) Sessions() *SessionManager {
	return a.sessions
}

// Register validates input, hashes the password, and creates the user.
// A duplicate email yields ErrEmailTaken; uniqueness is guaranteed by
// the store's constraint, so two concurrent registrations of the same
// email can never both succeed.
func (a *Auth) Register(ctx context.Context, email, password string) (*User, error) {
	email, err := ValidateRegistration(email, password)
	if err != nil {
		return nil, err
	}

	// Best-effort early conflict check. The store constraint is the
	// real guarantee; this only improves the common-case error.
	if _, err := a.storage.UserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.storage.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// LoginResult carries the authenticated user, the new session, and the
// signed bearer token the adapter sets as the auth cookie.
type LoginResult struct {
	User    *User
	Session *Session
	Token   string
}

// Login verifies credentials and, on success, creates a session record
// and issues a token bound to it. An unknown email and a wrong password
// are indistinguishable to the caller: both return
// ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email, err := ValidateLogin(email, password)
	if err != nil {
		return nil, err
	}

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	session, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := crypto.IssueToken(user.ID, session.ID, user.Email, a.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{User: user, Session: session, Token: token}, nil
}

// Logout performs best-effort session cleanup from a raw cookie token.
// The token is decoded WITHOUT signature verification: logout must work
// for expired or tampered tokens because its whole purpose is local
// cleanup. It never fails the client-visible flow.
func (a *Auth) Logout(ctx context.Context, rawToken string) {
	if rawToken == "" {
		return
	}
	claims, err := crypto.DecodeTokenUnverified(rawToken)
	if err != nil || claims.SessionID == "" {
		return
	}
	_ = a.sessions.Destroy(ctx, claims.SessionID)
}

// Authenticate validates a bearer token for a protected request. The
// token must verify cryptographically (signature, HS256, expiry) AND
// its session record must still exist: deleting the session at logout
// revokes the token immediately, at the cost of one store lookup per
// protected request.
func (a *Auth) Authenticate(ctx context.Context, rawToken string) (*crypto.AuthClaims, error) {
	claims, err := crypto.VerifyToken(rawToken, a.secret)
	if err != nil {
		return nil, err
	}

	if _, err := a.sessions.Get(ctx, claims.SessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	return claims, nil
}

// Whoami re-fetches the user behind verified claims. The store is the
// source of truth: the token's email snapshot is only used as the
// lookup key, and a user deleted since issuance yields ErrUserNotFound.
func (a *Auth) Whoami(ctx context.Context, claims *crypto.AuthClaims) (*User, error) {
	user, err := a.storage.UserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
