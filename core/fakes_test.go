package core

import (
	"context"
	"sync"
	"time"
)

// fakeStorage is an in-memory AuthStorage with optional error
// injection, used to exercise the auth flows without a database.
type fakeStorage struct {
	mu       sync.RWMutex
	users    map[string]*User // keyed by email
	sessions map[string]*Session
	nextID   int64

	createUserErr    error
	userByEmailErr   error
	createSessionErr error
	sessionByIDErr   error
	deleteSessionErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:    make(map[string]*User),
		sessions: make(map[string]*Session),
	}
}

func (f *fakeStorage) CreateUser(_ context.Context, email, passwordHash string) (*User, error) {
	if f.createUserErr != nil {
		return nil, f.createUserErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[email]; exists {
		return nil, ErrEmailTaken
	}

	f.nextID++
	user := &User{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = user
	return user, nil
}

func (f *fakeStorage) UserByEmail(_ context.Context, email string) (*User, error) {
	if f.userByEmailErr != nil {
		return nil, f.userByEmailErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	user, exists := f.users[email]
	if !exists {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStorage) CreateSession(_ context.Context, session *Session) error {
	if f.createSessionErr != nil {
		return f.createSessionErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	session.CreatedAt = time.Now()
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeStorage) SessionByID(_ context.Context, id string) (*Session, error) {
	if f.sessionByIDErr != nil {
		return nil, f.sessionByIDErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	session, exists := f.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeStorage) DeleteSession(_ context.Context, id string) error {
	if f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeStorage) sessionCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sessions)
}
