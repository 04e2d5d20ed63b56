package fiber

import (
	"context"
	"sync"
	"time"

	"github.com/lborres/gatehouse/core"
)

// memStorage is an in-memory core.AuthStorage for handler tests.
type memStorage struct {
	mu       sync.RWMutex
	users    map[string]*core.User
	sessions map[string]*core.Session
	nextID   int64
}

var _ core.AuthStorage = (*memStorage)(nil)

func newMemStorage() *memStorage {
	return &memStorage{
		users:    make(map[string]*core.User),
		sessions: make(map[string]*core.Session),
	}
}

func (m *memStorage) CreateUser(_ context.Context, email, passwordHash string) (*core.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[email]; exists {
		return nil, core.ErrEmailTaken
	}

	m.nextID++
	user := &core.User{
		ID:           m.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[email] = user
	return user, nil
}

func (m *memStorage) UserByEmail(_ context.Context, email string) (*core.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, exists := m.users[email]
	if !exists {
		return nil, core.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memStorage) CreateSession(_ context.Context, session *core.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.CreatedAt = time.Now()
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *memStorage) SessionByID(_ context.Context, id string) (*core.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, exists := m.sessions[id]
	if !exists {
		return nil, core.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (m *memStorage) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
