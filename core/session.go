package core

import (
	"context"
	"fmt"

	"github.com/lborres/gatehouse/pkg/crypto"
)

// SessionManager creates and destroys server-side session records. It
// holds no state of its own; persistence is delegated to AuthStorage.
type SessionManager struct {
	storage AuthStorage
}

func NewSessionManager(storage AuthStorage) *SessionManager {
	return &SessionManager{storage: storage}
}

// Create generates an unguessable session id and persists the record.
func (sm *SessionManager) Create(ctx context.Context, userID int64) (*Session, error) {
	id, err := crypto.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := &Session{
		ID:     id,
		UserID: userID,
	}
	if err := sm.storage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Get returns the session record for an id, or ErrSessionNotFound.
func (sm *SessionManager) Get(ctx context.Context, id string) (*Session, error) {
	return sm.storage.SessionByID(ctx, id)
}

// Destroy deletes a session record. Destroying an id that no longer
// exists is not an error.
func (sm *SessionManager) Destroy(ctx context.Context, id string) error {
	return sm.storage.DeleteSession(ctx, id)
}
