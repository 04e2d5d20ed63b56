package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lborres/gatehouse/core"
)

func (a *Adapter) CreateSession(ctx context.Context, session *core.Session) error {
	query := `INSERT INTO sessions (id, user_id) VALUES ($1, $2) RETURNING created_at`

	err := a.pool.QueryRow(ctx, query, session.ID, session.UserID).Scan(&session.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return core.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *Adapter) SessionByID(ctx context.Context, id string) (*core.Session, error) {
	query := `SELECT id, user_id, created_at FROM sessions WHERE id = $1`

	session := &core.Session{}
	err := a.pool.QueryRow(ctx, query, id).Scan(&session.ID, &session.UserID, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// DeleteSession is idempotent: deleting an id that is already gone is a
// no-op, not an error.
func (a *Adapter) DeleteSession(ctx context.Context, id string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
