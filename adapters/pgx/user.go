package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lborres/gatehouse/core"
)

func (a *Adapter) CreateUser(ctx context.Context, email, passwordHash string) (*core.User, error) {
	query := `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`

	user := &core.User{Email: email, PasswordHash: passwordHash}
	err := a.pool.QueryRow(ctx, query, email, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return nil, core.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) UserByEmail(ctx context.Context, email string) (*core.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
