// Package pgx implements core.AuthStorage on a PostgreSQL pool.
//
// Every query binds untrusted input as parameters; uniqueness and
// referential integrity are enforced by the schema, and constraint
// violations are translated to core sentinel errors.
package pgx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lborres/gatehouse/core"
)

// PostgreSQL error codes relevant to the auth schema.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.AuthStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
