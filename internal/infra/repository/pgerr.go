package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the adapters branch on.
const (
	codeUniqueViolation    = "23505"
	codeForeignKeyViolated = "23503"
	codeExclusionViolated  = "23P01"
)

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
