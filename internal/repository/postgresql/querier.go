package postgresql

import (
	"context"
	"errors"

	"github.com/gajikita/selaras-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// GetQuerier returns the transaction attached to ctx, or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := database.QuerierFromContext(ctx); ok {
		return q
	}
	return db.Pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
