package database

import (
	"context"
	"fmt"
)

type querierKey struct{}

// WithQuerier returns a context carrying q. Repositories pick it up through
// QuerierFromContext, so the same repository methods work inside and outside
// a transaction (and against a mock querier in tests).
func WithQuerier(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, querierKey{}, q)
}

// QuerierFromContext returns the querier attached to ctx, if any.
func QuerierFromContext(ctx context.Context) (Querier, bool) {
	q, ok := ctx.Value(querierKey{}).(Querier)
	return q, ok
}

// WithTransaction executes fn inside a database transaction. The transaction
// is attached to the context passed to fn. A nil db (service tests with fake
// repositories) runs fn directly.
func WithTransaction(ctx context.Context, db *DB, fn func(ctx context.Context) error) error {
	if db == nil {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(WithQuerier(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
