package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a transaction, rolling back on error.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// translateError maps driver errors onto application errors.
// op describes the attempted action, e.g. "save building".
func translateError(err error, op, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(entity + " already exists")
		case pgForeignKeyViolation:
			if strings.HasPrefix(op, "delete") {
				return apperrors.NewConflictError(entity + " is still referenced by other records")
			}
			return apperrors.NewValidationFailedError("referenced record does not exist")
		case pgCheckViolation:
			return apperrors.NewValidationFailedError(fmt.Sprintf("%s violates constraint %s", entity, pgErr.ConstraintName))
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
}

// requireAffected turns a zero-row update or delete into a not-found error.
func requireAffected(tag pgconn.CommandTag, entity string) error {
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// collect runs query and scans every row into T by column name.
func collect[T any](ctx context.Context, q querier, op string, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
	}
	return out, nil
}

// collectOne runs query and scans exactly one row into T.
func collectOne[T any](ctx context.Context, q querier, entity string, query string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, translateError(err, "find "+entity, entity)
	}
	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, translateError(err, "find "+entity, entity)
	}
	return out, nil
}

// filterBuilder accumulates positional WHERE conditions.
type filterBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond is replaced by the next positional parameter.
func (f *filterBuilder) add(cond string, args ...any) {
	for _, a := range args {
		f.args = append(f.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(f.args)), 1)
	}
	f.conds = append(f.conds, cond)
}

func (f *filterBuilder) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}
