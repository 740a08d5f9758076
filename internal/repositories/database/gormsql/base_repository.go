package gormsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// BaseRepository provides the gorm handle shared by all repositories.
type BaseRepository struct {
	DB *gorm.DB
}

func (r *BaseRepository) db(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

// constraintKind classifies a driver constraint failure.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
	constraintCheck
)

func classify(err error) constraintKind {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constraintUnique
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return constraintCheck
		case sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT is enforced as a trigger.
			if strings.Contains(sqliteErr.Error(), "FOREIGN KEY") {
				return constraintForeignKey
			}
		}
		return constraintNone
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return constraintUnique
		case "23503":
			return constraintForeignKey
		case "23514", "23502":
			return constraintCheck
		}
	}
	return constraintNone
}

// translateError maps gorm and driver errors onto application errors.
func translateError(err error, op, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	switch classify(err) {
	case constraintUnique:
		return apperrors.NewConflictError(entity + " already exists")
	case constraintForeignKey:
		if strings.HasPrefix(op, "delete") {
			return apperrors.NewConflictError(entity + " is still referenced by other records")
		}
		return apperrors.NewValidationFailedError("referenced record does not exist")
	case constraintCheck:
		return apperrors.NewValidationFailedError(fmt.Sprintf("%s violates a column constraint", entity))
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
}

// requireAffected turns a zero-row update or delete into a not-found error.
func requireAffected(res *gorm.DB, op, entity string) error {
	if res.Error != nil {
		return translateError(res.Error, op, entity)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return nil
}

// findOne loads the single row matching query into T.
func findOne[T any](ctx context.Context, db *gorm.DB, entity string, query string, args ...any) (T, error) {
	var m T
	if err := db.WithContext(ctx).Where(query, args...).Take(&m).Error; err != nil {
		return m, translateError(err, "find "+entity, entity)
	}
	return m, nil
}
