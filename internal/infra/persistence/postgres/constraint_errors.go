package postgres

import (
	"strings"

	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes that mean another transaction won.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateUniqueViolation      = "23505"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isConcurrencyConflict reports errors that a retry of the whole transaction can resolve.
func isConcurrencyConflict(err error) bool {
	switch pgErrorCode(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected:
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// toWriteError converts driver errors of a marker write into domain errors.
func toWriteError(err error, details string) error {
	switch {
	case isConcurrencyConflict(err):
		return domainerrors.ErrMergeRaceDetected.WrapMessage(details)
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrMergeRaceDetected.WrapMessage(details + ": duplicate marker id")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrMergeRaceDetected.WrapMessage(details + ": parent marker missing")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
