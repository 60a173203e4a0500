package postgres

import (
	domainerrors "fooddash/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError converts a failed INSERT, UPDATE or DELETE into a domain error.
// Constraint violations keep the store's message as details.
func translateWriteError(err error, operation string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrReferenceConflict.WithDetails(storeMessage(err))
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err), isUniqueConstraintViolation(err):
		return domainerrors.ErrConstraintViolated.WithDetails(storeMessage(err))
	default:
		return domainerrors.NewDatabaseExecuteError(err, operation)
	}
}

// translateLookupError converts a failed single-row lookup into a domain error.
func translateLookupError(err error, notFound *domainerrors.BaseError, operation string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, operation)
}

func storeMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return pgErr.Message + " (" + pgErr.Detail + ")"
		}

		return pgErr.Message
	}

	return err.Error()
}
