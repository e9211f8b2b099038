package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"jewelry-production-service/internal/apperr"
)

// mapError converts driver failures into apperr kinds. Typed errors pass through.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperr.Typed(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &apperr.ConflictError{Message: "duplicate " + pgErr.ConstraintName, Err: err}
		case "23503": // foreign_key_violation
			return &apperr.ConflictError{Message: "referenced row does not exist", Err: err}
		case "23514": // check_violation
			field := pgErr.ColumnName
			if field == "" {
				field = "value"
			}
			return apperr.Validation(field, "violates constraint "+pgErr.ConstraintName)
		case "40001", "40P01", "55P03": // serialization_failure, deadlock_detected, lock_not_available
			return &apperr.ConflictError{Message: "concurrent update, retry the request", Err: err}
		}
	}
	return apperr.Internal(op, err)
}
